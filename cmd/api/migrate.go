package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jhoicas/sgi-guatemart/internal/infrastructure/postgres"
)

var (
	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Aplica las migraciones embebidas del esquema",
		RunE:  runMigrate,
	}
	migrateRollback bool
)

func init() {
	migrateCmd.Flags().BoolVarP(&migrateRollback, "rollback", "r", false, "revertir la última migración aplicada")
}

func runMigrate(_ *cobra.Command, _ []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	ctx := context.Background()
	db, err := postgres.Open(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer db.Close()

	if migrateRollback {
		err = postgres.Rollback(ctx, db)
	} else {
		err = postgres.Migrate(ctx, db)
	}
	if err != nil {
		return err
	}
	version, err := postgres.MigrationVersion(ctx, db)
	if err != nil {
		return err
	}
	log.Info().Int64("version", version).Bool("rollback", migrateRollback).Msg("migraciones aplicadas")
	return nil
}
