package postgres

import (
	"context"
	"embed"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationsDir = "migrations"

func setupGoose() error {
	goose.SetBaseFS(migrationsFS)
	goose.SetTableName("schema_migrations")
	return goose.SetDialect("postgres")
}

// Migrate aplica todas las migraciones embebidas pendientes.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if err := setupGoose(); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db.DB, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// Rollback revierte la última migración aplicada.
func Rollback(ctx context.Context, db *sqlx.DB) error {
	if err := setupGoose(); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.DownContext(ctx, db.DB, migrationsDir); err != nil {
		return fmt.Errorf("goose down: %w", err)
	}
	return nil
}

// MigrationVersion devuelve la versión actual del esquema.
func MigrationVersion(ctx context.Context, db *sqlx.DB) (int64, error) {
	if err := setupGoose(); err != nil {
		return 0, fmt.Errorf("goose dialect: %w", err)
	}
	return goose.GetDBVersionContext(ctx, db.DB)
}
