package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/sgi-guatemart/pkg/config"
	"github.com/jhoicas/sgi-guatemart/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:           "sgi-guatemart",
	Short:         "SGI-GuateMart",
	Long:          `Sistema de gestión de inventario de GuateMart: productos, movimientos de stock, alertas y usuarios.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.AddCommand(serveCmd, migrateCmd, bootstrapAdminCmd, hashPasswordCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup carga la configuración y construye el logger de la aplicación.
func setup() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		App:     cfg.App.Name,
		Version: cfg.App.Version,
	})
	return cfg, log, nil
}
