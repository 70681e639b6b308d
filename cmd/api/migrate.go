package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spec-kit/timesheet-service/internal/config"
	"github.com/spec-kit/timesheet-service/internal/observability"
	"github.com/spec-kit/timesheet-service/internal/persistence"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the SQL migrations to POSTGRES_DSN and exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cfg.Postgres.DSN == "" {
			return errors.New("POSTGRES_DSN is required to run migrations")
		}

		logger, err := observability.NewLogger(cfg.Logger)
		if err != nil {
			return fmt.Errorf("failed to init logger: %w", err)
		}
		defer logger.Sync() //nolint:errcheck

		pg, err := persistence.NewPostgres(cmd.Context(), cfg.Postgres, logger)
		if err != nil {
			return err
		}
		defer pg.Close()

		return persistence.RunMigrations(cmd.Context(), pg.PoolHandle(), cfg.Postgres.MigrationsDir, logger)
	},
}
