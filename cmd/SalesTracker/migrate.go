package main

import (
	"fmt"
	"log/slog"

	database "github.com/sebuszqo/SalesTracker/internal/db"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the schema and seed sample data, then exit",
		Long: `Create the categories and sales tables if they do not exist and insert the
sample data when no category exists yet. Connection failures are retried
INIT_MAX_ATTEMPTS times, INIT_RETRY_DELAY apart.`,
		RunE: runMigrate,
	}
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	dbService, err := database.NewDBService(cfg.Database)
	if err != nil {
		return fmt.Errorf("could not initialize database: %w", err)
	}
	defer dbService.Close()

	slog.Info("Running database migrations", "host", cfg.Database.Host, "database", cfg.Database.Name)
	if err := initDatabase(cmd.Context(), dbService); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	slog.Info("Database migrations completed successfully")
	return nil
}
