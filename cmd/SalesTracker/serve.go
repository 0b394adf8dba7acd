package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	database "github.com/sebuszqo/SalesTracker/internal/db"
	"github.com/sebuszqo/SalesTracker/internal/metrics"
	"github.com/sebuszqo/SalesTracker/internal/sales/application"
	"github.com/sebuszqo/SalesTracker/internal/sales/infrastructure"
	"github.com/sebuszqo/SalesTracker/internal/sales/interfaces"
	"github.com/sebuszqo/SalesTracker/internal/server"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Initialize the database and start the HTTP server",
		RunE:  runServe,
	}
	cmd.Flags().Int("port", 3000, "HTTP listen port")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	dbService, err := database.NewDBService(cfg.Database)
	if err != nil {
		return fmt.Errorf("could not initialize database: %w", err)
	}
	defer dbService.Close()

	if err := initDatabase(ctx, dbService); err != nil {
		slog.Error("Database initialization failed, not starting server", "error", err)
		return err
	}

	m := metrics.New()
	if err := m.RegisterDB(dbService.DB, cfg.Database.Name); err != nil {
		return fmt.Errorf("failed to register database metrics: %w", err)
	}

	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	categoryService := application.NewCategoryService(categoryRepo)
	categoryHandler := interfaces.NewCategoryHandler(categoryService, server.RespondJSON, server.RespondError)

	saleRepo := infrastructure.NewSaleRepository(dbService.DB)
	saleService := application.NewSaleService(saleRepo)
	saleHandler := interfaces.NewSaleHandler(saleService, server.RespondJSON, server.RespondError)

	srv := server.NewServer(categoryHandler, saleHandler, m, dbService, cfg.HTTP.AllowedOrigins)
	srv.RegisterRoutes()

	slog.Info("Server starting", "addr", cfg.HTTP.Addr())
	err = srv.ListenAndServe(ctx, cfg.HTTP.Addr(), cfg.HTTP.ShutdownTimeout)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	slog.Info("Server stopped")
	return nil
}

// initDatabase creates the schema and seeds sample data, retrying while the database
// is unreachable.
func initDatabase(ctx context.Context, dbService *database.DBService) error {
	seeder := database.NewSeeder(dbService.DB)
	return database.InitWithRetry(ctx, func(ctx context.Context) error {
		return dbService.Init(ctx, seeder)
	}, cfg.Init.MaxAttempts, cfg.Init.RetryDelay)
}
