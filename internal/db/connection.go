package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sebuszqo/SalesTracker/internal/config"
)

// DBService owns the connection pool shared by every repository.
type DBService struct {
	DB *sql.DB
}

// NewDBService opens the pool without contacting the server; the startup retry loop
// makes the first round trip so an unreachable database does not abort construction.
func NewDBService(cfg config.Database) (*DBService, error) {
	db, err := sql.Open("pgx", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("could not open db connection: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return &DBService{DB: db}, nil
}

// Health pings the database and reports pool statistics. Failure detail is only logged.
func (s *DBService) Health(ctx context.Context) map[string]string {
	stats := make(map[string]string)

	err := s.DB.PingContext(ctx)
	if err != nil {
		slog.Error("Database health check failed", "error", err)
		stats["status"] = "down"
		return stats
	}

	dbStats := s.DB.Stats()
	stats["status"] = "up"
	stats["message"] = "It's healthy"
	stats["open_connections"] = strconv.Itoa(dbStats.OpenConnections)
	stats["in_use"] = strconv.Itoa(dbStats.InUse)
	stats["idle"] = strconv.Itoa(dbStats.Idle)
	return stats
}

// Init runs one startup unit: ensure the schema, then seed if the database is empty.
func (s *DBService) Init(ctx context.Context, seeder *Seeder) error {
	if err := s.EnsureSchema(ctx); err != nil {
		return err
	}
	if _, err := seeder.SeedIfEmpty(ctx); err != nil {
		return err
	}
	return nil
}

func (s *DBService) Close() error {
	slog.Info("Closing database connection")
	return s.DB.Close()
}
