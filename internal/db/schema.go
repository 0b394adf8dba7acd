package database

import (
	"context"
	"fmt"
	"log/slog"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id   SERIAL PRIMARY KEY,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id          SERIAL PRIMARY KEY,
		category_id INTEGER NOT NULL REFERENCES categories(id),
		value       NUMERIC(10,2) NOT NULL,
		created_at  TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
}

// EnsureSchema creates the categories and sales tables when they are missing.
// It is safe to call on every startup.
func (s *DBService) EnsureSchema(ctx context.Context) error {
	slog.Info("Ensuring database schema")

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin schema transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range schemaStatements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit schema: %w", err)
	}

	slog.Info("Schema ensured", "tables", []string{"categories", "sales"})
	return nil
}
