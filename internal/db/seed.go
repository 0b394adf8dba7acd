package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sebuszqo/SalesTracker/internal/sales/domain"
)

var ErrUnknownSeedCategory = errors.New("seed sale references unknown category")

// seedLockKey serializes concurrent seeders (several replicas booting at once).
const seedLockKey = 7_346_121

type SeedSale struct {
	Category string
	Value    domain.Amount
}

var DefaultSeedCategories = []string{"Eletrônicos", "Roupas", "Alimentos", "Livros"}

var DefaultSeedSales = []SeedSale{
	{"Eletrônicos", domain.MustParseAmount("2500.00")},
	{"Eletrônicos", domain.MustParseAmount("1999.99")},
	{"Eletrônicos", domain.MustParseAmount("350.50")},
	{"Roupas", domain.MustParseAmount("120.00")},
	{"Roupas", domain.MustParseAmount("80.90")},
	{"Roupas", domain.MustParseAmount("200.00")},
	{"Alimentos", domain.MustParseAmount("35.50")},
	{"Alimentos", domain.MustParseAmount("89.10")},
	{"Alimentos", domain.MustParseAmount("15.00")},
	{"Livros", domain.MustParseAmount("59.90")},
	{"Livros", domain.MustParseAmount("39.90")},
	{"Livros", domain.MustParseAmount("89.90")},
	{"Eletrônicos", domain.MustParseAmount("499.90")},
	{"Roupas", domain.MustParseAmount("60.00")},
	{"Alimentos", domain.MustParseAmount("27.75")},
	{"Eletrônicos", domain.MustParseAmount("799.90")},
	{"Alimentos", domain.MustParseAmount("12.30")},
	{"Livros", domain.MustParseAmount("24.90")},
	{"Roupas", domain.MustParseAmount("140.00")},
	{"Eletrônicos", domain.MustParseAmount("150.00")},
}

// Seeder populates sample data once, when the categories table is empty.
type Seeder struct {
	db         *sql.DB
	Categories []string
	Sales      []SeedSale
	Now        func() time.Time
}

func NewSeeder(db *sql.DB) *Seeder {
	return &Seeder{
		db:         db,
		Categories: append([]string(nil), DefaultSeedCategories...),
		Sales:      append([]SeedSale(nil), DefaultSeedSales...),
		Now:        func() time.Time { return time.Now().UTC() },
	}
}

// SeedIfEmpty inserts the sample categories and sales in a single transaction when no
// category exists yet. It reports whether anything was inserted. On failure everything
// is rolled back and the error is returned; retrying is left to the caller.
func (s *Seeder) SeedIfEmpty(ctx context.Context) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin seed transaction: %w", err)
	}

	seeded, err := s.seedTx(ctx, tx)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			slog.Error("Seed rollback failed", "error", rbErr)
		}
		slog.Error("Error seeding database, rolled back", "error", err)
		return false, err
	}
	if !seeded {
		return false, tx.Rollback()
	}

	if err := tx.Commit(); err != nil {
		slog.Error("Error committing seed", "error", err)
		return false, fmt.Errorf("failed to commit seed: %w", err)
	}

	slog.Info("Seed completed", "categories", len(s.Categories), "sales", len(s.Sales))
	return true, nil
}

func (s *Seeder) seedTx(ctx context.Context, tx *sql.Tx) (bool, error) {
	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", seedLockKey); err != nil {
		return false, fmt.Errorf("failed to acquire seed lock: %w", err)
	}

	var count int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return false, fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		slog.Info("Seed skipped, categories already present", "count", count)
		return false, nil
	}

	slog.Info("Seeding database with sample data")

	categoryIDs := make(map[string]int64, len(s.Categories))
	for _, name := range s.Categories {
		var id int64
		var inserted string
		err := tx.QueryRowContext(ctx,
			"INSERT INTO categories (name) VALUES ($1) RETURNING id, name", name,
		).Scan(&id, &inserted)
		if err != nil {
			return false, fmt.Errorf("failed to insert seed category %q: %w", name, err)
		}
		categoryIDs[inserted] = id
	}

	now := s.Now()
	for i, sale := range s.Sales {
		categoryID, ok := categoryIDs[sale.Category]
		if !ok {
			return false, fmt.Errorf("%w: %q (sale %d)", ErrUnknownSeedCategory, sale.Category, i)
		}
		createdAt := now.Add(-time.Duration(i) * time.Hour)

		_, err := tx.ExecContext(ctx,
			"INSERT INTO sales (category_id, value, created_at) VALUES ($1, $2, $3)",
			categoryID, sale.Value, createdAt,
		)
		if err != nil {
			return false, fmt.Errorf("failed to insert seed sale %d: %w", i, err)
		}
	}

	return true, nil
}
