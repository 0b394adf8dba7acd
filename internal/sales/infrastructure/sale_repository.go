package infrastructure

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sebuszqo/SalesTracker/internal/sales/domain"
	salesErrors "github.com/sebuszqo/SalesTracker/internal/sales/errors"
)

const selectSalesWithCategory = `
	SELECT
		s.id,
		s.value,
		s.created_at,
		s.category_id,
		c.name AS category_name
	FROM sales s
	JOIN categories c ON c.id = s.category_id`

type SaleRepository struct {
	db *sql.DB
}

func NewSaleRepository(db *sql.DB) *SaleRepository {
	return &SaleRepository{db: db}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSale(row rowScanner) (domain.Sale, error) {
	var sale domain.Sale
	err := row.Scan(&sale.ID, &sale.Value, &sale.CreatedAt, &sale.CategoryID, &sale.CategoryName)
	return sale, err
}

func (r *SaleRepository) FindAll(ctx context.Context) ([]domain.Sale, error) {
	rows, err := r.db.QueryContext(ctx, selectSalesWithCategory+" ORDER BY s.created_at DESC, s.id DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	sales := []domain.Sale{}
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale: %w", err)
		}
		sales = append(sales, sale)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sales: %w", err)
	}

	slog.Debug("retrieved sales", "count", len(sales))
	return sales, nil
}

func (r *SaleRepository) Create(ctx context.Context, newSale domain.NewSale) (*domain.Sale, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// FOR KEY SHARE keeps the category row from disappearing before the insert.
	var categoryID int64
	err = tx.QueryRowContext(ctx,
		"SELECT id FROM categories WHERE id = $1 FOR KEY SHARE", newSale.CategoryID,
	).Scan(&categoryID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, salesErrors.ErrInvalidCategory
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check category %d: %w", newSale.CategoryID, err)
	}

	var saleID int64
	err = tx.QueryRowContext(ctx,
		"INSERT INTO sales (category_id, value) VALUES ($1, $2) RETURNING id",
		categoryID, newSale.Value.Rounded(),
	).Scan(&saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert sale: %w", err)
	}

	sale, err := scanSale(tx.QueryRowContext(ctx, selectSalesWithCategory+" WHERE s.id = $1", saleID))
	if err != nil {
		return nil, fmt.Errorf("failed to load created sale %d: %w", saleID, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit sale: %w", err)
	}

	slog.Info("created sale", "id", sale.ID, "category_id", sale.CategoryID, "value", sale.Value.String())
	return &sale, nil
}
