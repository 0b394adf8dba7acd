package domain

import (
	"context"
	"strings"

	"github.com/sebuszqo/SalesTracker/internal/sales/errors"
)

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]Category, error)
	Create(ctx context.Context, name string) (*Category, error)
}

// NormalizeCategoryName trims the name and rejects blank values.
func NormalizeCategoryName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.NewFieldValidationError("name", "is required")
	}
	return name, nil
}
