package application

import (
	"context"
	"errors"
	"time"

	"github.com/sebuszqo/SalesTracker/internal/sales/domain"
	salesErrors "github.com/sebuszqo/SalesTracker/internal/sales/errors"
)

type MockCategoryRepository struct {
	Categories []domain.Category
	shouldFail bool
}

func (m *MockCategoryRepository) FindAll(_ context.Context) ([]domain.Category, error) {
	if m.shouldFail {
		return nil, errors.New("database error")
	}
	return m.Categories, nil
}

func (m *MockCategoryRepository) Create(_ context.Context, name string) (*domain.Category, error) {
	if m.shouldFail {
		return nil, errors.New("database error")
	}
	category := domain.Category{ID: int64(len(m.Categories) + 1), Name: name}
	m.Categories = append(m.Categories, category)
	return &category, nil
}

type MockSaleRepository struct {
	Categories []domain.Category
	Sales      []domain.Sale
	shouldFail bool
}

func (m *MockSaleRepository) FindAll(_ context.Context) ([]domain.Sale, error) {
	if m.shouldFail {
		return nil, errors.New("database error")
	}
	return m.Sales, nil
}

func (m *MockSaleRepository) Create(_ context.Context, sale domain.NewSale) (*domain.Sale, error) {
	if m.shouldFail {
		return nil, errors.New("database error")
	}
	for _, category := range m.Categories {
		if category.ID == sale.CategoryID {
			created := domain.Sale{
				ID:           int64(len(m.Sales) + 1),
				Value:        sale.Value,
				CreatedAt:    time.Now().UTC(),
				CategoryID:   category.ID,
				CategoryName: category.Name,
			}
			m.Sales = append(m.Sales, created)
			return &created, nil
		}
	}
	return nil, salesErrors.ErrInvalidCategory
}
