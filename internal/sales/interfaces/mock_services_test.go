package interfaces

import (
	"context"
	"errors"
	"time"

	"github.com/sebuszqo/SalesTracker/internal/sales/domain"
	salesErrors "github.com/sebuszqo/SalesTracker/internal/sales/errors"
)

type MockCategoryService struct {
	categories []domain.Category
	shouldFail bool
	createErr  error
}

func (m *MockCategoryService) GetAllCategories(_ context.Context) ([]domain.Category, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	return m.categories, nil
}

func (m *MockCategoryService) CreateCategory(_ context.Context, name string) (*domain.Category, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	name, err := domain.NormalizeCategoryName(name)
	if err != nil {
		return nil, err
	}
	category := domain.Category{ID: int64(len(m.categories) + 1), Name: name}
	m.categories = append(m.categories, category)
	return &category, nil
}

type MockSaleService struct {
	categories []domain.Category
	sales      []domain.Sale
	shouldFail bool
}

func (m *MockSaleService) GetAllSales(_ context.Context) ([]domain.Sale, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	return m.sales, nil
}

func (m *MockSaleService) CreateSale(_ context.Context, sale domain.NewSale) (*domain.Sale, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	if err := sale.Validate(); err != nil {
		return nil, err
	}
	for _, category := range m.categories {
		if category.ID != sale.CategoryID {
			continue
		}
		created := domain.Sale{
			ID:           int64(len(m.sales) + 1),
			Value:        sale.Value.Rounded(),
			CreatedAt:    time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC),
			CategoryID:   category.ID,
			CategoryName: category.Name,
		}
		m.sales = append(m.sales, created)
		return &created, nil
	}
	return nil, salesErrors.ErrInvalidCategory
}
