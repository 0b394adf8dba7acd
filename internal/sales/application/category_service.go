package application

import (
	"context"

	"github.com/sebuszqo/SalesTracker/internal/sales/domain"
)

type CategoryService struct {
	repo domain.CategoryRepository
}

func NewCategoryService(repo domain.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) GetAllCategories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.FindAll(ctx)
}

func (s *CategoryService) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	name, err := domain.NormalizeCategoryName(name)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, name)
}
