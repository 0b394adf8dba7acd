package application

import (
	"context"

	"github.com/sebuszqo/SalesTracker/internal/sales/domain"
)

type SaleService struct {
	repo domain.SaleRepository
}

func NewSaleService(repo domain.SaleRepository) *SaleService {
	return &SaleService{repo: repo}
}

func (s *SaleService) GetAllSales(ctx context.Context) ([]domain.Sale, error) {
	return s.repo.FindAll(ctx)
}

// CreateSale validates the sale before handing it to the repository, which rejects
// unknown categories with errors.ErrInvalidCategory.
func (s *SaleService) CreateSale(ctx context.Context, sale domain.NewSale) (*domain.Sale, error) {
	if err := sale.Validate(); err != nil {
		return nil, err
	}
	sale.Value = sale.Value.Rounded()
	return s.repo.Create(ctx, sale)
}
