package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/sebuszqo/SalesTracker/internal/sales/errors"
)

type Sale struct {
	ID           int64     `json:"id"`
	Value        Amount    `json:"value"`
	CreatedAt    time.Time `json:"created_at"`
	CategoryID   int64     `json:"category_id"`
	CategoryName string    `json:"category_name"`
}

// NewSale is the caller-supplied part of a sale; id and created_at come from the database.
type NewSale struct {
	CategoryID int64
	Value      Amount
}

type SaleRepository interface {
	FindAll(ctx context.Context) ([]Sale, error)
	// Create checks the category, inserts the sale and returns it joined with the
	// category name, all in one transaction. A missing category yields errors.ErrInvalidCategory.
	Create(ctx context.Context, sale NewSale) (*Sale, error)
}

func (s *NewSale) Validate() error {
	var errs errors.ValidationErrors
	if s.CategoryID <= 0 {
		errs.Add(errors.ErrInvalidCategory)
	}
	if err := s.validateValue(); err != nil {
		errs.Add(err)
	}
	return errs.Err()
}

// validateValue checks sign and magnitude before rounding; rounding a value with a
// huge exponent allocates a power of ten of that size.
func (s *NewSale) validateValue() error {
	tooSmall := errors.NewFieldValidationError("value", "must be greater than zero")
	tooLarge := errors.NewFieldValidationError("value", "must be less than "+MaxAmount.String())

	switch {
	case s.Value.Sign() <= 0:
		return tooSmall
	case s.Value.IntegerDigits() > maxIntegerDigits:
		return tooLarge
	case s.Value.Exponent() < -MaxInputScale:
		return errors.NewFieldValidationError("value", fmt.Sprintf("must have at most %d decimal places", MaxInputScale))
	}

	value := s.Value.Rounded()
	if !value.IsPositive() {
		return tooSmall
	}
	if value.Cmp(MaxAmount) >= 0 {
		return tooLarge
	}
	return nil
}
