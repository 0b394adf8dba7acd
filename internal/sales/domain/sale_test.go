package domain

import (
	"testing"
	"time"

	salesErrors "github.com/sebuszqo/SalesTracker/internal/sales/errors"
	"github.com/stretchr/testify/assert"
)

func TestNewSaleValidate_Valid(t *testing.T) {
	sale := NewSale{CategoryID: 1, Value: MustParseAmount("99.90")}
	assert.NoError(t, sale.Validate())
}

func TestNewSaleValidate_NonPositiveValue(t *testing.T) {
	for _, raw := range []string{"0", "-10", "0.001"} {
		sale := NewSale{CategoryID: 1, Value: MustParseAmount(raw)}
		err := sale.Validate()
		assert.True(t, salesErrors.IsValidationError(err), "value %s", raw)
		assert.EqualError(t, err, "value must be greater than zero")
	}
}

func TestNewSaleValidate_ValueTooLarge(t *testing.T) {
	sale := NewSale{CategoryID: 1, Value: MustParseAmount("99999999.995")}
	err := sale.Validate()
	assert.True(t, salesErrors.IsValidationError(err))

	sale.Value = MustParseAmount("99999999.99")
	assert.NoError(t, sale.Validate())
}

func TestNewSaleValidate_MagnitudeCheckedBeforeRounding(t *testing.T) {
	tests := []struct {
		raw     string
		message string
	}{
		{"1e50000000", "value must be less than 100000000"},
		{"100000000", "value must be less than 100000000"},
		{"-1e50000000", "value must be greater than zero"},
		{"1e-50000000", "value must have at most 32 decimal places"},
	}
	for _, tt := range tests {
		start := time.Now()
		sale := NewSale{CategoryID: 1, Value: MustParseAmount(tt.raw)}
		err := sale.Validate()

		assert.Less(t, time.Since(start), time.Second, tt.raw)
		assert.True(t, salesErrors.IsValidationError(err), tt.raw)
		assert.EqualError(t, err, tt.message, tt.raw)
	}

	sale := NewSale{CategoryID: 1, Value: MustParseAmount("1.00000000000000000000000000000001")}
	assert.NoError(t, sale.Validate())
}

func TestNewSaleValidate_CollectsAllErrors(t *testing.T) {
	sale := NewSale{CategoryID: 0, Value: MustParseAmount("-1")}
	err := sale.Validate()
	assert.True(t, salesErrors.IsValidationErrors(err))

	var ve *salesErrors.ValidationErrors
	assert.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Errors, 2)
	assert.ErrorIs(t, ve.Errors[0], salesErrors.ErrInvalidCategory)
}

func TestNormalizeCategoryName(t *testing.T) {
	name, err := NormalizeCategoryName("  Livros ")
	assert.NoError(t, err)
	assert.Equal(t, "Livros", name)

	_, err = NormalizeCategoryName("   ")
	assert.True(t, salesErrors.IsValidationError(err))
	assert.EqualError(t, err, "name is required")
}
