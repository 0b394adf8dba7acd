package domain

import (
	"github.com/shopspring/decimal"
)

// AmountScale matches the NUMERIC(10,2) column sales.value is stored in.
const AmountScale = 2

// MaxAmount is the first value NUMERIC(10,2) can no longer hold.
var MaxAmount = decimal.New(1, 10-AmountScale)

const (
	maxIntegerDigits = 10 - AmountScale
	// MaxInputScale bounds the decimal places accepted before rounding.
	MaxInputScale = 32
)

// Amount is a monetary value with two decimal places. It is rendered in JSON as a
// string ("99.90") the same way Postgres renders NUMERIC, and accepts both numbers and
// numeric strings on input.
type Amount struct {
	decimal.Decimal
}

func MustParseAmount(s string) Amount {
	return Amount{Decimal: decimal.RequireFromString(s)}
}

// IntegerDigits counts the digits left of the decimal point without rescaling, so it
// stays cheap for inputs like 1e50000000.
func (a Amount) IntegerDigits() int {
	if a.Sign() == 0 {
		return 0
	}
	return a.NumDigits() + int(a.Exponent())
}

func (a Amount) Rounded() Amount {
	return Amount{Decimal: a.Round(AmountScale)}
}

func (a Amount) String() string {
	return a.StringFixed(AmountScale)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}
