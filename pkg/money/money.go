package money

import (
	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits a balance is stored and reported with.
const Scale int32 = 2

// Normalize rounds d to Scale fractional digits, halves rounded away from zero.
func Normalize(d decimal.Decimal) decimal.Decimal {
	return d.Round(Scale)
}

// Amount is a monetary value that always carries exactly Scale fractional digits.
// It encodes to JSON as a bare number, e.g. 1000.00.
type Amount struct {
	value decimal.Decimal
}

// NewAmount creates an Amount from d, normalizing it to Scale digits.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{value: Normalize(d)}
}

// String formats the amount with exactly Scale fractional digits.
func (a Amount) String() string {
	return a.value.StringFixed(Scale)
}

// MarshalJSON encodes the amount as an unquoted JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}
