package decimal

import (
	"errors"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNonFinite is returned when a float amount is NaN or infinite.
var ErrNonFinite = errors.New("amount is not a finite number")

// Money represents a baht amount with exact decimal precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64.
// The value must be finite; use FromFloat for untrusted input.
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// FromFloat converts a float64, rejecting NaN and infinities
func FromFloat(value float64) (Money, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Money{}, ErrNonFinite
	}
	return NewMoney(value), nil
}

// ParseMoney parses a user entered amount such as "1,250,000.50".
// Thousands separators and surrounding spaces are ignored.
func ParseMoney(value string) (Money, error) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(value, ",", ""))
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds the money amount to satang (two decimals)
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Annual converts a monthly amount to annual
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(12))}
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Mul multiplies by a decimal factor
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor)}
}

// NonNegative floors the amount at zero
func (m Money) NonNegative() Money {
	if m.Decimal.IsNegative() {
		return Zero()
	}
	return m
}

// Min returns the minimum of two Money amounts
func Min(a, b Money) Money {
	if a.LessThan(b.Decimal) {
		return a
	}
	return b
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the amount with two decimals, no grouping
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}
