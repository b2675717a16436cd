package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a monetary amount in whole currency units with exact
// decimal arithmetic. Balances, charges and repayments are whole-unit
// quantities; interest is truncated to whole units as it accrues, so no
// fractional amounts can appear in a trajectory.
type Money struct {
	decimal.Decimal
}

// New creates a Money amount from an int64 number of currency units.
func New(value int64) Money {
	return Money{decimal.NewFromInt(value)}
}

// NewFromDecimal wraps a decimal.Decimal as a Money amount.
func NewFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewFromString parses a Money amount from a string.
func NewFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Zero returns a zero Money amount.
func Zero() Money {
	return Money{decimal.Zero}
}

// MonthlyInterest computes one month of interest on the amount at the given
// annual percentage rate, truncated toward zero to a whole currency unit:
// floor(amount x rate / 100 / 12). The truncation is deliberate, monthly
// interest never rounds up.
func (m Money) MonthlyInterest(annualRatePercent decimal.Decimal) Money {
	return Money{m.Decimal.Mul(annualRatePercent).Div(decimal.NewFromInt(1200)).Floor()}
}

// Add adds another Money amount.
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount.
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Mul multiplies by a decimal factor.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor)}
}

// MulInt multiplies by an integer factor.
func (m Money) MulInt(factor int64) Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(factor))}
}

// GreaterThan checks if this amount is greater than another.
func (m Money) GreaterThan(other Money) bool {
	return m.Decimal.GreaterThan(other.Decimal)
}

// GreaterThanOrEqual checks if this amount is greater than or equal to another.
func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.Decimal.GreaterThanOrEqual(other.Decimal)
}

// LessThan checks if this amount is less than another.
func (m Money) LessThan(other Money) bool {
	return m.Decimal.LessThan(other.Decimal)
}

// LessThanOrEqual checks if this amount is less than or equal to another.
func (m Money) LessThanOrEqual(other Money) bool {
	return m.Decimal.LessThanOrEqual(other.Decimal)
}

// Equal checks if this amount equals another.
func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}

// IsZero checks if the amount is zero.
func (m Money) IsZero() bool {
	return m.Decimal.IsZero()
}

// IsPositive checks if the amount is positive.
func (m Money) IsPositive() bool {
	return m.Decimal.IsPositive()
}

// IsNegative checks if the amount is negative.
func (m Money) IsNegative() bool {
	return m.Decimal.IsNegative()
}

// FloorAtZero clamps a negative amount to zero. Balances are never reported
// below zero.
func (m Money) FloorAtZero() Money {
	if m.IsNegative() {
		return Zero()
	}
	return m
}

// Min returns the smaller of two Money amounts.
func Min(a, b Money) Money {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the larger of two Money amounts.
func Max(a, b Money) Money {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// String returns the plain whole-unit representation.
func (m Money) String() string {
	return m.Decimal.StringFixed(0)
}

// Format returns the amount with thousands separators for console display.
func (m Money) Format() string {
	s := m.String()
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
