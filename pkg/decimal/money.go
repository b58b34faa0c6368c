package decimal

import (
	"github.com/shopspring/decimal"
)

// workingPrecision is the number of fractional digits kept by Div and by the
// intermediate steps of compounding.
const workingPrecision = 28

// noisePlaces is where accumulated representation error is cut off before a
// value is snapped to whole units. Without it 107499.9999999999999 and
// 107500.0000000000001 would ceil to different amounts.
const noisePlaces = 12

// Money represents a monetary amount in whole or fractional currency units.
// IsZero, IsPositive and IsNegative come from the embedded decimal.
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// CeilUnits rounds up to the next whole currency unit. Used for amounts that
// must never under-collect.
func (m Money) CeilUnits() Money {
	return Money{m.Decimal.Round(noisePlaces).Ceil()}
}

// RoundUnits rounds to the nearest whole currency unit, half away from zero.
func (m Money) RoundUnits() Money {
	return Money{m.Decimal.Round(noisePlaces).Round(0)}
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

// MulInt multiplies by an integer count, typically a number of periods
func (m Money) MulInt(n int) Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(int64(n)))}
}

// Div divides by a decimal factor at working precision
func (m Money) Div(factor decimal.Decimal) Money {
	return Money{m.Decimal.DivRound(factor, workingPrecision)}
}

// DivInt divides by an integer count at working precision
func (m Money) DivInt(n int) Money {
	return m.Div(decimal.NewFromInt(int64(n)))
}

// GreaterThan checks if this amount is greater than another
func (m Money) GreaterThan(other Money) bool {
	return m.Decimal.GreaterThan(other.Decimal)
}

// GreaterThanOrEqual checks if this amount is greater than or equal to another
func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.Decimal.GreaterThanOrEqual(other.Decimal)
}

// LessThan checks if this amount is less than another
func (m Money) LessThan(other Money) bool {
	return m.Decimal.LessThan(other.Decimal)
}

// LessThanOrEqual checks if this amount is less than or equal to another
func (m Money) LessThanOrEqual(other Money) bool {
	return m.Decimal.LessThanOrEqual(other.Decimal)
}

// Equal checks if this amount equals another
func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}

// Max returns the maximum of two Money amounts
func Max(a, b Money) Money {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// Compound raises base to a non-negative integer power by repeated squaring,
// trimming every intermediate product to working precision so long terms do
// not grow thousands of digits.
func Compound(base decimal.Decimal, n int) decimal.Decimal {
	result := decimal.NewFromInt(1)
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base).Round(workingPrecision)
		}
		base = base.Mul(base).Round(workingPrecision)
		n >>= 1
	}
	return result
}

// String returns the shortest exact representation, e.g. "104641" or "8721.8"
func (m Money) String() string {
	return m.Decimal.String()
}
