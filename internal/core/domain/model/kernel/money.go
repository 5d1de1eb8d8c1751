package kernel

import (
	"fmt"

	"parcelmarket/internal/pkg/errs"
)

// Money represents a monetary amount in integer cents.
// Storing cents avoids floating-point drift in fee and payout arithmetic;
// every multiplicative operation rounds back to whole cents (half-up) before
// the value is used further.
//
// The zero value is a valid amount of 0.00.
type Money struct {
	cents int64
}

// NewMoneyFromCents creates a Money amount from whole cents.
// Negative amounts are rejected: the marketplace never deals in debts.
func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%d cents is negative", cents))
	}
	return Money{cents: cents}, nil
}

// Cents returns the amount in whole cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Float64 returns the amount in currency units (e.g. 400 cents -> 4.00).
// Intended for presentation; arithmetic stays in cents.
func (m Money) Float64() float64 {
	return float64(m.cents) / 100
}

// MulPercentHalfUp multiplies the amount by percent/100 and rounds the result
// to whole cents using half-up rounding. For example, 4.00 at 20 percent
// yields exactly 0.80.
func (m Money) MulPercentHalfUp(percent int64) Money {
	return Money{cents: (m.cents*percent + 50) / 100}
}

// Sub returns the difference m - other.
// The caller is responsible for not producing negative amounts; the result is
// not validated so reconciliation code can detect imbalances explicitly.
func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

// Add returns the sum m + other.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String returns the amount formatted with two decimal places, e.g. "4.00".
// This method implements the fmt.Stringer interface.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
