package networth

import (
	"math"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Ratio is a debt ratio expressed in percent. Infinite marks a month with
// debts but no assets; it is a value, not a failure.
type Ratio struct {
	Percent  decimal.Decimal
	Infinite bool
}

// Infinity is the sentinel for debts held against zero assets.
var Infinity = Ratio{Infinite: true}

// DebtRatio returns debts / assets * 100.
//
// Assets are a sum of positive balances and are never negative, so the only
// degenerate denominator is zero: with positive debts the result is
// Infinity, with no debts it is 0.
func DebtRatio(assets, debts decimal.Decimal) Ratio {
	if assets.IsZero() {
		if debts.IsPositive() {
			return Infinity
		}
		return Ratio{}
	}
	return Ratio{Percent: debts.Div(assets).Mul(hundred)}
}

// Equal reports whether two ratios hold the same value.
func (r Ratio) Equal(o Ratio) bool {
	if r.Infinite || o.Infinite {
		return r.Infinite == o.Infinite
	}
	return r.Percent.Equal(o.Percent)
}

// Float64 returns the ratio as a float, +Inf for the sentinel.
func (r Ratio) Float64() float64 {
	if r.Infinite {
		return math.Inf(1)
	}
	return r.Percent.InexactFloat64()
}

// String renders the percentage with two decimals, or "Infinity".
func (r Ratio) String() string {
	if r.Infinite {
		return "Infinity"
	}
	return r.Percent.StringFixed(2)
}

// MarshalJSON writes a bare number, or the string "Infinity" since JSON has
// no infinite number.
func (r Ratio) MarshalJSON() ([]byte, error) {
	if r.Infinite {
		return []byte(`"Infinity"`), nil
	}
	return []byte(r.Percent.StringFixed(2)), nil
}
