// Package num holds the decimal rounding shared by the engines and formatters.
package num

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round rounds x to places decimal places, half away from zero. Rounding
// goes through a decimal so 1.005 rounds to 1.01 rather than 1.00.
// NaN and infinities are returned unchanged.
func Round(x float64, places int32) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	f, _ := decimal.NewFromFloat(x).Round(places).Float64()
	if f == 0 {
		// drop negative zero
		return 0
	}
	return f
}

// Money rounds to cents.
func Money(x float64) float64 { return Round(x, 2) }

// Fixed renders x with exactly places decimals.
func Fixed(x float64, places int32) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return decimal.Zero.StringFixed(places)
	}
	return decimal.NewFromFloat(x).StringFixed(places)
}
