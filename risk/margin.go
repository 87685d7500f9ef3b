package risk

import (
	"math"

	"github.com/rustyeddy/tradecalc/internal/num"
	"github.com/rustyeddy/tradecalc/market"
)

// MarginRequired estimates the margin held for a position at price. The
// second result is false when the instrument has no margin rate.
func MarginRequired(inst market.Instrument, size, price, quoteToAccount float64) (float64, bool) {
	if inst.MarginRate <= 0 {
		return 0, false
	}
	notionalQuote := math.Abs(size) * inst.ValuePerUnit() * price
	notionalAccount := notionalQuote * quoteToAccount
	return num.Money(notionalAccount * inst.MarginRate), true
}
