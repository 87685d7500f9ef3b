package risk

// EUR/USD in a USD account → QuoteToAccount = 1.0
// USD/JPY in a USD account → QuoteToAccount = JPY→USD rate

import (
	"math"

	"github.com/rustyeddy/tradecalc/internal/num"
	"github.com/rustyeddy/tradecalc/market"
)

type PositionSizeRequest struct {
	AccountBalance float64
	RiskPercentage float64 // 2 means 2%
	EntryPrice     float64
	StopLossPrice  float64
	Instrument     market.Instrument
	QuoteToAccount float64 // required, > 0
}

type PositionSizeResult struct {
	PositionSize float64 // lots, unrounded; see format.Lots
	RiskAmount   float64
	PipRisk      float64

	// MarginRequired is nil when the instrument carries no margin data.
	MarginRequired *float64
}

// CalculatePositionSize returns the position that loses RiskPercentage of
// the balance when the stop is hit. It is the inverse of pnl.CalculatePL
// for one unit of position size.
func CalculatePositionSize(req PositionSizeRequest) PositionSizeResult {
	riskAmount := req.AccountBalance * req.RiskPercentage / 100
	priceRisk := math.Abs(req.EntryPrice - req.StopLossPrice)
	pipRisk := priceRisk / req.Instrument.PipSize

	size := riskAmount / (priceRisk * req.Instrument.ValuePerUnit() * req.QuoteToAccount)

	res := PositionSizeResult{
		PositionSize: size,
		RiskAmount:   num.Money(riskAmount),
		PipRisk:      num.Round(pipRisk, 2),
	}
	if m, ok := MarginRequired(req.Instrument, size, req.EntryPrice, req.QuoteToAccount); ok {
		res.MarginRequired = &m
	}
	return res
}
