// Package pnl values closed or hypothetically closed trades.
//
// The functions here assume their input already passed the risk package
// validators and never return errors.
package pnl

import (
	"math"

	"github.com/rustyeddy/tradecalc/internal/num"
	"github.com/rustyeddy/tradecalc/market"
)

type TradeRequest struct {
	Instrument   market.Instrument
	Direction    market.Direction
	EntryPrice   float64
	ExitPrice    float64
	PositionSize float64 // lots

	// QuoteToAccount converts quote currency into account currency.
	// 1 when they are the same, see market.QuoteToAccountRate. It must be
	// > 0; the zero value yields a zero P&L, so check requests with
	// risk.ValidateTradeRequest.
	QuoteToAccount float64
}

// Breakdown keeps the intermediate values behind a PLResult.
type Breakdown struct {
	PriceMovement      float64 // exit - entry, 5 dp
	ContractValue      float64 // position size * value per unit
	TotalPositionValue float64 // contract value * entry price, quote currency
}

type PLResult struct {
	ProfitLoss       float64 // account currency, 2 dp
	PipMovement      float64 // always >= 0
	PercentageReturn float64
	Breakdown        Breakdown
}

// CalculatePL computes the profit or loss of a trade in account currency.
// Direction is applied once; a short is valued on the negated price move.
func CalculatePL(req TradeRequest) PLResult {
	priceMovement := req.ExitPrice - req.EntryPrice
	effective := priceMovement * req.Direction.Sign()

	pipMovement := math.Abs(priceMovement) / req.Instrument.PipSize

	contractValue := req.PositionSize * req.Instrument.ValuePerUnit()
	profitLoss := effective * contractValue * req.QuoteToAccount

	var pctReturn float64
	if denom := req.EntryPrice * req.PositionSize; denom != 0 {
		pctReturn = profitLoss / denom * 100
	}

	return PLResult{
		ProfitLoss:       num.Money(profitLoss),
		PipMovement:      num.Round(pipMovement, 2),
		PercentageReturn: num.Round(pctReturn, 2),
		Breakdown: Breakdown{
			PriceMovement:      num.Round(priceMovement, 5),
			ContractValue:      num.Money(contractValue),
			TotalPositionValue: num.Money(contractValue * req.EntryPrice),
		},
	}
}
