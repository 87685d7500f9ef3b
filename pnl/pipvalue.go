package pnl

import "github.com/rustyeddy/tradecalc/market"

type PipValueRequest struct {
	Instrument     market.Instrument
	PositionSize   float64
	QuoteToAccount float64 // required, > 0
}

type PipValueResult struct {
	PipValue     float64 // account currency per pip, unrounded
	ContractSize float64 // value per unit of position size
	TickSize     float64 // pip size
}

// CalculatePipValue returns what one pip of movement is worth for the
// position. It uses the same per-unit factor as CalculatePL.
func CalculatePipValue(req PipValueRequest) PipValueResult {
	perUnit := req.Instrument.ValuePerUnit()
	return PipValueResult{
		PipValue:     req.Instrument.PipSize * perUnit * req.PositionSize * req.QuoteToAccount,
		ContractSize: perUnit,
		TickSize:     req.Instrument.PipSize,
	}
}
