package risk

import (
	"math"

	"github.com/rustyeddy/tradecalc/internal/num"
	"github.com/rustyeddy/tradecalc/market"
	"github.com/rustyeddy/tradecalc/pnl"
)

type RiskRewardRequest struct {
	Instrument      market.Instrument
	Direction       market.Direction
	EntryPrice      float64
	StopLossPrice   float64
	TakeProfitPrice float64
	PositionSize    float64
	QuoteToAccount  float64 // required, > 0
}

type RiskRewardResult struct {
	RiskAmount       float64 // positive
	RewardAmount     float64 // positive
	RiskRewardRatio  float64
	BreakEvenWinRate float64 // percent
	RiskPips         float64
	RewardPips       float64
}

// CalculateRiskReward values the stop and the target with pnl.CalculatePL.
// Callers must run ValidateTradeSetup first; with the legs on the wrong
// side the ratio means nothing.
func CalculateRiskReward(req RiskRewardRequest) RiskRewardResult {
	leg := func(exit float64) pnl.PLResult {
		return pnl.CalculatePL(pnl.TradeRequest{
			Instrument:     req.Instrument,
			Direction:      req.Direction,
			EntryPrice:     req.EntryPrice,
			ExitPrice:      exit,
			PositionSize:   req.PositionSize,
			QuoteToAccount: req.QuoteToAccount,
		})
	}
	stop := leg(req.StopLossPrice)
	target := leg(req.TakeProfitPrice)

	risk := math.Abs(stop.ProfitLoss)
	reward := math.Abs(target.ProfitLoss)

	var ratio float64
	if risk > 0 {
		ratio = reward / risk
	}

	return RiskRewardResult{
		RiskAmount:       risk,
		RewardAmount:     reward,
		RiskRewardRatio:  num.Round(ratio, 2),
		BreakEvenWinRate: num.Round(BreakEvenWinRate(ratio), 2),
		RiskPips:         stop.PipMovement,
		RewardPips:       target.PipMovement,
	}
}

// BreakEvenWinRate is the win rate, in percent, at which a strategy with
// the given reward:risk ratio has zero expected value.
func BreakEvenWinRate(ratio float64) float64 {
	if ratio < 0 {
		return 100
	}
	return 100 / (1 + ratio)
}
