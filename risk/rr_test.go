package risk

import (
	"testing"

	"github.com/rustyeddy/tradecalc/market"
	"github.com/stretchr/testify/assert"
)

func TestCalculateRiskReward(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		symbol     string
		dir        market.Direction
		entry      float64
		stop       float64
		target     float64
		size       float64
		wantRisk   float64
		wantReward float64
		wantRatio  float64
		wantBE     float64
		wantPips   [2]float64
	}{
		{"eurusd_long", "EUR/USD", market.Long, 1.1000, 1.0950, 1.1100, 1, 500, 1000, 2.0, 33.33, [2]float64{50, 100}},
		{"eurusd_short", "EUR/USD", market.Short, 1.1000, 1.1050, 1.0900, 1, 500, 1000, 2.0, 33.33, [2]float64{50, 100}},
		{"gold_long", "GOLD", market.Long, 2000, 1990, 2030, 0.5, 500, 1500, 3.0, 25.0, [2]float64{1000, 3000}},
		{"index_one_to_one", "US30", market.Short, 39000, 39100, 38900, 2, 200, 200, 1.0, 50.0, [2]float64{100, 100}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := CalculateRiskReward(RiskRewardRequest{
				Instrument:      instrument(t, tt.symbol),
				Direction:       tt.dir,
				EntryPrice:      tt.entry,
				StopLossPrice:   tt.stop,
				TakeProfitPrice: tt.target,
				PositionSize:    tt.size,
				QuoteToAccount:  1,
			})
			assert.InDelta(t, tt.wantRisk, got.RiskAmount, 1e-9)
			assert.InDelta(t, tt.wantReward, got.RewardAmount, 1e-9)
			assert.InDelta(t, tt.wantRatio, got.RiskRewardRatio, 1e-9)
			assert.InDelta(t, tt.wantBE, got.BreakEvenWinRate, 1e-9)
			assert.InDelta(t, tt.wantPips[0], got.RiskPips, 1e-9)
			assert.InDelta(t, tt.wantPips[1], got.RewardPips, 1e-9)
		})
	}
}

func TestBreakEvenIdentity(t *testing.T) {
	t.Parallel()

	targets := []float64{1.1010, 1.1033, 1.1075, 1.1100, 1.1180, 1.1250}
	for _, target := range targets {
		got := CalculateRiskReward(RiskRewardRequest{
			Instrument:      instrument(t, "EUR/USD"),
			Direction:       market.Long,
			EntryPrice:      1.1000,
			StopLossPrice:   1.0950,
			TakeProfitPrice: target,
			PositionSize:    1,
			QuoteToAccount:  1,
		})
		be := got.BreakEvenWinRate
		assert.InDelta(t, 100-be, be*got.RiskRewardRatio, 0.1, "target %v", target)
	}
}

func TestBreakEvenWinRate(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 100.0, BreakEvenWinRate(0), 1e-12)
	assert.InDelta(t, 50.0, BreakEvenWinRate(1), 1e-12)
	assert.InDelta(t, 100.0/3, BreakEvenWinRate(2), 1e-12)
	assert.InDelta(t, 100.0, BreakEvenWinRate(-1), 1e-12)
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	p := Policy{MaxRiskPct: 2, MinRR: 1.5}

	ok := Evaluate(p, 200, 10000, 2)
	assert.True(t, ok.Allowed)
	assert.Empty(t, ok.Violations)
	assert.InDelta(t, 2.0, ok.PlannedRiskPct, 1e-9)

	bad := Evaluate(p, 300, 10000, 1.2)
	assert.False(t, bad.Allowed)
	if assert.Len(t, bad.Violations, 2) {
		assert.Equal(t, "RISK_TOO_HIGH", bad.Violations[0].Code)
		assert.Equal(t, "RR_TOO_LOW", bad.Violations[1].Code)
	}

	noBalance := Evaluate(p, 100, 0, 3)
	assert.False(t, noBalance.Allowed)
	assert.Equal(t, CodeBalance, noBalance.Violations[0].Code)

	unlimited := Evaluate(Policy{}, 5000, 10000, 0.1)
	assert.True(t, unlimited.Allowed)
}
