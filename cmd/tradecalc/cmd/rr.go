package cmd

import (
	"fmt"

	"github.com/rustyeddy/tradecalc/format"
	"github.com/rustyeddy/tradecalc/risk"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rrCmd = &cobra.Command{
	Use:   "rr <instrument>",
	Short: "Compute risk/reward for a planned trade",
	Long: `Compute the risk amount, reward amount, reward:risk ratio and the
break-even win rate of a planned trade, then check it against the risk
limits in the config.

Example:
  tradecalc rr EUR/USD --side long --entry 1.1000 --stop 1.0950 --target 1.1100 --size 1`,
	Args: cobra.ExactArgs(1),
	RunE: runRR,
}

var rrFlags struct {
	side   string
	entry  float64
	stop   float64
	target float64
	size   float64
	rate   float64
}

func init() {
	rootCmd.AddCommand(rrCmd)

	f := rrCmd.Flags()
	f.StringVar(&rrFlags.side, "side", "long", "trade direction: long or short")
	f.Float64Var(&rrFlags.entry, "entry", 0, "entry price (required)")
	f.Float64Var(&rrFlags.stop, "stop", 0, "stop loss price (required)")
	f.Float64Var(&rrFlags.target, "target", 0, "take profit price (required)")
	f.Float64Var(&rrFlags.size, "size", 1, "position size in lots")
	f.Float64Var(&rrFlags.rate, "rate", 0, "quote to account currency rate (default: from config)")
	rrCmd.MarkFlagRequired("entry")
	rrCmd.MarkFlagRequired("stop")
	rrCmd.MarkFlagRequired("target")
}

func runRR(cmd *cobra.Command, args []string) error {
	inst, err := lookupInstrument(args[0])
	if err != nil {
		return err
	}
	dir, err := parseDirection(rrFlags.side)
	if err != nil {
		return err
	}
	if err := risk.ValidateTradeSetup(rrFlags.entry, rrFlags.stop, rrFlags.target, dir); err != nil {
		return err
	}
	if err := risk.ValidatePositionSize(rrFlags.size); err != nil {
		return err
	}
	rate, err := conversionRate(inst, rrFlags.rate, rrFlags.entry)
	if err != nil {
		return err
	}

	req := risk.RiskRewardRequest{
		Instrument:      inst,
		Direction:       dir,
		EntryPrice:      rrFlags.entry,
		StopLossPrice:   rrFlags.stop,
		TakeProfitPrice: rrFlags.target,
		PositionSize:    rrFlags.size,
		QuoteToAccount:  rate,
	}
	if err := risk.ValidateRiskRewardRequest(req); err != nil {
		return err
	}
	res := risk.CalculateRiskReward(req)
	logger.Debug("risk/reward computed",
		zap.String("instrument", inst.Symbol),
		zap.Float64("ratio", res.RiskRewardRatio),
		zap.Float64("break_even", res.BreakEvenWinRate),
	)

	out := cmd.OutOrStdout()
	cur := cfg.Account.Currency
	fmt.Fprintf(out, "Instrument:     %s (%s)\n", inst.Symbol, inst.AssetClass)
	fmt.Fprintf(out, "Risk:           %s (%s)\n", format.Currency(res.RiskAmount, cur), format.Pips(res.RiskPips))
	fmt.Fprintf(out, "Reward:         %s (%s)\n", format.Currency(res.RewardAmount, cur), format.Pips(res.RewardPips))
	fmt.Fprintf(out, "Risk/Reward:    %s\n", format.Ratio(res.RiskRewardRatio))
	fmt.Fprintf(out, "Break-even:     %.2f%% win rate\n", res.BreakEvenWinRate)

	d := risk.Evaluate(cfg.Policy(), res.RiskAmount, cfg.Account.Balance, res.RiskRewardRatio)
	for _, vio := range d.Violations {
		fmt.Fprintf(out, "WARNING [%s]: %s\n", vio.Code, vio.Msg)
	}
	return nil
}
