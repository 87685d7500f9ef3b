package cmd

import (
	"fmt"

	"github.com/rustyeddy/tradecalc/format"
	"github.com/rustyeddy/tradecalc/risk"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var sizeCmd = &cobra.Command{
	Use:   "size <instrument>",
	Short: "Compute a risk-based position size",
	Long: `Compute the position size that risks a percentage of the account
when the stop loss is hit. Balance and risk default to the config values.

Examples:
  tradecalc size EUR/USD --entry 1.1000 --stop 1.0950 --balance 10000 --risk 2
  tradecalc size GOLD --entry 2350 --stop 2338`,
	Args: cobra.ExactArgs(1),
	RunE: runSize,
}

var sizeFlags struct {
	entry   float64
	stop    float64
	balance float64
	risk    float64
	rate    float64
}

func init() {
	rootCmd.AddCommand(sizeCmd)

	f := sizeCmd.Flags()
	f.Float64Var(&sizeFlags.entry, "entry", 0, "entry price (required)")
	f.Float64Var(&sizeFlags.stop, "stop", 0, "stop loss price (required)")
	f.Float64Var(&sizeFlags.balance, "balance", 0, "account balance (default: config account.balance)")
	f.Float64Var(&sizeFlags.risk, "risk", 0, "risk percent of balance (default: config risk.default_percent)")
	f.Float64Var(&sizeFlags.rate, "rate", 0, "quote to account currency rate (default: from config)")
	sizeCmd.MarkFlagRequired("entry")
	sizeCmd.MarkFlagRequired("stop")
}

func runSize(cmd *cobra.Command, args []string) error {
	inst, err := lookupInstrument(args[0])
	if err != nil {
		return err
	}

	balance := sizeFlags.balance
	if !cmd.Flags().Changed("balance") {
		balance = cfg.Account.Balance
	}
	riskPct := sizeFlags.risk
	if !cmd.Flags().Changed("risk") {
		riskPct = cfg.Risk.DefaultPercent
	}

	if err := risk.ValidatePositionSizeInputs(balance, riskPct, sizeFlags.entry, sizeFlags.stop); err != nil {
		return err
	}
	rate, err := conversionRate(inst, sizeFlags.rate, sizeFlags.entry)
	if err != nil {
		return err
	}

	req := risk.PositionSizeRequest{
		AccountBalance: balance,
		RiskPercentage: riskPct,
		EntryPrice:     sizeFlags.entry,
		StopLossPrice:  sizeFlags.stop,
		Instrument:     inst,
		QuoteToAccount: rate,
	}
	if err := risk.ValidatePositionSizeRequest(req); err != nil {
		return err
	}
	res := risk.CalculatePositionSize(req)
	logger.Debug("position size computed",
		zap.String("instrument", inst.Symbol),
		zap.Float64("size", res.PositionSize),
		zap.Float64("risk_amount", res.RiskAmount),
	)

	out := cmd.OutOrStdout()
	cur := cfg.Account.Currency
	fmt.Fprintf(out, "Instrument:     %s (%s)\n", inst.Symbol, inst.AssetClass)
	fmt.Fprintf(out, "Position size:  %s\n", format.Lots(res.PositionSize))
	fmt.Fprintf(out, "Risk amount:    %s (%.2f%% of %s)\n", format.Currency(res.RiskAmount, cur), riskPct, format.Currency(balance, cur))
	fmt.Fprintf(out, "Stop distance:  %s\n", format.Pips(res.PipRisk))
	if res.MarginRequired != nil {
		fmt.Fprintf(out, "Margin:         %s\n", format.Currency(*res.MarginRequired, cur))
	} else {
		fmt.Fprintln(out, "Margin:         n/a")
	}
	return nil
}
