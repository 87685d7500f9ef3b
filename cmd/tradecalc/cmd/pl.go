package cmd

import (
	"fmt"

	"github.com/rustyeddy/tradecalc/format"
	"github.com/rustyeddy/tradecalc/pnl"
	"github.com/rustyeddy/tradecalc/risk"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var plCmd = &cobra.Command{
	Use:   "pl <instrument>",
	Short: "Compute profit/loss for a trade",
	Long: `Compute the profit or loss of a closed (or hypothetically closed) trade.

Examples:
  tradecalc pl EUR/USD --side long --entry 1.1000 --exit 1.1050 --size 1
  tradecalc pl GOLD --side short --entry 2000 --exit 1985.5 --size 0.5
  tradecalc pl USD/JPY --side long --entry 150 --exit 150.5 --size 1 --rate 0.0067`,
	Args: cobra.ExactArgs(1),
	RunE: runPL,
}

var plFlags struct {
	side  string
	entry float64
	exit  float64
	size  float64
	rate  float64
}

func init() {
	rootCmd.AddCommand(plCmd)

	f := plCmd.Flags()
	f.StringVar(&plFlags.side, "side", "long", "trade direction: long or short")
	f.Float64Var(&plFlags.entry, "entry", 0, "entry price (required)")
	f.Float64Var(&plFlags.exit, "exit", 0, "exit price (required)")
	f.Float64Var(&plFlags.size, "size", 1, "position size in lots")
	f.Float64Var(&plFlags.rate, "rate", 0, "quote to account currency rate (default: from config)")
	plCmd.MarkFlagRequired("entry")
	plCmd.MarkFlagRequired("exit")
}

// buildTradeRequest validates flags and resolves everything CalculatePL needs.
func buildTradeRequest(symbol, side string, entry, exit, size, rateOverride float64) (pnl.TradeRequest, error) {
	inst, err := lookupInstrument(symbol)
	if err != nil {
		return pnl.TradeRequest{}, err
	}
	dir, err := parseDirection(side)
	if err != nil {
		return pnl.TradeRequest{}, err
	}
	if err := risk.ValidateTradeInputs(entry, exit, size); err != nil {
		return pnl.TradeRequest{}, err
	}
	rate, err := conversionRate(inst, rateOverride, exit)
	if err != nil {
		return pnl.TradeRequest{}, err
	}
	req := pnl.TradeRequest{
		Instrument:     inst,
		Direction:      dir,
		EntryPrice:     entry,
		ExitPrice:      exit,
		PositionSize:   size,
		QuoteToAccount: rate,
	}
	if err := risk.ValidateTradeRequest(req); err != nil {
		return pnl.TradeRequest{}, err
	}
	return req, nil
}

func runPL(cmd *cobra.Command, args []string) error {
	req, err := buildTradeRequest(args[0], plFlags.side, plFlags.entry, plFlags.exit, plFlags.size, plFlags.rate)
	if err != nil {
		return err
	}

	res := pnl.CalculatePL(req)
	logger.Debug("pl computed",
		zap.String("instrument", req.Instrument.Symbol),
		zap.Float64("profit_loss", res.ProfitLoss),
		zap.Float64("pips", res.PipMovement),
	)

	out := cmd.OutOrStdout()
	cur := cfg.Account.Currency
	fmt.Fprintf(out, "Instrument:   %s (%s)\n", req.Instrument.Symbol, req.Instrument.AssetClass)
	fmt.Fprintf(out, "Direction:    %s %s\n", req.Direction, format.Lots(req.PositionSize))
	fmt.Fprintf(out, "Profit/Loss:  %s\n", format.Currency(res.ProfitLoss, cur))
	fmt.Fprintf(out, "Movement:     %s (%.5f)\n", format.Pips(res.PipMovement), res.Breakdown.PriceMovement)
	fmt.Fprintf(out, "Return:       %s\n", format.Percent(res.PercentageReturn))
	fmt.Fprintf(out, "Notional:     %s\n", format.Currency(res.Breakdown.TotalPositionValue, req.Instrument.QuoteCurrency))
	return nil
}
