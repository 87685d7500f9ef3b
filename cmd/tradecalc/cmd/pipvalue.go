package cmd

import (
	"fmt"

	"github.com/rustyeddy/tradecalc/format"
	"github.com/rustyeddy/tradecalc/pnl"
	"github.com/rustyeddy/tradecalc/risk"
	"github.com/spf13/cobra"
)

var pipValueCmd = &cobra.Command{
	Use:   "pipvalue <instrument>",
	Short: "Show what one pip is worth",
	Long: `Show the account-currency value of one pip for a position size.

Example:
  tradecalc pipvalue EUR/USD --size 0.5`,
	Args: cobra.ExactArgs(1),
	RunE: runPipValue,
}

var pipValueFlags struct {
	size  float64
	price float64
	rate  float64
}

func init() {
	rootCmd.AddCommand(pipValueCmd)

	f := pipValueCmd.Flags()
	f.Float64Var(&pipValueFlags.size, "size", 1, "position size in lots")
	f.Float64Var(&pipValueFlags.price, "price", 0, "current price, used to convert when the account currency is the base currency")
	f.Float64Var(&pipValueFlags.rate, "rate", 0, "quote to account currency rate (default: from config)")
}

func runPipValue(cmd *cobra.Command, args []string) error {
	inst, err := lookupInstrument(args[0])
	if err != nil {
		return err
	}
	if err := risk.ValidatePositionSize(pipValueFlags.size); err != nil {
		return err
	}
	rate, err := conversionRate(inst, pipValueFlags.rate, pipValueFlags.price)
	if err != nil {
		return err
	}

	req := pnl.PipValueRequest{
		Instrument:     inst,
		PositionSize:   pipValueFlags.size,
		QuoteToAccount: rate,
	}
	if err := risk.ValidatePipValueRequest(req); err != nil {
		return err
	}
	res := pnl.CalculatePipValue(req)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Instrument:     %s (%s)\n", inst.Symbol, inst.AssetClass)
	fmt.Fprintf(out, "Position size:  %s\n", format.Lots(pipValueFlags.size))
	fmt.Fprintf(out, "Pip size:       %g\n", res.TickSize)
	fmt.Fprintf(out, "Value per lot:  %g %s per point\n", res.ContractSize, inst.QuoteCurrency)
	fmt.Fprintf(out, "Pip value:      %s per pip\n", format.Currency(res.PipValue, cfg.Account.Currency))
	return nil
}
