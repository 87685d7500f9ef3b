package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/rustyeddy/tradecalc/market"
	"github.com/spf13/cobra"
)

var instrumentsCmd = &cobra.Command{
	Use:   "instruments",
	Short: "List the instrument catalog",
	Long: `List every instrument the calculator knows, optionally filtered by
asset class (forex, commodity, index, crypto).

Examples:
  tradecalc instruments
  tradecalc instruments --class index`,
	Args: cobra.NoArgs,
	RunE: runInstruments,
}

var instrumentsClass string

func init() {
	rootCmd.AddCommand(instrumentsCmd)
	instrumentsCmd.Flags().StringVar(&instrumentsClass, "class", "", "only list this asset class")
}

func runInstruments(cmd *cobra.Command, args []string) error {
	var list []market.Instrument
	if instrumentsClass != "" {
		class, err := market.ParseAssetClass(instrumentsClass)
		if err != nil {
			return err
		}
		list = market.ByClass(class)
	} else {
		for _, sym := range market.Symbols() {
			inst, _ := market.Lookup(sym)
			list = append(list, inst)
		}
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SYMBOL\tCLASS\tQUOTE\tPIP\tVALUE/UNIT\tMARGIN\tNAME")
	for _, inst := range list {
		margin := "-"
		if inst.MarginRate > 0 {
			margin = fmt.Sprintf("%g%%", inst.MarginRate*100)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%g\t%g\t%s\t%s\n",
			inst.Symbol, inst.AssetClass, inst.QuoteCurrency, inst.PipSize, inst.ValuePerUnit(), margin, inst.Name)
	}
	return w.Flush()
}
