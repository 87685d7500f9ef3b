package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the tradecalc CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "tradecalc version %s\n", version)
		fmt.Fprintln(out, "Profit/loss, position sizing and risk/reward for forex, commodities, indices and crypto")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
