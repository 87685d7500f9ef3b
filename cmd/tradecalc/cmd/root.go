package cmd

import (
	"fmt"
	"strings"

	"github.com/rustyeddy/tradecalc/config"
	"github.com/rustyeddy/tradecalc/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "tradecalc",
	Short: "Trade economics calculator and journal",
	Long: `tradecalc computes the economics of a trade across forex, commodities,
indices and crypto.

It provides tools for:
  - Profit/loss of a closed or planned trade
  - Risk-based position sizing
  - Risk/reward ratio and break-even win rate
  - Per-pip monetary value
  - Recording closed trades in a SQLite or CSV journal

Settings come from a YAML/JSON config file (see "tradecalc config init").
Every persistent flag can also be set with a TRADECALC_ environment
variable, e.g. TRADECALC_LOG_LEVEL=debug.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

var (
	v      = viper.New()
	cfg    = config.Default()
	logger = zap.NewNop()
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file, YAML or JSON (default: built-in defaults)")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("log-format", "", "log format: console or json")

	v.SetEnvPrefix("TRADECALC")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlags(pf)
}

// setup loads the config file and builds the logger before any subcommand runs.
func setup(cmd *cobra.Command, args []string) error {
	if path := v.GetString("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return err
		}
		cfg = loaded
	} else {
		cfg = config.Default()
	}

	if lvl := v.GetString("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}
	if f := v.GetString("log-format"); f != "" {
		cfg.Log.Format = f
	}

	l, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	logger = l
	logger.Debug("config loaded",
		zap.String("config", v.GetString("config")),
		zap.String("account_currency", cfg.Account.Currency),
		zap.Float64("balance", cfg.Account.Balance),
		zap.String("journal", cfg.Journal.Type),
	)
	return nil
}
