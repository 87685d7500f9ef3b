package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rustyeddy/tradecalc/format"
	"github.com/rustyeddy/tradecalc/journal"
	"github.com/rustyeddy/tradecalc/pnl"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Record and query closed trades",
	Long: `Record closed trades and query the trade journal.

Subcommands:
  add     - Compute P&L for a closed trade and record it
  trade   - Get details of a specific trade by ID
  list    - List every recorded trade
  today   - List trades closed today
  day     - List trades closed on a specific day
  summary - Win rate, profit factor and net P&L
  delete  - Remove a trade by ID
  import  - Copy trades from a CSV journal into SQLite

Queries need the SQLite journal; "add" also writes to CSV when the config
selects it.

Examples:
  tradecalc journal add EUR/USD --side long --entry 1.1000 --exit 1.1050 --size 1
  tradecalc journal trade <trade-id>
  tradecalc journal today
  tradecalc journal day 2024-01-15
  tradecalc journal summary --day 2024-01-15`,
}

var journalAddCmd = &cobra.Command{
	Use:   "add <instrument>",
	Short: "Compute and record a closed trade",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalAdd,
}

var journalTradeCmd = &cobra.Command{
	Use:   "trade <trade-id>",
	Short: "Get details of a specific trade",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalTrade,
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every recorded trade",
	Args:  cobra.NoArgs,
	RunE:  runJournalList,
}

var journalTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "List trades closed today",
	Args:  cobra.NoArgs,
	RunE:  runJournalToday,
}

var journalDayCmd = &cobra.Command{
	Use:   "day <YYYY-MM-DD>",
	Short: "List trades closed on a specific day",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalDay,
}

var journalSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarise recorded trades",
	Args:  cobra.NoArgs,
	RunE:  runJournalSummary,
}

var journalDeleteCmd = &cobra.Command{
	Use:   "delete <trade-id>",
	Short: "Remove a trade from the journal",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalDelete,
}

var journalImportCmd = &cobra.Command{
	Use:   "import <trades.csv>",
	Short: "Copy trades from a CSV journal into SQLite",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalImport,
}

var (
	journalDBPath string

	journalAddFlags struct {
		side     string
		entry    float64
		exit     float64
		size     float64
		rate     float64
		stop     float64
		target   float64
		opened   string
		closed   string
		strategy string
		notes    string
	}

	journalSummaryDay string
)

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalAddCmd)
	journalCmd.AddCommand(journalTradeCmd)
	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalTodayCmd)
	journalCmd.AddCommand(journalDayCmd)
	journalCmd.AddCommand(journalSummaryCmd)
	journalCmd.AddCommand(journalDeleteCmd)
	journalCmd.AddCommand(journalImportCmd)

	journalCmd.PersistentFlags().StringVarP(&journalDBPath, "db", "d", "", "path to SQLite journal DB (default: config journal.db_path)")

	f := journalAddCmd.Flags()
	f.StringVar(&journalAddFlags.side, "side", "long", "trade direction: long or short")
	f.Float64Var(&journalAddFlags.entry, "entry", 0, "entry price (required)")
	f.Float64Var(&journalAddFlags.exit, "exit", 0, "exit price (required)")
	f.Float64Var(&journalAddFlags.size, "size", 1, "position size in lots")
	f.Float64Var(&journalAddFlags.rate, "rate", 0, "quote to account currency rate (default: from config)")
	f.Float64Var(&journalAddFlags.stop, "stop", 0, "stop loss that was in place")
	f.Float64Var(&journalAddFlags.target, "target", 0, "take profit that was in place")
	f.StringVar(&journalAddFlags.opened, "opened", "", "open time, RFC3339 (default: close time)")
	f.StringVar(&journalAddFlags.closed, "closed", "", "close time, RFC3339 (default: now)")
	f.StringVar(&journalAddFlags.strategy, "strategy", "", "strategy label")
	f.StringVar(&journalAddFlags.notes, "notes", "", "free-form notes")
	journalAddCmd.MarkFlagRequired("entry")
	journalAddCmd.MarkFlagRequired("exit")

	journalSummaryCmd.Flags().StringVar(&journalSummaryDay, "day", "", "only trades closed on this day (YYYY-MM-DD)")
}

func dbPath() string {
	if journalDBPath != "" {
		return journalDBPath
	}
	return cfg.Journal.DBPath
}

func openSQLite() (*journal.SQLiteJournal, error) {
	path := dbPath()
	if path == "" {
		return nil, fmt.Errorf("no SQLite journal configured (set --db or journal.db_path)")
	}
	j, err := journal.NewSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return j, nil
}

// openJournal returns the writer selected by config. --db forces SQLite.
func openJournal() (journal.Journal, error) {
	if journalDBPath == "" && cfg.Journal.Type == "csv" {
		j, err := journal.NewCSV(cfg.Journal.TradesFile)
		if err != nil {
			return nil, fmt.Errorf("open csv: %w", err)
		}
		return j, nil
	}
	j, err := openSQLite()
	if err != nil {
		return nil, err
	}
	return j, nil
}

func parseTimeFlag(name, value string, def time.Time) (time.Time, error) {
	if value == "" {
		return def, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s: %w", name, err)
	}
	return t, nil
}

func runJournalAdd(cmd *cobra.Command, args []string) error {
	fl := journalAddFlags
	req, err := buildTradeRequest(args[0], fl.side, fl.entry, fl.exit, fl.size, fl.rate)
	if err != nil {
		return err
	}

	closed, err := parseTimeFlag("closed", fl.closed, time.Now())
	if err != nil {
		return err
	}
	opened, err := parseTimeFlag("opened", fl.opened, closed)
	if err != nil {
		return err
	}
	if opened.After(closed) {
		return fmt.Errorf("open time %s is after close time %s", opened.Format(time.RFC3339), closed.Format(time.RFC3339))
	}

	res := pnl.CalculatePL(req)
	rec := journal.NewRecord(req, res, opened, closed)
	rec.StopLoss = fl.stop
	rec.TakeProfit = fl.target
	rec.Strategy = fl.strategy
	rec.Notes = fl.notes

	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	if err := j.RecordTrade(rec); err != nil {
		return fmt.Errorf("record trade: %w", err)
	}
	logger.Info("trade recorded",
		zap.String("trade_id", rec.TradeID),
		zap.String("instrument", rec.Instrument),
		zap.Float64("profit_loss", rec.ProfitLoss),
	)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✓ Recorded trade %s\n", rec.TradeID)
	fmt.Fprintf(out, "  %s %s %s: %s (%s)\n",
		rec.Instrument, rec.Direction, format.Lots(rec.PositionSize),
		format.Currency(rec.ProfitLoss, cfg.Account.Currency), format.Pips(rec.PipMovement))
	return nil
}

func runJournalTrade(cmd *cobra.Command, args []string) error {
	j, err := openSQLite()
	if err != nil {
		return err
	}
	defer j.Close()

	tradeID := args[0]
	rec, err := j.GetTrade(tradeID)
	if err != nil {
		return fmt.Errorf("get trade: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), journal.FormatTradeOrg(rec))
	return nil
}

func runJournalList(cmd *cobra.Command, args []string) error {
	j, err := openSQLite()
	if err != nil {
		return err
	}
	defer j.Close()

	recs, err := j.ListTrades()
	if err != nil {
		return fmt.Errorf("query trades: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), journal.FormatTradesOrg(recs))
	return nil
}

func runJournalToday(cmd *cobra.Command, args []string) error {
	loc := time.Local
	return listDay(cmd, time.Now().In(loc).Format("2006-01-02"))
}

func runJournalDay(cmd *cobra.Command, args []string) error {
	return listDay(cmd, args[0])
}

func listDay(cmd *cobra.Command, day string) error {
	j, err := openSQLite()
	if err != nil {
		return err
	}
	defer j.Close()

	start, end, err := dayBounds(time.Local, day)
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}

	recs, err := j.ListTradesClosedBetween(start, end)
	if err != nil {
		return fmt.Errorf("query trades: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), journal.FormatTradesOrg(recs))
	return nil
}

func runJournalSummary(cmd *cobra.Command, args []string) error {
	j, err := openSQLite()
	if err != nil {
		return err
	}
	defer j.Close()

	var recs []journal.TradeRecord
	title := "all trades"
	if journalSummaryDay != "" {
		start, end, err := dayBounds(time.Local, journalSummaryDay)
		if err != nil {
			return fmt.Errorf("date: %w", err)
		}
		recs, err = j.ListTradesClosedBetween(start, end)
		if err != nil {
			return fmt.Errorf("query trades: %w", err)
		}
		title = journalSummaryDay
	} else {
		recs, err = j.ListTrades()
		if err != nil {
			return fmt.Errorf("query trades: %w", err)
		}
	}

	s, err := journal.FormatSummaryOrg(title, journal.Summarize(recs))
	if err != nil {
		return fmt.Errorf("render summary: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), s)
	return nil
}

func runJournalDelete(cmd *cobra.Command, args []string) error {
	j, err := openSQLite()
	if err != nil {
		return err
	}
	defer j.Close()

	if err := j.DeleteTrade(args[0]); err != nil {
		return fmt.Errorf("delete trade: %w", err)
	}
	logger.Info("trade deleted", zap.String("trade_id", args[0]))
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted trade %s\n", args[0])
	return nil
}

func runJournalImport(cmd *cobra.Command, args []string) error {
	fh, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer fh.Close()

	recs, err := journal.ReadCSV(fh)
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	j, err := openSQLite()
	if err != nil {
		return err
	}
	defer j.Close()

	added, err := j.ImportTrades(cmd.Context(), recs)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	logger.Info("csv imported", zap.String("file", args[0]), zap.Int("read", len(recs)), zap.Int("added", added))
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Imported %d of %d trades from %s\n", added, len(recs), args[0])
	return nil
}

func dayBounds(loc *time.Location, day string) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", day, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1)
	return start, end, nil
}
