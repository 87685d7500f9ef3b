package journal

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLiteJournal{db: db}, nil
}

const insertTrade = `
		INSERT %s INTO trades
		(trade_id, instrument, direction, position_size, entry_price, exit_price,
		 stop_loss, take_profit, open_time, close_time, profit_loss, pip_movement, strategy, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

func tradeArgs(t TradeRecord) []any {
	return []any{
		t.TradeID, t.Instrument, string(t.Direction), t.PositionSize, t.EntryPrice, t.ExitPrice,
		t.StopLoss, t.TakeProfit, t.OpenTime.UTC(), t.CloseTime.UTC(), t.ProfitLoss, t.PipMovement,
		t.Strategy, t.Notes,
	}
}

func (j *SQLiteJournal) RecordTrade(t TradeRecord) error {
	_, err := j.db.Exec(fmt.Sprintf(insertTrade, ""), tradeArgs(t)...)
	return err
}

// ImportTrades inserts trades in one transaction, skipping IDs that are
// already present. It returns the number of rows added.
func (j *SQLiteJournal) ImportTrades(ctx context.Context, trades []TradeRecord) (int, error) {
	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(insertTrade, "OR IGNORE"))
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	added := 0
	for _, t := range trades {
		res, err := stmt.ExecContext(ctx, tradeArgs(t)...)
		if err != nil {
			return 0, fmt.Errorf("insert %s: %w", t.TradeID, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		added += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return added, nil
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
