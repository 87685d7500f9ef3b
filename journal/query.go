package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rustyeddy/tradecalc/market"
)

// ErrTradeNotFound is returned when no trade has the requested ID.
var ErrTradeNotFound = errors.New("trade not found")

const selectTrades = `
	SELECT trade_id, instrument, direction, position_size, entry_price, exit_price,
	       stop_loss, take_profit, open_time, close_time, profit_loss, pip_movement, strategy, notes
	FROM trades`

type scanner interface {
	Scan(dest ...any) error
}

func scanTrade(s scanner) (TradeRecord, error) {
	var rec TradeRecord
	var dir string
	err := s.Scan(
		&rec.TradeID,
		&rec.Instrument,
		&dir,
		&rec.PositionSize,
		&rec.EntryPrice,
		&rec.ExitPrice,
		&rec.StopLoss,
		&rec.TakeProfit,
		&rec.OpenTime,
		&rec.CloseTime,
		&rec.ProfitLoss,
		&rec.PipMovement,
		&rec.Strategy,
		&rec.Notes,
	)
	rec.Direction = market.Direction(dir)
	return rec, err
}

// GetTrade returns a single trade record by ID.
func (j *SQLiteJournal) GetTrade(tradeID string) (TradeRecord, error) {
	row := j.db.QueryRow(selectTrades+` WHERE trade_id = ?`, tradeID)

	rec, err := scanTrade(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TradeRecord{}, fmt.Errorf("%w: %q", ErrTradeNotFound, tradeID)
		}
		return TradeRecord{}, err
	}
	return rec, nil
}

// ListTrades returns every trade ordered by close time.
func (j *SQLiteJournal) ListTrades() ([]TradeRecord, error) {
	return j.query(selectTrades + ` ORDER BY close_time ASC, trade_id ASC`)
}

// ListTradesClosedBetween returns trades whose close_time is within [start, end).
func (j *SQLiteJournal) ListTradesClosedBetween(start, end time.Time) ([]TradeRecord, error) {
	return j.query(selectTrades+`
		WHERE close_time >= ? AND close_time < ?
		ORDER BY close_time ASC, trade_id ASC`, start.UTC(), end.UTC())
}

// DeleteTrade removes a trade. Deleting an unknown ID returns ErrTradeNotFound.
func (j *SQLiteJournal) DeleteTrade(tradeID string) error {
	res, err := j.db.Exec(`DELETE FROM trades WHERE trade_id = ?`, tradeID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrTradeNotFound, tradeID)
	}
	return nil
}

func (j *SQLiteJournal) query(q string, args ...any) ([]TradeRecord, error) {
	rows, err := j.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TradeRecord
	for rows.Next() {
		rec, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
