package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/rustyeddy/tradecalc/market"
)

var csvHeader = []string{
	"trade_id", "instrument", "direction", "position_size", "entry_price", "exit_price",
	"stop_loss", "take_profit", "open_time", "close_time", "profit_loss", "pip_movement",
	"strategy", "notes",
}

// CSVJournal appends trades to a CSV file. The header is written once when
// the file is empty.
type CSVJournal struct {
	trades *csv.Writer
	tf     *os.File
}

func NewCSV(tradesPath string) (*CSVJournal, error) {
	tf, err := os.OpenFile(tradesPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	info, err := tf.Stat()
	if err != nil {
		_ = tf.Close()
		return nil, err
	}

	tw := csv.NewWriter(tf)
	if info.Size() == 0 {
		if err := tw.Write(csvHeader); err != nil {
			_ = tf.Close()
			return nil, err
		}
		tw.Flush()
		if err := tw.Error(); err != nil {
			_ = tf.Close()
			return nil, err
		}
	}

	return &CSVJournal{trades: tw, tf: tf}, nil
}

func (j *CSVJournal) RecordTrade(t TradeRecord) error {
	err := j.trades.Write([]string{
		t.TradeID,
		t.Instrument,
		string(t.Direction),
		f(t.PositionSize),
		f(t.EntryPrice),
		f(t.ExitPrice),
		f(t.StopLoss),
		f(t.TakeProfit),
		t.OpenTime.UTC().Format(time.RFC3339Nano),
		t.CloseTime.UTC().Format(time.RFC3339Nano),
		f(t.ProfitLoss),
		f(t.PipMovement),
		t.Strategy,
		t.Notes,
	})
	if err != nil {
		return err
	}
	j.trades.Flush()
	return j.trades.Error()
}

func (j *CSVJournal) Close() error {
	j.trades.Flush()
	if err := j.trades.Error(); err != nil {
		_ = j.tf.Close()
		return err
	}
	return j.tf.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// ReadCSV parses a file written by CSVJournal. The header must match.
func ReadCSV(r io.Reader) ([]TradeRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !slices.Equal(header, csvHeader) {
		return nil, fmt.Errorf("unexpected csv header %v", header)
	}

	var out []TradeRecord
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, rec)
	}
}

func parseRow(row []string) (TradeRecord, error) {
	dir, err := market.ParseDirection(row[2])
	if err != nil {
		return TradeRecord{}, err
	}

	var nums [7]float64
	for i, col := range []int{3, 4, 5, 6, 7, 10, 11} {
		if nums[i], err = strconv.ParseFloat(row[col], 64); err != nil {
			return TradeRecord{}, fmt.Errorf("%s: %w", csvHeader[col], err)
		}
	}
	open, err := time.Parse(time.RFC3339Nano, row[8])
	if err != nil {
		return TradeRecord{}, fmt.Errorf("open_time: %w", err)
	}
	closeT, err := time.Parse(time.RFC3339Nano, row[9])
	if err != nil {
		return TradeRecord{}, fmt.Errorf("close_time: %w", err)
	}

	return TradeRecord{
		TradeID:      row[0],
		Instrument:   row[1],
		Direction:    dir,
		PositionSize: nums[0],
		EntryPrice:   nums[1],
		ExitPrice:    nums[2],
		StopLoss:     nums[3],
		TakeProfit:   nums[4],
		OpenTime:     open.UTC(),
		CloseTime:    closeT.UTC(),
		ProfitLoss:   nums[5],
		PipMovement:  nums[6],
		Strategy:     row[12],
		Notes:        row[13],
	}, nil
}
