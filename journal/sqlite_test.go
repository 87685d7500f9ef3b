package journal

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rustyeddy/tradecalc/market"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) (*SQLiteJournal, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	j, err := NewSQLite(path)
	require.NoError(t, err)

	return j, path
}

func sampleTrade(id string, pl float64, closeT time.Time) TradeRecord {
	return TradeRecord{
		TradeID:      id,
		Instrument:   "EUR/USD",
		Direction:    market.Long,
		PositionSize: 1,
		EntryPrice:   1.1000,
		ExitPrice:    1.1050,
		StopLoss:     1.0950,
		TakeProfit:   1.1100,
		OpenTime:     closeT.Add(-time.Hour),
		CloseTime:    closeT,
		ProfitLoss:   pl,
		PipMovement:  50,
		Strategy:     "breakout",
		Notes:        "test",
	}
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)
	require.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name = 'trades'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "trades", name)
}

func TestSQLiteRecordTrade(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)

	closeT := time.Date(2024, 1, 2, 4, 5, 6, 0, time.UTC)
	rec := sampleTrade("T1", 500, closeT)

	require.NoError(t, j.RecordTrade(rec))
	require.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var (
		tradeID    string
		instrument string
		direction  string
		size       float64
		closeTime  time.Time
		profitLoss float64
	)

	err = db.QueryRow(`
        SELECT trade_id, instrument, direction, position_size, close_time, profit_loss
        FROM trades LIMIT 1`).Scan(
		&tradeID, &instrument, &direction, &size, &closeTime, &profitLoss,
	)
	require.NoError(t, err)

	assert.Equal(t, rec.TradeID, tradeID)
	assert.Equal(t, rec.Instrument, instrument)
	assert.Equal(t, "long", direction)
	assert.InDelta(t, rec.PositionSize, size, 1e-9)
	assert.True(t, closeTime.Equal(rec.CloseTime))
	assert.InDelta(t, rec.ProfitLoss, profitLoss, 1e-9)
}

func TestSQLiteDuplicateTradeID(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	rec := sampleTrade("DUP", 1, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, j.RecordTrade(rec))
	assert.Error(t, j.RecordTrade(rec))
}

func TestSQLiteImportTrades(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	base := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	require.NoError(t, j.RecordTrade(sampleTrade("A", 10, base)))

	trades := []TradeRecord{
		sampleTrade("A", 10, base),
		sampleTrade("B", -5, base.Add(time.Hour)),
		sampleTrade("C", 7, base.Add(2*time.Hour)),
	}
	added, err := j.ImportTrades(context.Background(), trades)
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	all, err := j.ListTrades()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"A", "B", "C"}, []string{all[0].TradeID, all[1].TradeID, all[2].TradeID})

	added, err = j.ImportTrades(context.Background(), trades)
	require.NoError(t, err)
	assert.Zero(t, added)
}

func TestSQLiteImportTradesCanceled(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := j.ImportTrades(ctx, []TradeRecord{sampleTrade("X", 1, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))})
	assert.Error(t, err)

	all, err := j.ListTrades()
	require.NoError(t, err)
	assert.Empty(t, all)
}
