package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	fh, err := os.Open(path)
	require.NoError(t, err)
	defer fh.Close()

	rows, err := csv.NewReader(fh).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCSVJournalHeader(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "trades.csv")

	j, err := NewCSV(path)
	require.NoError(t, err)
	require.NoError(t, j.Close())

	rows := readCSV(t, path)
	require.Len(t, rows, 1)
	assert.Equal(t, csvHeader, rows[0])
}

func TestCSVJournalRecordTrade(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "trades.csv")

	j, err := NewCSV(path)
	require.NoError(t, err)

	closeT := time.Date(2024, 1, 2, 4, 5, 6, 0, time.UTC)
	require.NoError(t, j.RecordTrade(sampleTrade("T1", -12.5, closeT)))
	require.NoError(t, j.Close())

	rows := readCSV(t, path)
	require.Len(t, rows, 2)

	want := []string{
		"T1",
		"EUR/USD",
		"long",
		"1",
		"1.1",
		"1.105",
		"1.095",
		"1.11",
		closeT.Add(-time.Hour).Format(time.RFC3339),
		closeT.Format(time.RFC3339),
		"-12.5",
		"50",
		"breakout",
		"test",
	}
	assert.Equal(t, want, rows[1])
}

func TestCSVJournalAppendsWithoutSecondHeader(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "trades.csv")
	closeT := time.Date(2024, 1, 2, 4, 5, 6, 0, time.UTC)

	for _, id := range []string{"A", "B"} {
		j, err := NewCSV(path)
		require.NoError(t, err)
		require.NoError(t, j.RecordTrade(sampleTrade(id, 1, closeT)))
		require.NoError(t, j.Close())
	}

	rows := readCSV(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, "A", rows[1][0])
	assert.Equal(t, "B", rows[2][0])
}

func TestCSVJournalBadPath(t *testing.T) {
	t.Parallel()

	_, err := NewCSV(filepath.Join(t.TempDir(), "missing", "trades.csv"))
	assert.Error(t, err)
}

func TestReadCSVRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "trades.csv")
	j, err := NewCSV(path)
	require.NoError(t, err)

	closeT := time.Date(2024, 1, 2, 4, 5, 6, 0, time.UTC)
	in := []TradeRecord{
		sampleTrade("T1", 500, closeT),
		sampleTrade("T2", -12.5, closeT.Add(time.Hour)),
	}
	in[1].Notes = "gave back, \"late\" exit"
	for _, rec := range in {
		require.NoError(t, j.RecordTrade(rec))
	}
	require.NoError(t, j.Close())

	fh, err := os.Open(path)
	require.NoError(t, err)
	defer fh.Close()

	out, err := ReadCSV(fh)
	require.NoError(t, err)
	require.Len(t, out, 2)
	for i := range in {
		assert.Equal(t, in[i].TradeID, out[i].TradeID)
		assert.Equal(t, in[i].Direction, out[i].Direction)
		assert.InDelta(t, in[i].ProfitLoss, out[i].ProfitLoss, 1e-9)
		assert.InDelta(t, in[i].StopLoss, out[i].StopLoss, 1e-9)
		assert.True(t, in[i].CloseTime.Equal(out[i].CloseTime))
		assert.Equal(t, in[i].Notes, out[i].Notes)
	}
}

func TestCSVKeepsSubSecondTimes(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "trades.csv")
	j, err := NewCSV(path)
	require.NoError(t, err)

	closeT := time.Date(2024, 1, 2, 4, 5, 6, 789_000_000, time.UTC)
	require.NoError(t, j.RecordTrade(sampleTrade("T1", 1, closeT)))
	require.NoError(t, j.Close())

	rows := readCSV(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-01-02T04:05:06.789Z", rows[1][9])

	fh, err := os.Open(path)
	require.NoError(t, err)
	defer fh.Close()

	out, err := ReadCSV(fh)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.True(t, out[0].CloseTime.Equal(closeT), "got %s", out[0].CloseTime)
	assert.True(t, out[0].OpenTime.Equal(closeT.Add(-time.Hour)))
}

func TestReadCSVErrors(t *testing.T) {
	t.Parallel()

	recs, err := ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, recs)

	_, err = ReadCSV(strings.NewReader("a,b,c,d,e,f,g,h,i,j,k,l,m,n\n"))
	assert.ErrorContains(t, err, "unexpected csv header")

	row := "T1,EUR/USD,sideways,1,1.1,1.105,0,0,2024-01-02T03:05:06Z,2024-01-02T04:05:06Z,500,50,,"
	_, err = ReadCSV(strings.NewReader(strings.Join(csvHeader, ",") + "\n" + row + "\n"))
	assert.ErrorContains(t, err, "line 2")
}
