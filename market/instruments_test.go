package market

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupNormalizesSymbol(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"EUR/USD", "EUR/USD"},
		{"EUR_USD", "EUR/USD"},
		{"eur-usd", "EUR/USD"},
		{"eurusd", "EUR/USD"},
		{" usd/jpy ", "USD/JPY"},
		{"gold", "GOLD"},
		{"btcusd", "BTC/USD"},
		{"Us30", "US30"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			inst, ok := Lookup(tt.in)
			require.True(t, ok)
			assert.Equal(t, tt.want, inst.Symbol)
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	t.Parallel()

	inst, ok := Lookup("NO_SUCH_INSTRUMENT")
	assert.False(t, ok)
	assert.Equal(t, Instrument{}, inst)

	_, err := Find("XYZ/ABC")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownInstrument))
	assert.Contains(t, err.Error(), "XYZ/ABC")
}

func TestCatalogInvariants(t *testing.T) {
	t.Parallel()

	for _, sym := range Symbols() {
		inst, ok := Lookup(sym)
		require.True(t, ok, sym)
		assert.Greater(t, inst.PipSize, 0.0, sym)
		assert.Greater(t, inst.ValuePerUnit(), 0.0, sym)
		assert.NotEmpty(t, inst.QuoteCurrency, sym)
	}
}

func TestCatalogFixtures(t *testing.T) {
	t.Parallel()

	eur, ok := Lookup("EUR/USD")
	require.True(t, ok)
	assert.Equal(t, Forex, eur.AssetClass)
	assert.InDelta(t, 0.0001, eur.PipSize, 1e-12)
	assert.Equal(t, 100_000.0, eur.ContractSize)

	jpy, ok := Lookup("USD/JPY")
	require.True(t, ok)
	assert.InDelta(t, 0.01, jpy.PipSize, 1e-12)
	assert.Equal(t, "JPY", jpy.QuoteCurrency)

	gold, ok := Lookup("GOLD")
	require.True(t, ok)
	assert.Equal(t, Commodity, gold.AssetClass)
	assert.InDelta(t, 0.01, gold.PipSize, 1e-12)
	assert.Equal(t, 100.0, gold.ContractSize)
}

func TestValuePerUnit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		inst Instrument
		want float64
	}{
		{"forex", Instrument{AssetClass: Forex, ContractSize: 100_000, TickValue: 7}, 100_000},
		{"commodity", Instrument{AssetClass: Commodity, ContractSize: 100}, 100},
		{"index", Instrument{AssetClass: Index, ContractSize: 9, TickValue: 25}, 25},
		{"crypto", Instrument{AssetClass: Crypto, ContractSize: 5}, 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.inst.ValuePerUnit())
		})
	}
}

func TestValuePerUnitUnknownClassPanics(t *testing.T) {
	t.Parallel()

	inst := Instrument{Symbol: "BAD", AssetClass: "bond", PipSize: 0.01}
	assert.Panics(t, func() { inst.ValuePerUnit() })
}

func TestByClass(t *testing.T) {
	t.Parallel()

	idx := ByClass(Index)
	require.NotEmpty(t, idx)
	for i, inst := range idx {
		assert.Equal(t, Index, inst.AssetClass)
		if i > 0 {
			assert.Less(t, idx[i-1].Symbol, inst.Symbol)
		}
	}
	assert.Empty(t, ByClass("bond"))
}

func TestParseAssetClass(t *testing.T) {
	t.Parallel()

	c, err := ParseAssetClass("Indices")
	require.NoError(t, err)
	assert.Equal(t, Index, c)

	c, err = ParseAssetClass("fx")
	require.NoError(t, err)
	assert.Equal(t, Forex, c)

	_, err = ParseAssetClass("bonds")
	assert.Error(t, err)
}

func TestParseDirection(t *testing.T) {
	t.Parallel()

	d, err := ParseDirection("BUY")
	require.NoError(t, err)
	assert.Equal(t, Long, d)

	d, err = ParseDirection("short")
	require.NoError(t, err)
	assert.Equal(t, Short, d)

	_, err = ParseDirection("sideways")
	assert.Error(t, err)

	assert.Equal(t, 1.0, Long.Sign())
	assert.Equal(t, -1.0, Short.Sign())
	assert.Panics(t, func() { Direction("up").Sign() })
}
