// market/instruments.go
package market

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownInstrument is returned by callers that turn a failed Lookup into an error.
var ErrUnknownInstrument = errors.New("unknown instrument")

type AssetClass string

const (
	Forex     AssetClass = "forex"
	Commodity AssetClass = "commodity"
	Index     AssetClass = "index"
	Crypto    AssetClass = "crypto"
)

// ParseAssetClass accepts the class name plus a few plural/short aliases.
func ParseAssetClass(s string) (AssetClass, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "forex", "fx":
		return Forex, nil
	case "commodity", "commodities":
		return Commodity, nil
	case "index", "indices":
		return Index, nil
	case "crypto", "cryptocurrency":
		return Crypto, nil
	}
	return "", fmt.Errorf("unknown asset class %q", s)
}

// Instrument is the trading metadata for one symbol. Values are only built
// by this package; everything else gets them through Lookup.
type Instrument struct {
	Symbol        string
	Name          string
	AssetClass    AssetClass
	BaseCurrency  string
	QuoteCurrency string

	// PipSize is the price increment counted as one pip.
	PipSize float64

	// ContractSize is the number of underlying units in one lot
	// (forex and commodities).
	ContractSize float64

	// TickValue is the money value of one point per lot (indices).
	TickValue float64

	// MarginRate is the fraction of notional held as margin. Zero means
	// the instrument has no margin data.
	MarginRate float64
}

// ValuePerUnit is the money value, in quote currency, of a one point price
// move for one unit of position size. Every engine values positions through
// this factor so P&L, sizing and pip value cannot drift apart.
func (i Instrument) ValuePerUnit() float64 {
	switch i.AssetClass {
	case Forex, Commodity:
		return i.ContractSize
	case Index:
		return i.TickValue
	case Crypto:
		return 1
	}
	panic(fmt.Sprintf("market: instrument %s has unsupported asset class %q", i.Symbol, i.AssetClass))
}

func fx(base, quote string, pip float64) Instrument {
	return Instrument{
		Symbol:        base + "/" + quote,
		Name:          base + "/" + quote,
		AssetClass:    Forex,
		BaseCurrency:  base,
		QuoteCurrency: quote,
		PipSize:       pip,
		ContractSize:  100_000,
		MarginRate:    0.02,
	}
}

func commodity(symbol, name string, pip, contract, margin float64) Instrument {
	return Instrument{
		Symbol:        symbol,
		Name:          name,
		AssetClass:    Commodity,
		QuoteCurrency: "USD",
		PipSize:       pip,
		ContractSize:  contract,
		MarginRate:    margin,
	}
}

func index(symbol, name, quote string, pip, tickValue float64) Instrument {
	return Instrument{
		Symbol:        symbol,
		Name:          name,
		AssetClass:    Index,
		QuoteCurrency: quote,
		PipSize:       pip,
		TickValue:     tickValue,
		MarginRate:    0.05,
	}
}

func crypto(base, quote string, pip float64) Instrument {
	return Instrument{
		Symbol:        base + "/" + quote,
		Name:          base + "/" + quote,
		AssetClass:    Crypto,
		BaseCurrency:  base,
		QuoteCurrency: quote,
		PipSize:       pip,
		ContractSize:  1,
	}
}

var instruments = buildCatalog(
	fx("EUR", "USD", 0.0001),
	fx("GBP", "USD", 0.0001),
	fx("AUD", "USD", 0.0001),
	fx("NZD", "USD", 0.0001),
	fx("USD", "CAD", 0.0001),
	fx("USD", "CHF", 0.0001),
	fx("EUR", "GBP", 0.0001),
	fx("USD", "JPY", 0.01),
	fx("EUR", "JPY", 0.01),
	fx("GBP", "JPY", 0.01),

	commodity("GOLD", "Gold (troy oz)", 0.01, 100, 0.05),
	commodity("SILVER", "Silver (troy oz)", 0.001, 5000, 0.10),
	commodity("OIL", "WTI Crude Oil (bbl)", 0.01, 1000, 0.10),

	index("US30", "Dow Jones 30", "USD", 1, 1),
	index("SPX500", "S&P 500", "USD", 0.1, 1),
	index("NAS100", "Nasdaq 100", "USD", 1, 1),
	index("GER40", "DAX 40", "EUR", 1, 1),

	crypto("BTC", "USD", 1),
	crypto("ETH", "USD", 0.01),
)

func buildCatalog(list ...Instrument) map[string]Instrument {
	m := make(map[string]Instrument, len(list))
	for _, inst := range list {
		if inst.PipSize <= 0 {
			panic(fmt.Sprintf("market: instrument %s has non-positive pip size", inst.Symbol))
		}
		if _, dup := m[inst.Symbol]; dup {
			panic(fmt.Sprintf("market: duplicate instrument %s", inst.Symbol))
		}
		m[inst.Symbol] = inst
	}
	return m
}

// NormalizeSymbol maps "eur_usd", "EUR-USD", "EURUSD" and "EUR/USD" to the
// catalog form "EUR/USD". Non-pair symbols are upper-cased.
func NormalizeSymbol(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.NewReplacer("_", "/", "-", "/", " ", "").Replace(s)
	if _, ok := instruments[s]; ok {
		return s
	}
	if !strings.Contains(s, "/") && len(s) == 6 {
		pair := s[:3] + "/" + s[3:]
		if _, ok := instruments[pair]; ok {
			return pair
		}
	}
	return s
}

// Lookup returns the instrument for symbol. The second result is false for
// unknown symbols; there is no fallback instrument.
func Lookup(symbol string) (Instrument, bool) {
	inst, ok := instruments[NormalizeSymbol(symbol)]
	return inst, ok
}

// Find is Lookup for callers that want an error.
func Find(symbol string) (Instrument, error) {
	inst, ok := Lookup(symbol)
	if !ok {
		return Instrument{}, fmt.Errorf("%w: %s", ErrUnknownInstrument, symbol)
	}
	return inst, nil
}

// Symbols returns all catalog symbols in sorted order.
func Symbols() []string {
	out := make([]string, 0, len(instruments))
	for sym := range instruments {
		out = append(out, sym)
	}
	sort.Strings(out)
	return out
}

// ByClass returns the instruments of one asset class sorted by symbol.
func ByClass(class AssetClass) []Instrument {
	var out []Instrument
	for _, inst := range instruments {
		if inst.AssetClass == class {
			out = append(out, inst)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Symbol < out[b].Symbol })
	return out
}
