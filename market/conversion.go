package market

import (
	"fmt"
	"strings"
)

// Rates maps a currency code to the account-currency value of one unit of
// that currency, e.g. {"JPY": 0.0067} for a USD account. The table is
// supplied by the caller; nothing here fetches prices.
type Rates map[string]float64

// QuoteToAccountRate returns the multiplier that converts an amount in the
// instrument's quote currency into the account currency.
//
// refPrice is the instrument price used when the account currency is the
// base currency (USD/JPY in a USD account gives 1/price). Pass 0 when no
// such price is available.
func QuoteToAccountRate(inst Instrument, accountCurrency string, rates Rates, refPrice float64) (float64, error) {
	account := strings.ToUpper(accountCurrency)

	// Case 1: quote currency == account currency (EUR/USD, GOLD, US30 in a USD account)
	if inst.QuoteCurrency == account {
		return 1.0, nil
	}

	// Case 2: caller supplied a rate for the quote currency
	if r, ok := rates[inst.QuoteCurrency]; ok {
		if r <= 0 {
			return 0, fmt.Errorf("conversion rate for %s must be positive, got %v", inst.QuoteCurrency, r)
		}
		return r, nil
	}

	// Case 3: account currency is the base (USD/JPY in a USD account)
	if inst.BaseCurrency == account && refPrice > 0 {
		return 1.0 / refPrice, nil
	}

	return 0, fmt.Errorf(
		"no conversion rate for %s → %s (instrument %s)",
		inst.QuoteCurrency,
		account,
		inst.Symbol,
	)
}
