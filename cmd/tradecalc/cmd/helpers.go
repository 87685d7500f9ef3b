package cmd

import (
	"fmt"

	"github.com/rustyeddy/tradecalc/market"
	"github.com/rustyeddy/tradecalc/risk"
	"go.uber.org/zap"
)

func lookupInstrument(symbol string) (market.Instrument, error) {
	inst, err := market.Find(symbol)
	if err != nil {
		logger.Warn("instrument lookup failed", zap.String("symbol", symbol))
		return market.Instrument{}, err
	}
	return inst, nil
}

// conversionRate returns override when set, otherwise resolves the quote to
// account rate from the configured table. refPrice is used when the account
// currency is the instrument's base currency.
func conversionRate(inst market.Instrument, override, refPrice float64) (float64, error) {
	rate := override
	if rate == 0 {
		r, err := market.QuoteToAccountRate(inst, cfg.Account.Currency, cfg.MarketRates(), refPrice)
		if err != nil {
			return 0, fmt.Errorf("%w (set --rate or add it to the config rates)", err)
		}
		rate = r
	}
	if err := risk.ValidateConversionRate(rate); err != nil {
		return 0, err
	}
	logger.Debug("conversion rate",
		zap.String("instrument", inst.Symbol),
		zap.String("quote", inst.QuoteCurrency),
		zap.String("account", cfg.Account.Currency),
		zap.Float64("rate", rate),
	)
	return rate, nil
}

func parseDirection(s string) (market.Direction, error) {
	d, err := market.ParseDirection(s)
	if err != nil {
		return "", &risk.Violation{Code: risk.CodeDirection, Msg: err.Error()}
	}
	return d, nil
}
