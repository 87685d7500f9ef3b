package risk

import "github.com/rustyeddy/tradecalc/pnl"

// ValidateTradeRequest checks everything CalculatePL reads, the conversion
// rate included.
func ValidateTradeRequest(req pnl.TradeRequest) error {
	if err := ValidateTradeInputs(req.EntryPrice, req.ExitPrice, req.PositionSize); err != nil {
		return err
	}
	if err := validateDirection(req.Direction); err != nil {
		return err
	}
	return ValidateConversionRate(req.QuoteToAccount)
}

// ValidatePositionSizeRequest guards CalculatePositionSize.
func ValidatePositionSizeRequest(req PositionSizeRequest) error {
	if err := ValidatePositionSizeInputs(req.AccountBalance, req.RiskPercentage, req.EntryPrice, req.StopLossPrice); err != nil {
		return err
	}
	return ValidateConversionRate(req.QuoteToAccount)
}

// ValidateRiskRewardRequest guards CalculateRiskReward.
func ValidateRiskRewardRequest(req RiskRewardRequest) error {
	if err := ValidateTradeSetup(req.EntryPrice, req.StopLossPrice, req.TakeProfitPrice, req.Direction); err != nil {
		return err
	}
	if err := ValidatePositionSize(req.PositionSize); err != nil {
		return err
	}
	return ValidateConversionRate(req.QuoteToAccount)
}

// ValidatePipValueRequest guards CalculatePipValue.
func ValidatePipValueRequest(req pnl.PipValueRequest) error {
	if err := ValidatePositionSize(req.PositionSize); err != nil {
		return err
	}
	return ValidateConversionRate(req.QuoteToAccount)
}
