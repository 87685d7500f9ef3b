package risk

import (
	"fmt"
	"math"

	"github.com/rustyeddy/tradecalc/market"
)

// Violation codes returned by the validators.
const (
	CodeEntryPrice     = "ENTRY_PRICE"
	CodeExitPrice      = "EXIT_PRICE"
	CodeStopPrice      = "STOP_PRICE"
	CodeTargetPrice    = "TARGET_PRICE"
	CodePositionSize   = "POSITION_SIZE"
	CodeNoMovement     = "NO_PRICE_MOVEMENT"
	CodeStopSide       = "STOP_WRONG_SIDE"
	CodeTargetSide     = "TARGET_WRONG_SIDE"
	CodeDirection      = "DIRECTION"
	CodeBalance        = "ACCOUNT_BALANCE"
	CodeRiskPercent    = "RISK_PERCENT"
	CodeConversionRate = "CONVERSION_RATE"
)

// Violation is a rejected input. Msg is written for the end user.
type Violation struct {
	Code string
	Msg  string
}

func (v *Violation) Error() string { return v.Msg }

func violation(code, msg string) *Violation {
	return &Violation{Code: code, Msg: msg}
}

func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

func checkPrice(code, label string, p float64) error {
	if !positive(p) {
		return violation(code, fmt.Sprintf("%s must be greater than zero", label))
	}
	return nil
}

// ValidateTradeInputs checks the inputs of a P&L calculation. A nil error
// means the trade can be computed.
func ValidateTradeInputs(entryPrice, exitPrice, positionSize float64) error {
	if err := checkPrice(CodeEntryPrice, "entry price", entryPrice); err != nil {
		return err
	}
	if err := checkPrice(CodeExitPrice, "exit price", exitPrice); err != nil {
		return err
	}
	if err := ValidatePositionSize(positionSize); err != nil {
		return err
	}
	if entryPrice == exitPrice {
		return violation(CodeNoMovement, "entry and exit prices must be different")
	}
	return nil
}

// ValidateTradeSetup checks that stop loss and take profit sit on the
// correct sides of entry for the direction. The message names the leg
// that is wrong.
func ValidateTradeSetup(entryPrice, stopLossPrice, takeProfitPrice float64, dir market.Direction) error {
	if err := checkPrice(CodeEntryPrice, "entry price", entryPrice); err != nil {
		return err
	}
	if err := checkPrice(CodeStopPrice, "stop loss", stopLossPrice); err != nil {
		return err
	}
	if err := checkPrice(CodeTargetPrice, "take profit", takeProfitPrice); err != nil {
		return err
	}

	switch dir {
	case market.Long:
		if stopLossPrice >= entryPrice {
			return violation(CodeStopSide, "stop loss must be below the entry price for a long position")
		}
		if takeProfitPrice <= entryPrice {
			return violation(CodeTargetSide, "take profit must be above the entry price for a long position")
		}
	case market.Short:
		if stopLossPrice <= entryPrice {
			return violation(CodeStopSide, "stop loss must be above the entry price for a short position")
		}
		if takeProfitPrice >= entryPrice {
			return violation(CodeTargetSide, "take profit must be below the entry price for a short position")
		}
	default:
		return validateDirection(dir)
	}
	return nil
}

func validateDirection(dir market.Direction) error {
	if dir != market.Long && dir != market.Short {
		return violation(CodeDirection, fmt.Sprintf("direction must be long or short, got %q", string(dir)))
	}
	return nil
}

// ValidatePositionSizeInputs checks the inputs of a position size calculation.
func ValidatePositionSizeInputs(accountBalance, riskPercentage, entryPrice, stopLossPrice float64) error {
	if !positive(accountBalance) {
		return violation(CodeBalance, "account balance must be greater than zero")
	}
	if !(riskPercentage > 0 && riskPercentage <= 100) {
		return violation(CodeRiskPercent, "risk percentage must be greater than 0 and at most 100")
	}
	if err := checkPrice(CodeEntryPrice, "entry price", entryPrice); err != nil {
		return err
	}
	if err := checkPrice(CodeStopPrice, "stop loss", stopLossPrice); err != nil {
		return err
	}
	if entryPrice == stopLossPrice {
		return violation(CodeNoMovement, "entry and stop loss prices must be different")
	}
	return nil
}

func ValidatePositionSize(size float64) error {
	if !positive(size) {
		return violation(CodePositionSize, "position size must be greater than zero")
	}
	return nil
}

// ValidateConversionRate checks a quote to account currency multiplier.
func ValidateConversionRate(rate float64) error {
	if !positive(rate) {
		return violation(CodeConversionRate, "conversion rate must be greater than zero")
	}
	return nil
}
