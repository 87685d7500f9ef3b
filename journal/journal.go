// journal/journal.go
package journal

import (
	"time"

	"github.com/rustyeddy/tradecalc/market"
	"github.com/rustyeddy/tradecalc/pkg/id"
	"github.com/rustyeddy/tradecalc/pnl"
)

// TradeRecord is one closed trade as stored in the journal. ProfitLoss and
// PipMovement are copied from the P&L engine at the time of recording.
type TradeRecord struct {
	TradeID      string
	Instrument   string
	Direction    market.Direction
	PositionSize float64
	EntryPrice   float64
	ExitPrice    float64
	StopLoss     float64 // 0 when not set
	TakeProfit   float64 // 0 when not set
	OpenTime     time.Time
	CloseTime    time.Time
	ProfitLoss   float64
	PipMovement  float64
	Strategy     string
	Notes        string
}

// NewRecord builds a record from a P&L request and its result. The trade ID
// is a ULID stamped with the close time.
func NewRecord(req pnl.TradeRequest, res pnl.PLResult, open, close time.Time) TradeRecord {
	return TradeRecord{
		TradeID:      id.NewAt(close),
		Instrument:   req.Instrument.Symbol,
		Direction:    req.Direction,
		PositionSize: req.PositionSize,
		EntryPrice:   req.EntryPrice,
		ExitPrice:    req.ExitPrice,
		OpenTime:     open.UTC(),
		CloseTime:    close.UTC(),
		ProfitLoss:   res.ProfitLoss,
		PipMovement:  res.PipMovement,
	}
}

type Journal interface {
	RecordTrade(TradeRecord) error
	Close() error
}
