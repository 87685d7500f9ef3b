package market

import (
	"fmt"
	"strings"
)

type Direction string

const (
	Long  Direction = "long"
	Short Direction = "short"
)

// ParseDirection accepts long/buy and short/sell in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "long", "buy":
		return Long, nil
	case "short", "sell":
		return Short, nil
	}
	return "", fmt.Errorf("unknown direction %q (want long or short)", s)
}

// Sign is +1 for long and -1 for short.
func (d Direction) Sign() float64 {
	switch d {
	case Long:
		return 1
	case Short:
		return -1
	}
	panic(fmt.Sprintf("market: unknown direction %q", string(d)))
}

func (d Direction) String() string { return string(d) }
