package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Side is the direction of an order.
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// SideFromString parses an order side, accepting any casing.
func SideFromString(s string) (Side, error) {
	switch Side(s) {
	case SideBuy, "buy":
		return SideBuy, nil
	case SideSell, "sell":
		return SideSell, nil
	default:
		return "", fmt.Errorf("unknown order side: %q", s)
	}
}

// Order is a request to trade a fixed quantity of the base asset at market.
type Order struct {
	Pair     Pair
	Side     Side
	Quantity decimal.Decimal
}

// Quote is a single price observation for a pair.
type Quote struct {
	Pair  Pair
	Price decimal.Decimal
}

// Delta describes the balance mutation produced by one fill. Assets holds the
// signed per-asset deltas; the remaining fields carry the originating order so
// a live account provider can express the same mutation as a real test order.
type Delta struct {
	OrderID  string
	Pair     Pair
	Side     Side
	Quantity decimal.Decimal
	Price    decimal.Decimal
	Assets   map[string]decimal.Decimal
}

// TradeRecord is the immutable receipt of one completed simulated trade.
type TradeRecord struct {
	ID       string                     `json:"id"`
	Pair     string                     `json:"pair"`
	Side     Side                       `json:"side"`
	Quantity decimal.Decimal            `json:"quantity"`
	Price    decimal.Decimal            `json:"price"`
	Notional decimal.Decimal            `json:"notional"`
	Deltas   map[string]decimal.Decimal `json:"deltas"`
	Mode     Mode                       `json:"mode"`
	Time     time.Time                  `json:"time"`
}

// String returns a human-readable one-line summary.
func (t TradeRecord) String() string {
	return fmt.Sprintf("%s %s %s @ %s (notional %s)",
		t.Side, t.Quantity.String(), t.Pair, t.Price.String(), t.Notional.String())
}
