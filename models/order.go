package models

import (
	"github.com/shopspring/decimal"

	"github.com/joefazee/marketview/internal/format"
)

// OrderSide represents the side of an order
type OrderSide string

const (
	OrderSideBuy  OrderSide = "buy"
	OrderSideSell OrderSide = "sell"
)

// OrderState represents the ledger state of an order
type OrderState string

const (
	OrderStateOpen     OrderState = "OPEN"
	OrderStateFilled   OrderState = "FILLED"
	OrderStateCanceled OrderState = "CANCELED"
)

// Order is one raw open order pulled from the ledger order book.
type Order struct {
	ID        string          `json:"id"`
	Outcome   string          `json:"outcome"`
	Owner     string          `json:"owner"`
	Side      OrderSide       `json:"side"`
	Price     decimal.Decimal `json:"price"`
	Amount    decimal.Decimal `json:"amount"`
	State     OrderState      `json:"state"`
	Timestamp int64           `json:"timestamp"`
}

// MarketOrderBook is the raw order book slice for one market: every open
// order on either side, across all outcomes, keyed by order id.
type MarketOrderBook struct {
	Buy  map[string]*Order `json:"buy"`
	Sell map[string]*Order `json:"sell"`
}

// OrderCancellations tracks locally submitted, not yet confirmed
// cancellations, keyed by order id. Global across markets.
type OrderCancellations struct {
	Pending map[string]bool `json:"pending"`
}

// IsCancelled reports whether a cancellation is in flight for the order.
// Safe on a nil receiver.
func (c *OrderCancellations) IsCancelled(orderID string) bool {
	if c == nil {
		return false
	}
	return c.Pending[orderID]
}

// PriceLevel is one aggregated rung of an outcome's bid or ask ladder.
type PriceLevel struct {
	Price  format.Number `json:"price"`
	Shares format.Number `json:"shares"`
	// MySize is the portion of Shares owned by the viewing account.
	MySize format.Number `json:"my_size"`
}

// OutcomeOrderBook is the aggregated ladder view for one outcome: bids
// sorted best (highest) first, asks sorted best (lowest) first.
type OutcomeOrderBook struct {
	Bids []PriceLevel `json:"bids"`
	Asks []PriceLevel `json:"asks"`
}

// DepthPoint is one point of the cumulative depth chart series.
type DepthPoint struct {
	Price  decimal.Decimal `json:"price"`
	Shares decimal.Decimal `json:"shares"`
	Side   OrderSide       `json:"side"`
}

// OpenOrder is one of the viewing account's open orders, labelled for
// display. Pending marks locally submitted orders not yet confirmed by the
// ledger.
type OpenOrder struct {
	ID                string        `json:"id"`
	MarketID          string        `json:"market_id"`
	OutcomeID         string        `json:"outcome_id"`
	MarketDescription string        `json:"market_description"`
	OutcomeName       string        `json:"outcome_name"`
	Type              OrderSide     `json:"type"`
	AvgPrice          format.Number `json:"avg_price"`
	UnmatchedShares   format.Number `json:"unmatched_shares"`
	Pending           bool          `json:"pending"`
	CreationTime      format.Date   `json:"creation_time"`
}

// PendingOrders holds the locally submitted orders for one market.
type PendingOrders struct {
	Orders []OpenOrder `json:"orders"`
}
