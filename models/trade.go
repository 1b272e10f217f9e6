package models

import (
	"github.com/shopspring/decimal"

	"github.com/joefazee/marketview/internal/format"
)

// Trade is one raw trade-history entry for a market.
type Trade struct {
	TransactionHash string          `json:"transaction_hash"`
	LogIndex        int             `json:"log_index"`
	Outcome         string          `json:"outcome"`
	Side            OrderSide       `json:"side"`
	Price           decimal.Decimal `json:"price"`
	Amount          decimal.Decimal `json:"amount"`
	Creator         string          `json:"creator"`
	Filler          string          `json:"filler"`
	Timestamp       int64           `json:"timestamp"`
}

// TradeHistory holds the raw trade history of one market. The snapshot maps
// market ids to pointers of this type so the slice is identity-comparable.
type TradeHistory struct {
	Trades []Trade `json:"trades"`
}

// FilledOrder is one display-ready fill of the viewing account, ordered
// most recent first in the assembled market.
type FilledOrder struct {
	ID          string        `json:"id"`
	OutcomeID   string        `json:"outcome_id"`
	OutcomeName string        `json:"outcome_name"`
	Type        OrderSide     `json:"type"`
	Price       format.Number `json:"price"`
	Amount      format.Number `json:"amount"`
	Timestamp   format.Date   `json:"timestamp"`
	LogIndex    int           `json:"log_index"`
}

// PricePoint is one point of an outcome's price time series. Timestamp is in
// milliseconds, matching what charting components consume.
type PricePoint struct {
	Timestamp int64           `json:"timestamp"`
	Price     decimal.Decimal `json:"price"`
	Amount    decimal.Decimal `json:"amount"`
}
