package models

import (
	"github.com/shopspring/decimal"

	"github.com/joefazee/marketview/internal/format"
)

// TradingPosition is the raw per-outcome position of the viewing account.
type TradingPosition struct {
	OutcomeID    string          `json:"outcome_id"`
	NetPosition  decimal.Decimal `json:"net_position"`
	AveragePrice decimal.Decimal `json:"average_price"`
	Unrealized   decimal.Decimal `json:"unrealized"`
	Realized     decimal.Decimal `json:"realized"`
	Total        decimal.Decimal `json:"total"`
	TotalPercent decimal.Decimal `json:"total_percent"`
}

// AggregatePosition is the raw market-level position aggregate of the
// viewing account.
type AggregatePosition struct {
	UnrealizedRevenue                 decimal.Decimal `json:"unrealized_revenue"`
	Total                             decimal.Decimal `json:"total"`
	TotalPercent                      decimal.Decimal `json:"total_percent"`
	UnrealizedRevenue24hChangePercent decimal.Decimal `json:"unrealized_revenue_24h_change_percent"`
}

// AccountPosition is the raw positions slice for one market: per-outcome
// trading positions plus the market-level aggregate.
type AccountPosition struct {
	TradingPositions map[string]TradingPosition `json:"trading_positions"`
	Aggregate        *AggregatePosition         `json:"aggregate,omitempty"`
}

// ShareBalances holds the viewing account's per-outcome share balances for
// one market, indexed by outcome id order.
type ShareBalances struct {
	Balances []decimal.Decimal `json:"balances"`
}

// LoginAccount identifies the viewing account.
type LoginAccount struct {
	Address string `json:"address"`
}

// PositionSummary is one display-ready position row.
type PositionSummary struct {
	OutcomeID     string        `json:"outcome_id"`
	OutcomeName   string        `json:"outcome_name"`
	Quantity      format.Number `json:"quantity"`
	AveragePrice  format.Number `json:"average_price"`
	UnrealizedNet format.Number `json:"unrealized_net"`
	RealizedNet   format.Number `json:"realized_net"`
	TotalNet      format.Number `json:"total_net"`
	TotalPercent  format.Number `json:"total_percent"`
}

// PositionsSummary is the market-level aggregate shown in the positions
// panel. The monetary fields are only populated when the account holds at
// least one assembled position.
type PositionsSummary struct {
	NumCompleteSets format.Number  `json:"num_complete_sets"`
	CurrentValue    *format.Number `json:"current_value,omitempty"`
	TotalReturns    *format.Number `json:"total_returns,omitempty"`
	TotalPercent    *format.Number `json:"total_percent,omitempty"`
	ValueChange     *format.Number `json:"value_change,omitempty"`
}
