package models

import (
	"github.com/shopspring/decimal"

	"github.com/joefazee/marketview/internal/format"
)

// OutcomeData is the raw per-outcome slice for one market, keyed by outcome
// id inside MarketOutcomes.
type OutcomeData struct {
	Name   string          `json:"name,omitempty"`
	Price  decimal.Decimal `json:"price"`
	Volume decimal.Decimal `json:"volume"`
}

// MarketOutcomes holds the raw outcome set of one market. The snapshot maps
// market ids to pointers of this type so the slice is identity-comparable.
type MarketOutcomes struct {
	ByID map[string]OutcomeData `json:"by_id"`
}

// Outcome is one fully computed outcome inside an assembled Market.
type Outcome struct {
	ID       string          `json:"id"`
	MarketID string          `json:"market_id"`
	Name     string          `json:"name"`
	Volume   decimal.Decimal `json:"volume"`

	// LastPrice is rendered as an em-dash placeholder when the outcome has
	// traded no volume yet.
	LastPrice format.Number `json:"last_price"`

	// LastPriceDisplay is the gauge value shown next to the price. For
	// scalar markets it holds the raw last price, or the midpoint of the
	// price range at zero volume; for other markets it is the implied
	// percentage, or an equal share at zero volume.
	LastPriceDisplay format.Number `json:"last_price_display"`

	OrderBook       *OutcomeOrderBook `json:"order_book"`
	OrderBookSeries []DepthPoint      `json:"order_book_series"`
	TopBid          *PriceLevel       `json:"top_bid,omitempty"`
	TopAsk          *PriceLevel       `json:"top_ask,omitempty"`
	PriceTimeSeries []PricePoint      `json:"price_time_series"`
}
