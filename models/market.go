package models

import (
	"github.com/shopspring/decimal"

	"github.com/joefazee/marketview/internal/format"
)

// MarketKind represents the kind of market
type MarketKind string

const (
	KindYesNo       MarketKind = "yesNo"
	KindCategorical MarketKind = "categorical"
	KindScalar      MarketKind = "scalar"
)

// IsYesNo reports whether the market has exactly two fixed outcomes.
func (k MarketKind) IsYesNo() bool { return k == KindYesNo }

// IsCategorical reports whether the market has a custom outcome set.
func (k MarketKind) IsCategorical() bool { return k == KindCategorical }

// IsScalar reports whether the market resolves to a numeric value.
func (k MarketKind) IsScalar() bool { return k == KindScalar }

// Valid reports whether the kind is one of the three known kinds.
func (k MarketKind) Valid() bool {
	return k == KindYesNo || k == KindCategorical || k == KindScalar
}

// ReportingState is the fine-grained lifecycle phase of a market on the
// backing ledger.
type ReportingState string

const (
	ReportingStatePreReporting         ReportingState = "PRE_REPORTING"
	ReportingStateDesignatedReporting  ReportingState = "DESIGNATED_REPORTING"
	ReportingStateOpenReporting        ReportingState = "OPEN_REPORTING"
	ReportingStateCrowdsourcingDispute ReportingState = "CROWDSOURCING_DISPUTE"
	ReportingStateAwaitingNextWindow   ReportingState = "AWAITING_NEXT_WINDOW"
	ReportingStateAwaitingFinalization ReportingState = "AWAITING_FINALIZATION"
	ReportingStateFinalized            ReportingState = "FINALIZED"
)

// MarketStatus is the coarse lifecycle phase shown to users, collapsed from
// the reporting state.
type MarketStatus string

const (
	MarketStatusOpen      MarketStatus = "open"
	MarketStatusReporting MarketStatus = "reporting"
	MarketStatusClosed    MarketStatus = "closed"
)

// MarketData is the raw market metadata slice as delivered by the ledger
// sync layer, keyed by market id in the snapshot.
type MarketData struct {
	ID                   string           `json:"id"`
	Description          string           `json:"description"`
	MarketType           MarketKind       `json:"market_type"`
	ScalarDenomination   string           `json:"scalar_denomination,omitempty"`
	MinPrice             *decimal.Decimal `json:"min_price,omitempty"`
	MaxPrice             *decimal.Decimal `json:"max_price,omitempty"`
	NumOutcomes          int              `json:"num_outcomes"`
	EndTime              int64            `json:"end_time"`
	CreationTime         int64            `json:"creation_time"`
	ReportingState       ReportingState   `json:"reporting_state"`
	ReportingFeeRate     decimal.Decimal  `json:"reporting_fee_rate"`
	MarketCreatorFeeRate decimal.Decimal  `json:"market_creator_fee_rate"`
	SettlementFee        decimal.Decimal  `json:"settlement_fee"`
	OpenInterest         decimal.Decimal  `json:"open_interest"`
	Volume               decimal.Decimal  `json:"volume"`
	UnclaimedCreatorFees decimal.Decimal  `json:"unclaimed_creator_fees"`
	CreatorFeesCollected decimal.Decimal  `json:"creator_fees_collected"`
	Tags                 []string         `json:"tags,omitempty"`
	ResolutionSource     string           `json:"resolution_source,omitempty"`
	Consensus            *ConsensusData   `json:"consensus,omitempty"`
}

// ConsensusData is the raw resolution record for a finalized market.
type ConsensusData struct {
	Payout            []decimal.Decimal `json:"payout"`
	IsInvalid         bool              `json:"is_invalid"`
	ProportionCorrect *decimal.Decimal  `json:"proportion_correct,omitempty"`
}

// ScalarBounds carries the price range and denomination of a scalar market.
// Present on an assembled Market iff the market kind is scalar.
type ScalarBounds struct {
	MinPrice     decimal.Decimal `json:"min_price"`
	MaxPrice     decimal.Decimal `json:"max_price"`
	Denomination string          `json:"denomination"`
}

// Midpoint returns the middle of the price range.
func (b *ScalarBounds) Midpoint() decimal.Decimal {
	return b.MinPrice.Add(b.MaxPrice).Div(decimal.NewFromInt(2))
}

// Market is the assembled, fully formatted market view consumed by UI
// containers. It is newly constructed on each re-derivation and must be
// treated as read-only by callers; modifications go back through the
// originating state slices.
type Market struct {
	ID               string        `json:"id"`
	Description      string        `json:"description"`
	Kind             MarketKind    `json:"kind"`
	Scalar           *ScalarBounds `json:"scalar,omitempty"`
	NumOutcomes      int           `json:"num_outcomes"`
	Tags             []string      `json:"tags,omitempty"`
	ResolutionSource string        `json:"resolution_source,omitempty"`

	Status         MarketStatus   `json:"status"`
	ReportingState ReportingState `json:"reporting_state"`
	EndTime        format.Date    `json:"end_time"`
	CreationTime   format.Date    `json:"creation_time"`

	ReportingFeePercent  format.Number `json:"reporting_fee_percent"`
	CreatorFeePercent    format.Number `json:"creator_fee_percent"`
	SettlementFeePercent format.Number `json:"settlement_fee_percent"`
	OpenInterest         format.Number `json:"open_interest"`
	Volume               format.Number `json:"volume"`
	UnclaimedCreatorFees format.Number `json:"unclaimed_creator_fees"`
	CreatorFeesCollected format.Number `json:"creator_fees_collected"`

	Outcomes           []*Outcome          `json:"outcomes"`
	UserPositions      []PositionSummary   `json:"user_positions"`
	UserOpenOrders     []OpenOrder         `json:"user_open_orders"`
	FilledOrders       []FilledOrder       `json:"filled_orders"`
	RecentlyTraded     format.Date         `json:"recently_traded"`
	ReportableOutcomes []ReportableOutcome `json:"reportable_outcomes"`
	MyPositionsSummary *PositionsSummary   `json:"my_positions_summary,omitempty"`

	// Consensus is nil until the market has been resolved, so callers can
	// distinguish "not yet resolved" from "field not computed".
	Consensus *Consensus `json:"consensus"`
}

// Ready reports whether the market was assembled from a known market record.
// The public accessor returns a zero-value Market for unknown ids.
func (m *Market) Ready() bool { return m.ID != "" }

// IsYesNo reports whether the assembled market is a yes/no market.
func (m *Market) IsYesNo() bool { return m.Kind.IsYesNo() }

// IsCategorical reports whether the assembled market is categorical.
func (m *Market) IsCategorical() bool { return m.Kind.IsCategorical() }

// IsScalar reports whether the assembled market is scalar.
func (m *Market) IsScalar() bool { return m.Kind.IsScalar() }

// ReportableOutcome is one outcome legal to report on, plus the synthetic
// indeterminate entry appended by the assembler.
type ReportableOutcome struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Consensus is the assembled resolution record.
type Consensus struct {
	Payout         []decimal.Decimal `json:"payout"`
	IsInvalid      bool              `json:"is_invalid"`
	WinningOutcome string            `json:"winning_outcome,omitempty"`
	OutcomeName    string            `json:"outcome_name,omitempty"`
	PercentCorrect *format.Number    `json:"percent_correct,omitempty"`
}
