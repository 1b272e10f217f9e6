// Package reports derives the outcome set legal to report on and resolves
// raw payout numerators into a winning outcome identifier.
package reports

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/joefazee/marketview/models"
)

// Sentinel ids for the synthetic indeterminate/invalid outcome. Yes/no
// markets use the midpoint id; categorical and scalar markets share a
// symbolic id.
const (
	YesNoIndeterminateOutcomeID             = "0.5"
	CategoricalScalarIndeterminateOutcomeID = "indeterminate"
	IndeterminateOutcomeName                = "Indeterminate"
)

// Fixed outcome ids of a yes/no market.
const (
	YesNoOutcomeNoID  = "0"
	YesNoOutcomeYesID = "1"
)

// IndeterminateOutcomeID returns the indeterminate sentinel id for the
// market kind.
func IndeterminateOutcomeID(kind models.MarketKind) string {
	if kind.IsYesNo() {
		return YesNoIndeterminateOutcomeID
	}
	return CategoricalScalarIndeterminateOutcomeID
}

// ReportableOutcomes returns the outcomes legal to report on for a market
// kind. Yes/no markets have a fixed pair; categorical markets report on the
// assembled outcome set; scalar reports are numeric, so the set is empty.
// The synthetic indeterminate entry is appended by the assembler, not here.
func ReportableOutcomes(kind models.MarketKind, outcomes []*models.Outcome) []models.ReportableOutcome {
	switch {
	case kind.IsYesNo():
		return []models.ReportableOutcome{
			{ID: YesNoOutcomeNoID, Name: "No"},
			{ID: YesNoOutcomeYesID, Name: "Yes"},
		}
	case kind.IsCategorical():
		out := make([]models.ReportableOutcome, 0, len(outcomes))
		for _, o := range outcomes {
			if o == nil {
				continue
			}
			out = append(out, models.ReportableOutcome{ID: o.ID, Name: o.Name})
		}
		return out
	default:
		return nil
	}
}

// WinningOutcome resolves raw payout numerators into the winning outcome
// identifier. Invalid resolutions map to the kind's indeterminate sentinel.
// For scalar markets the result is the resolved numeric value
// min + payout[1]/Σpayout × (max−min) rendered as a string; otherwise it is
// the index of the largest numerator.
func WinningOutcome(
	kind models.MarketKind,
	bounds *models.ScalarBounds,
	payout []decimal.Decimal,
	isInvalid bool,
) string {
	if len(payout) == 0 {
		return ""
	}
	if isInvalid {
		return IndeterminateOutcomeID(kind)
	}

	if kind.IsScalar() {
		if bounds == nil || len(payout) < 2 {
			return ""
		}
		ticks := decimal.Zero
		for _, p := range payout {
			ticks = ticks.Add(p)
		}
		if ticks.IsZero() {
			return ""
		}
		span := bounds.MaxPrice.Sub(bounds.MinPrice)
		value := bounds.MinPrice.Add(payout[1].Div(ticks).Mul(span))
		return value.String()
	}

	winner := 0
	for i := 1; i < len(payout); i++ {
		if payout[i].GreaterThan(payout[winner]) {
			winner = i
		}
	}
	return strconv.Itoa(winner)
}
