// Package positions derives display-ready position rows from the raw
// per-outcome trading positions of the viewing account.
package positions

import (
	"github.com/shopspring/decimal"

	"github.com/joefazee/marketview/internal/format"
	"github.com/joefazee/marketview/models"
)

var hundred = decimal.NewFromInt(100)

// Summarize formats one raw trading position into a position row. Absent
// monetary fields are zero-valued decimals and format as zero.
func Summarize(position models.TradingPosition, outcomeName string) models.PositionSummary {
	pctOpts := format.PercentOptions()
	pctOpts.DecimalsRounded = 2

	return models.PositionSummary{
		OutcomeID:     position.OutcomeID,
		OutcomeName:   outcomeName,
		Quantity:      format.Shares(position.NetPosition),
		AveragePrice:  format.Ether(position.AveragePrice),
		UnrealizedNet: format.Ether(position.Unrealized),
		RealizedNet:   format.Ether(position.Realized),
		TotalNet:      format.Ether(position.Total),
		TotalPercent:  format.FormatNumber(position.TotalPercent.Mul(hundred), pctOpts),
	}
}
