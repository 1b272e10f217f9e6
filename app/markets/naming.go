package markets

import (
	"github.com/joefazee/marketview/app/reports"
	"github.com/joefazee/marketview/models"
)

// OutcomeName returns the display name for one outcome of a market. Yes/no
// markets have fixed names, scalar markets display their denomination, and
// categorical markets use the outcome's own name, falling back to the id.
func OutcomeName(m *models.Market, outcomeID string, data *models.OutcomeData) string {
	switch {
	case m.Kind.IsYesNo():
		if outcomeID == reports.YesNoOutcomeYesID {
			return "Yes"
		}
		return "No"
	case m.Kind.IsScalar():
		if m.Scalar != nil {
			return m.Scalar.Denomination
		}
		return ""
	default:
		if data != nil && data.Name != "" {
			return data.Name
		}
		return outcomeID
	}
}
