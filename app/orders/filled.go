package orders

import (
	"sort"

	"github.com/joefazee/marketview/internal/format"
	"github.com/joefazee/marketview/models"
)

// OutcomeNamer resolves an outcome id into its display name.
type OutcomeNamer func(outcomeID string) string

// FilledOrders maps the trades involving the viewing account into
// display-ready fill entries. Ordering contract: descending timestamp, ties
// broken by descending log index, so the single most recent fill is first.
func FilledOrders(
	history *models.TradeHistory,
	account *models.LoginAccount,
	nameFor OutcomeNamer,
) []models.FilledOrder {
	if history == nil || account == nil || account.Address == "" {
		return nil
	}

	var out []models.FilledOrder
	for _, t := range history.Trades {
		if t.Creator != account.Address && t.Filler != account.Address {
			continue
		}
		out = append(out, models.FilledOrder{
			ID:          t.TransactionHash,
			OutcomeID:   t.Outcome,
			OutcomeName: nameFor(t.Outcome),
			Type:        t.Side,
			Price:       format.Ether(t.Price),
			Amount:      format.Shares(t.Amount),
			Timestamp:   format.FromUnix(t.Timestamp),
			LogIndex:    t.LogIndex,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Timestamp.Timestamp != out[j].Timestamp.Timestamp {
			return out[i].Timestamp.Timestamp > out[j].Timestamp.Timestamp
		}
		return out[i].LogIndex > out[j].LogIndex
	})
	return out
}
