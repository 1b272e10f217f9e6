package orders

import (
	"sort"

	"github.com/joefazee/marketview/internal/format"
	"github.com/joefazee/marketview/models"
)

// UserOpenOrders returns the viewing account's open, non-cancelled orders
// for one outcome, newest first, labelled with the market description and
// outcome display name.
func UserOpenOrders(
	marketID, outcomeID string,
	book *models.MarketOrderBook,
	cancels *models.OrderCancellations,
	account *models.LoginAccount,
	marketDescription, outcomeName string,
) []models.OpenOrder {
	if book == nil || account == nil || account.Address == "" {
		return nil
	}

	var out []models.OpenOrder
	collect := func(side map[string]*models.Order) {
		for _, o := range side {
			if o == nil || o.Outcome != outcomeID || o.Owner != account.Address {
				continue
			}
			if o.State != models.OrderStateOpen || cancels.IsCancelled(o.ID) {
				continue
			}
			out = append(out, models.OpenOrder{
				ID:                o.ID,
				MarketID:          marketID,
				OutcomeID:         outcomeID,
				MarketDescription: marketDescription,
				OutcomeName:       outcomeName,
				Type:              o.Side,
				AvgPrice:          format.Ether(o.Price),
				UnmatchedShares:   format.Shares(o.Amount),
				CreationTime:      format.FromUnix(o.Timestamp),
			})
		}
	}
	collect(book.Buy)
	collect(book.Sell)

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreationTime.Timestamp != out[j].CreationTime.Timestamp {
			return out[i].CreationTime.Timestamp > out[j].CreationTime.Timestamp
		}
		return out[i].ID < out[j].ID
	})
	return out
}
