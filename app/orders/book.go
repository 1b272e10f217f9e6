// Package orders derives order-book and fill views for one outcome from the
// raw per-market order book and trade history slices.
package orders

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/joefazee/marketview/internal/format"
	"github.com/joefazee/marketview/models"
)

// AggregateOrderBook groups the open, non-cancelled orders for one outcome
// into price levels. Bids are sorted best (highest) first, asks best
// (lowest) first. selfAddress marks the viewing account so top-of-book
// selection can skip levels that consist only of the viewer's own orders.
func AggregateOrderBook(
	outcomeID string,
	book *models.MarketOrderBook,
	cancels *models.OrderCancellations,
	selfAddress string,
) *models.OutcomeOrderBook {
	if book == nil {
		return &models.OutcomeOrderBook{}
	}
	return &models.OutcomeOrderBook{
		Bids: levels(book.Buy, outcomeID, cancels, selfAddress, true),
		Asks: levels(book.Sell, outcomeID, cancels, selfAddress, false),
	}
}

func levels(
	side map[string]*models.Order,
	outcomeID string,
	cancels *models.OrderCancellations,
	selfAddress string,
	descending bool,
) []models.PriceLevel {
	type bucket struct {
		price  decimal.Decimal
		shares decimal.Decimal
		mine   decimal.Decimal
	}
	buckets := make(map[string]*bucket)

	for _, o := range side {
		if o == nil || o.Outcome != outcomeID || o.State != models.OrderStateOpen {
			continue
		}
		if cancels.IsCancelled(o.ID) {
			continue
		}
		key := o.Price.String()
		b, ok := buckets[key]
		if !ok {
			b = &bucket{price: o.Price}
			buckets[key] = b
		}
		b.shares = b.shares.Add(o.Amount)
		if selfAddress != "" && o.Owner == selfAddress {
			b.mine = b.mine.Add(o.Amount)
		}
	}

	sorted := make([]*bucket, 0, len(buckets))
	for _, b := range buckets {
		sorted = append(sorted, b)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if descending {
			return sorted[i].price.GreaterThan(sorted[j].price)
		}
		return sorted[i].price.LessThan(sorted[j].price)
	})

	out := make([]models.PriceLevel, len(sorted))
	for i, b := range sorted {
		out[i] = models.PriceLevel{
			Price:  format.Ether(b.price),
			Shares: format.Shares(b.shares),
			MySize: format.Shares(b.mine),
		}
	}
	return out
}

// TopBid returns the best bid level. Levels consisting entirely of the
// viewing account's own orders are skipped unless includeSelf is set. The
// result is nil when no eligible level exists.
func TopBid(book *models.OutcomeOrderBook, includeSelf bool) *models.PriceLevel {
	return top(book.Bids, includeSelf)
}

// TopAsk returns the best ask level under the same rules as TopBid.
func TopAsk(book *models.OutcomeOrderBook, includeSelf bool) *models.PriceLevel {
	return top(book.Asks, includeSelf)
}

func top(side []models.PriceLevel, includeSelf bool) *models.PriceLevel {
	for i := range side {
		if !includeSelf && side[i].Shares.Value.Equal(side[i].MySize.Value) && !side[i].MySize.Value.IsZero() {
			continue
		}
		lvl := side[i]
		return &lvl
	}
	return nil
}
