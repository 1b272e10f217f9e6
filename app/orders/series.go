package orders

import (
	"github.com/shopspring/decimal"

	"github.com/joefazee/marketview/models"
)

// OrderBookSeries turns an aggregated outcome book into a cumulative depth
// series for charting: bid depth accumulated from the best bid downward, ask
// depth from the best ask upward, merged in ascending price order.
func OrderBookSeries(book *models.OutcomeOrderBook) []models.DepthPoint {
	if book == nil {
		return nil
	}

	bids := make([]models.DepthPoint, len(book.Bids))
	cum := decimal.Zero
	for i := range book.Bids {
		cum = cum.Add(book.Bids[i].Shares.Value)
		bids[i] = models.DepthPoint{
			Price:  book.Bids[i].Price.Value,
			Shares: cum,
			Side:   models.OrderSideBuy,
		}
	}

	// Bids were walked best-first (highest price); flip to ascending.
	for i, j := 0, len(bids)-1; i < j; i, j = i+1, j-1 {
		bids[i], bids[j] = bids[j], bids[i]
	}

	series := bids
	cum = decimal.Zero
	for i := range book.Asks {
		cum = cum.Add(book.Asks[i].Shares.Value)
		series = append(series, models.DepthPoint{
			Price:  book.Asks[i].Price.Value,
			Shares: cum,
			Side:   models.OrderSideSell,
		})
	}
	return series
}
