// Package trades derives chart series from raw trade history.
package trades

import (
	"sort"

	"github.com/joefazee/marketview/models"
)

// PriceTimeSeries returns the chronological price points for one outcome.
// Timestamps are converted to milliseconds for charting consumers; ties
// within one second keep ledger log order.
func PriceTimeSeries(outcomeID string, history *models.TradeHistory) []models.PricePoint {
	if history == nil {
		return nil
	}

	type keyed struct {
		point    models.PricePoint
		logIndex int
	}
	var points []keyed
	for _, t := range history.Trades {
		if t.Outcome != outcomeID {
			continue
		}
		points = append(points, keyed{
			point: models.PricePoint{
				Timestamp: t.Timestamp * 1000,
				Price:     t.Price,
				Amount:    t.Amount,
			},
			logIndex: t.LogIndex,
		})
	}

	sort.Slice(points, func(i, j int) bool {
		if points[i].point.Timestamp != points[j].point.Timestamp {
			return points[i].point.Timestamp < points[j].point.Timestamp
		}
		return points[i].logIndex < points[j].logIndex
	})

	out := make([]models.PricePoint, len(points))
	for i, p := range points {
		out[i] = p.point
	}
	return out
}
