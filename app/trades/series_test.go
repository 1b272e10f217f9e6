package trades

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joefazee/marketview/models"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestPriceTimeSeries(t *testing.T) {
	history := &models.TradeHistory{Trades: []models.Trade{
		{Outcome: "1", Price: dec("0.55"), Amount: dec("2"), Timestamp: 200, LogIndex: 1},
		{Outcome: "1", Price: dec("0.40"), Amount: dec("5"), Timestamp: 100, LogIndex: 0},
		{Outcome: "2", Price: dec("0.90"), Amount: dec("1"), Timestamp: 150, LogIndex: 0},
		{Outcome: "1", Price: dec("0.52"), Amount: dec("3"), Timestamp: 200, LogIndex: 0},
	}}

	t.Run("chronological with log-index tie break", func(t *testing.T) {
		series := PriceTimeSeries("1", history)
		require.Len(t, series, 3)

		assert.Equal(t, int64(100000), series[0].Timestamp)
		assert.True(t, dec("0.4").Equal(series[0].Price))

		// Two trades at t=200: log index 0 before 1.
		assert.True(t, dec("0.52").Equal(series[1].Price))
		assert.True(t, dec("0.55").Equal(series[2].Price))
	})

	t.Run("timestamps are milliseconds", func(t *testing.T) {
		series := PriceTimeSeries("2", history)
		require.Len(t, series, 1)
		assert.Equal(t, int64(150000), series[0].Timestamp)
	})

	t.Run("no trades for outcome", func(t *testing.T) {
		assert.Empty(t, PriceTimeSeries("9", history))
	})

	t.Run("nil history", func(t *testing.T) {
		assert.Nil(t, PriceTimeSeries("1", nil))
	})
}
