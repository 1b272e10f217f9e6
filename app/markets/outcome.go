package markets

import (
	"github.com/shopspring/decimal"

	"github.com/joefazee/marketview/app/orders"
	"github.com/joefazee/marketview/app/trades"
	"github.com/joefazee/marketview/internal/format"
	"github.com/joefazee/marketview/models"
)

// NoVolumePlaceholder is the glyph shown instead of a price when the
// outcome has no traded volume yet.
const NoVolumePlaceholder = "—"

// assembleOutcome turns one outcome's raw data, the shared order book and
// the trade history into a fully computed outcome view. Pure; inputs are
// never mutated.
func (a *Assembler) assembleOutcome(
	m *models.Market,
	outcomeID string,
	data models.OutcomeData,
	in inputs,
) *models.Outcome {
	out := &models.Outcome{
		ID:        outcomeID,
		MarketID:  m.ID,
		Name:      OutcomeName(m, outcomeID, &data),
		Volume:    data.Volume,
		LastPrice: format.Ether(data.Price),
	}
	if data.Volume.IsZero() {
		out.LastPrice.Formatted = NoVolumePlaceholder
	}

	out.LastPriceDisplay = a.lastPriceDisplay(m, out, data)

	selfAddress := ""
	if in.account != nil {
		selfAddress = in.account.Address
	}
	book := orders.AggregateOrderBook(outcomeID, in.orderBook, in.cancellations, selfAddress)
	out.OrderBook = book
	out.OrderBookSeries = orders.OrderBookSeries(book)
	out.TopBid = orders.TopBid(book, false)
	out.TopAsk = orders.TopAsk(book, false)
	out.PriceTimeSeries = trades.PriceTimeSeries(outcomeID, in.tradeHistory)

	return out
}

// lastPriceDisplay computes the price gauge. Scalar markets show the raw
// last price, or the midpoint of the price range at zero volume; other
// markets show the implied percentage, or an equal share at zero volume.
func (a *Assembler) lastPriceDisplay(m *models.Market, out *models.Outcome, data models.OutcomeData) format.Number {
	if m.Kind.IsScalar() {
		opts := format.Options{
			Decimals:        a.cfg.ScalarDisplayDecimals,
			DecimalsRounded: a.cfg.ScalarDisplayRounded,
			ZeroStyled:      true,
		}
		value := out.LastPrice.Value
		if data.Volume.IsZero() && m.Scalar != nil {
			value = m.Scalar.Midpoint()
		}
		display := format.FormatNumber(value, opts)
		// ZeroStyled renders a zero as the placeholder glyph; a traded
		// price of exactly zero must still read "0".
		if display.Value.IsZero() {
			display.Formatted = "0"
			display.Full = "0"
		}
		return display
	}

	if data.Volume.GreaterThan(decimal.Zero) {
		return format.Percent(out.LastPrice.Value.Mul(hundred))
	}

	n := m.NumOutcomes
	if n <= 0 {
		n = 1
	}
	return format.Percent(hundred.Div(decimal.NewFromInt(int64(n))))
}
