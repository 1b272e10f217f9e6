package markets

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joefazee/marketview/models"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func newTestAssembler(t *testing.T) *Assembler {
	t.Helper()
	asm, err := NewAssembler(nil, nil)
	require.NoError(t, err)
	return asm
}

func yesNoInputs() inputs {
	return inputs{
		marketData: &models.MarketData{
			ID:                   "0xmkt",
			Description:          "Will it rain tomorrow?",
			MarketType:           models.KindYesNo,
			NumOutcomes:          2,
			EndTime:              1546300800,
			CreationTime:         1514764800,
			ReportingState:       models.ReportingStatePreReporting,
			ReportingFeeRate:     dec("0.01"),
			MarketCreatorFeeRate: dec("0.02"),
			SettlementFee:        dec("0.03"),
			OpenInterest:         dec("500"),
			Volume:               dec("120.5"),
			Tags:                 []string{"weather", "", "rain"},
		},
		outcomes: &models.MarketOutcomes{ByID: map[string]models.OutcomeData{
			"0": {Name: "", Price: dec("0.45"), Volume: dec("60")},
			"1": {Name: "", Price: dec("0.55"), Volume: dec("60.5")},
		}},
	}
}

func TestAssembleMarket(t *testing.T) {
	asm := newTestAssembler(t)

	t.Run("missing market yields a not-ready market", func(t *testing.T) {
		m := asm.assembleMarket(inputs{})
		assert.False(t, m.Ready())
		assert.Empty(t, m.ID)
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		in := yesNoInputs()
		assert.Equal(t, asm.assembleMarket(in), asm.assembleMarket(in))
	})

	t.Run("metadata, status and dates", func(t *testing.T) {
		m := asm.assembleMarket(yesNoInputs())
		assert.True(t, m.Ready())
		assert.Equal(t, models.KindYesNo, m.Kind)
		assert.True(t, m.IsYesNo())
		assert.False(t, m.IsCategorical())
		assert.False(t, m.IsScalar())
		assert.Nil(t, m.Scalar)
		assert.Equal(t, models.MarketStatusOpen, m.Status)
		assert.Equal(t, "Jan 1, 2019 00:00 UTC", m.EndTime.Formatted)
		assert.Equal(t, "Jan 1, 2018 00:00 UTC", m.CreationTime.Formatted)
		assert.Equal(t, []string{"weather", "rain"}, m.Tags)
	})

	t.Run("html is stripped from the description", func(t *testing.T) {
		in := yesNoInputs()
		in.marketData.Description = "Will <b>it</b> rain<script>x()</script>?"
		m := asm.assembleMarket(in)
		assert.Equal(t, "Will it rain?", m.Description)
	})

	t.Run("fee rates scale to percentages", func(t *testing.T) {
		m := asm.assembleMarket(yesNoInputs())
		assert.Equal(t, "1.0000", m.ReportingFeePercent.Formatted)
		assert.Equal(t, "2.0000", m.CreatorFeePercent.Formatted)
		assert.Equal(t, "3.0000", m.SettlementFeePercent.Formatted)
		assert.Equal(t, "%", m.ReportingFeePercent.Denomination)
		assert.Equal(t, "500.0000", m.OpenInterest.Formatted)
		assert.Equal(t, "120.5000", m.Volume.Formatted)
	})

	t.Run("status collapses from the reporting state", func(t *testing.T) {
		in := yesNoInputs()
		in.marketData.ReportingState = models.ReportingStateOpenReporting
		assert.Equal(t, models.MarketStatusReporting, asm.assembleMarket(in).Status)

		in.marketData.ReportingState = models.ReportingStateFinalized
		assert.Equal(t, models.MarketStatusClosed, asm.assembleMarket(in).Status)
	})

	t.Run("outcomes sorted ascending by numeric id", func(t *testing.T) {
		in := yesNoInputs()
		in.outcomes = &models.MarketOutcomes{ByID: map[string]models.OutcomeData{
			"10": {Price: dec("0.1"), Volume: dec("1")},
			"2":  {Price: dec("0.2"), Volume: dec("1")},
			"0":  {Price: dec("0.3"), Volume: dec("1")},
		}}
		m := asm.assembleMarket(in)
		require.Len(t, m.Outcomes, 3)
		assert.Equal(t, "0", m.Outcomes[0].ID)
		assert.Equal(t, "2", m.Outcomes[1].ID)
		assert.Equal(t, "10", m.Outcomes[2].ID)
	})

	t.Run("yes/no outcome names are fixed", func(t *testing.T) {
		m := asm.assembleMarket(yesNoInputs())
		require.Len(t, m.Outcomes, 2)
		assert.Equal(t, "No", m.Outcomes[0].Name)
		assert.Equal(t, "Yes", m.Outcomes[1].Name)
	})

	t.Run("reportable outcomes end with the indeterminate entry", func(t *testing.T) {
		m := asm.assembleMarket(yesNoInputs())
		require.Len(t, m.ReportableOutcomes, 3)
		assert.Equal(t, models.ReportableOutcome{ID: "0", Name: "No"}, m.ReportableOutcomes[0])
		assert.Equal(t, models.ReportableOutcome{ID: "1", Name: "Yes"}, m.ReportableOutcomes[1])
		assert.Equal(t, models.ReportableOutcome{ID: "0.5", Name: "Indeterminate"}, m.ReportableOutcomes[2])
	})

	t.Run("recently traded is the epoch without fills", func(t *testing.T) {
		m := asm.assembleMarket(yesNoInputs())
		assert.Empty(t, m.FilledOrders)
		assert.Equal(t, int64(0), m.RecentlyTraded.Timestamp)
	})

	t.Run("recently traded follows the newest fill", func(t *testing.T) {
		in := yesNoInputs()
		in.account = &models.LoginAccount{Address: "0xme"}
		in.tradeHistory = &models.TradeHistory{Trades: []models.Trade{
			{TransactionHash: "0xt1", Outcome: "1", Price: dec("0.5"), Amount: dec("1"), Creator: "0xme", Timestamp: 100},
			{TransactionHash: "0xt2", Outcome: "1", Price: dec("0.6"), Amount: dec("1"), Filler: "0xme", Timestamp: 300},
		}}
		m := asm.assembleMarket(in)
		require.Len(t, m.FilledOrders, 2)
		assert.Equal(t, "0xt2", m.FilledOrders[0].ID)
		assert.Equal(t, int64(300), m.RecentlyTraded.Timestamp)
	})
}

func TestAssembleMarketLastPriceDisplay(t *testing.T) {
	asm := newTestAssembler(t)

	t.Run("traded outcome shows the implied percentage", func(t *testing.T) {
		m := asm.assembleMarket(yesNoInputs())
		require.Len(t, m.Outcomes, 2)
		yes := m.Outcomes[1]
		assert.Equal(t, "0.5500", yes.LastPrice.Formatted)
		assert.True(t, dec("55").Equal(yes.LastPriceDisplay.Value))
		assert.Equal(t, "55.00", yes.LastPriceDisplay.Formatted)
		assert.Equal(t, "%", yes.LastPriceDisplay.Denomination)
	})

	t.Run("untraded outcome shows the placeholder and an equal share", func(t *testing.T) {
		in := yesNoInputs()
		in.marketData.MarketType = models.KindCategorical
		in.marketData.NumOutcomes = 4
		in.outcomes = &models.MarketOutcomes{ByID: map[string]models.OutcomeData{
			"0": {Name: "Red", Price: decimal.Zero, Volume: decimal.Zero},
		}}
		m := asm.assembleMarket(in)
		require.Len(t, m.Outcomes, 1)
		assert.Equal(t, NoVolumePlaceholder, m.Outcomes[0].LastPrice.Formatted)
		assert.True(t, dec("25").Equal(m.Outcomes[0].LastPriceDisplay.Value))
	})

	t.Run("untraded scalar outcome shows the range midpoint", func(t *testing.T) {
		in := scalarInputs()
		in.outcomes = &models.MarketOutcomes{ByID: map[string]models.OutcomeData{
			"1": {Price: decimal.Zero, Volume: decimal.Zero},
		}}
		m := asm.assembleMarket(in)
		require.Len(t, m.Outcomes, 1)
		out := m.Outcomes[0]
		assert.True(t, dec("50").Equal(out.LastPriceDisplay.Value))
		assert.Equal(t, "50.00", out.LastPriceDisplay.Formatted)
		assert.Equal(t, "degrees", out.Name)
	})

	t.Run("scalar price of zero still reads zero", func(t *testing.T) {
		in := scalarInputs()
		in.marketData.MinPrice = decPtr("-10")
		in.marketData.MaxPrice = decPtr("10")
		in.outcomes = &models.MarketOutcomes{ByID: map[string]models.OutcomeData{
			"1": {Price: decimal.Zero, Volume: dec("5")},
		}}
		m := asm.assembleMarket(in)
		require.Len(t, m.Outcomes, 1)
		assert.Equal(t, "0", m.Outcomes[0].LastPriceDisplay.Formatted)
	})
}

func scalarInputs() inputs {
	in := yesNoInputs()
	in.marketData.MarketType = models.KindScalar
	in.marketData.ScalarDenomination = "degrees"
	in.marketData.MinPrice = decPtr("0")
	in.marketData.MaxPrice = decPtr("100")
	in.marketData.NumOutcomes = 2
	return in
}

func TestAssembleMarketScalarBounds(t *testing.T) {
	asm := newTestAssembler(t)

	m := asm.assembleMarket(scalarInputs())
	require.NotNil(t, m.Scalar)
	assert.True(t, m.IsScalar())
	assert.True(t, dec("0").Equal(m.Scalar.MinPrice))
	assert.True(t, dec("100").Equal(m.Scalar.MaxPrice))
	assert.Equal(t, "degrees", m.Scalar.Denomination)

	t.Run("scalar markets have only the indeterminate reportable entry", func(t *testing.T) {
		require.Len(t, m.ReportableOutcomes, 1)
		assert.Equal(t, "indeterminate", m.ReportableOutcomes[0].ID)
	})
}

func TestAssembleMarketPositions(t *testing.T) {
	asm := newTestAssembler(t)

	positioned := func() inputs {
		in := yesNoInputs()
		in.account = &models.LoginAccount{Address: "0xme"}
		in.accountTrades = &models.TradeHistory{}
		in.accountPositions = &models.AccountPosition{
			TradingPositions: map[string]models.TradingPosition{
				"1": {NetPosition: dec("10"), AveragePrice: dec("0.45"), Unrealized: dec("1"), Realized: dec("0.5"), Total: dec("1.5"), TotalPercent: dec("0.25")},
			},
			Aggregate: &models.AggregatePosition{
				UnrealizedRevenue:                 dec("4.5"),
				Total:                             dec("1.5"),
				TotalPercent:                      dec("0.25"),
				UnrealizedRevenue24hChangePercent: dec("0.1"),
			},
		}
		return in
	}

	t.Run("position rows pick up outcome names", func(t *testing.T) {
		m := asm.assembleMarket(positioned())
		require.Len(t, m.UserPositions, 1)
		assert.Equal(t, "1", m.UserPositions[0].OutcomeID)
		assert.Equal(t, "Yes", m.UserPositions[0].OutcomeName)
		assert.Equal(t, "10.00", m.UserPositions[0].Quantity.Formatted)
	})

	t.Run("zero rows drop when complete sets are held", func(t *testing.T) {
		in := positioned()
		in.accountPositions.TradingPositions["0"] = models.TradingPosition{}
		in.shareBalances = &models.ShareBalances{Balances: []decimal.Decimal{dec("3"), dec("5")}}
		m := asm.assembleMarket(in)
		require.Len(t, m.UserPositions, 1)
		assert.Equal(t, "1", m.UserPositions[0].OutcomeID)
	})

	t.Run("zero rows stay without complete sets", func(t *testing.T) {
		in := positioned()
		in.accountPositions.TradingPositions["0"] = models.TradingPosition{}
		m := asm.assembleMarket(in)
		assert.Len(t, m.UserPositions, 2)
	})

	t.Run("summary absent without trades or aggregate", func(t *testing.T) {
		m := asm.assembleMarket(yesNoInputs())
		assert.Nil(t, m.MyPositionsSummary)
	})

	t.Run("summary carries complete sets and aggregate returns", func(t *testing.T) {
		in := positioned()
		in.shareBalances = &models.ShareBalances{Balances: []decimal.Decimal{dec("3"), dec("5")}}
		m := asm.assembleMarket(in)
		require.NotNil(t, m.MyPositionsSummary)
		assert.Equal(t, "3.00", m.MyPositionsSummary.NumCompleteSets.Formatted)
		require.NotNil(t, m.MyPositionsSummary.CurrentValue)
		assert.Equal(t, "4.5000", m.MyPositionsSummary.CurrentValue.Formatted)
		require.NotNil(t, m.MyPositionsSummary.TotalPercent)
		assert.True(t, dec("25").Equal(m.MyPositionsSummary.TotalPercent.Value))
		require.NotNil(t, m.MyPositionsSummary.ValueChange)
		assert.True(t, dec("10").Equal(m.MyPositionsSummary.ValueChange.Value))
	})

	t.Run("monetary fields absent without position rows", func(t *testing.T) {
		in := yesNoInputs()
		in.account = &models.LoginAccount{Address: "0xme"}
		in.accountTrades = &models.TradeHistory{}
		m := asm.assembleMarket(in)
		require.NotNil(t, m.MyPositionsSummary)
		assert.Nil(t, m.MyPositionsSummary.CurrentValue)
		assert.Nil(t, m.MyPositionsSummary.TotalReturns)
	})
}

func TestAssembleMarketOpenOrders(t *testing.T) {
	asm := newTestAssembler(t)

	in := yesNoInputs()
	in.account = &models.LoginAccount{Address: "0xme"}
	in.orderBook = &models.MarketOrderBook{
		Buy: map[string]*models.Order{
			"o1": {ID: "o1", Outcome: "1", Owner: "0xme", Side: models.OrderSideBuy, Price: dec("0.40"), Amount: dec("10"), State: models.OrderStateOpen, Timestamp: 100},
		},
	}
	in.pendingOrders = &models.PendingOrders{Orders: []models.OpenOrder{
		{ID: "pending-1", MarketID: "0xmkt", OutcomeID: "1", Pending: true},
	}}

	m := asm.assembleMarket(in)
	require.Len(t, m.UserOpenOrders, 2)

	t.Run("pending orders come first", func(t *testing.T) {
		assert.Equal(t, "pending-1", m.UserOpenOrders[0].ID)
		assert.True(t, m.UserOpenOrders[0].Pending)
		assert.Equal(t, "o1", m.UserOpenOrders[1].ID)
	})

	t.Run("confirmed orders are labelled", func(t *testing.T) {
		assert.Equal(t, "Will it rain tomorrow?", m.UserOpenOrders[1].MarketDescription)
		assert.Equal(t, "Yes", m.UserOpenOrders[1].OutcomeName)
	})
}

func TestAssembleMarketConsensus(t *testing.T) {
	asm := newTestAssembler(t)

	t.Run("unresolved market has no consensus", func(t *testing.T) {
		assert.Nil(t, asm.assembleMarket(yesNoInputs()).Consensus)
	})

	t.Run("resolved yes/no market names the winner", func(t *testing.T) {
		in := yesNoInputs()
		in.marketData.ReportingState = models.ReportingStateFinalized
		in.marketData.Consensus = &models.ConsensusData{
			Payout:            []decimal.Decimal{dec("0"), dec("10000")},
			ProportionCorrect: decPtr("0.9"),
		}
		m := asm.assembleMarket(in)
		require.NotNil(t, m.Consensus)
		assert.Equal(t, "1", m.Consensus.WinningOutcome)
		assert.Equal(t, "Yes", m.Consensus.OutcomeName)
		require.NotNil(t, m.Consensus.PercentCorrect)
		assert.Equal(t, "90.00", m.Consensus.PercentCorrect.Formatted)
	})

	t.Run("invalid resolution maps to indeterminate", func(t *testing.T) {
		in := yesNoInputs()
		in.marketData.Consensus = &models.ConsensusData{
			Payout:    []decimal.Decimal{dec("5000"), dec("5000")},
			IsInvalid: true,
		}
		m := asm.assembleMarket(in)
		require.NotNil(t, m.Consensus)
		assert.Equal(t, "0.5", m.Consensus.WinningOutcome)
		assert.Equal(t, "Indeterminate", m.Consensus.OutcomeName)
	})

	t.Run("payout is copied, not shared", func(t *testing.T) {
		raw := &models.ConsensusData{Payout: []decimal.Decimal{dec("0"), dec("10000")}}
		in := yesNoInputs()
		in.marketData.Consensus = raw
		m := asm.assembleMarket(in)
		require.NotNil(t, m.Consensus)
		m.Consensus.Payout[0] = dec("999")
		assert.True(t, dec("0").Equal(raw.Payout[0]))
	})
}
