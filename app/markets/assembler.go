/*
Package markets assembles the fat, hierarchical market view objects the UI
binds to, out of the shallow, independent state slices in a snapshot.

The assembler is heavily memoized and performance sensitive: it may run on
every state update while a market is on screen. The discipline that keeps it
cheap is passing in the narrowest possible per-market slices — already looked
up by market id — so the memo key only changes when a slice relevant to this
market changes identity. See Selector.
*/
package markets

import (
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/joefazee/marketview/app/orders"
	"github.com/joefazee/marketview/app/positions"
	"github.com/joefazee/marketview/app/reports"
	"github.com/joefazee/marketview/internal/format"
	"github.com/joefazee/marketview/internal/sanitizer"
	"github.com/joefazee/marketview/models"
)

var hundred = decimal.NewFromInt(100)

// inputs carries the independently-sourced slices one market is assembled
// from. Every field is a pointer, so the struct is ==-comparable and serves
// directly as the memoization argument tuple: identity comparison, never
// deep comparison.
type inputs struct {
	marketData       *models.MarketData
	tradeHistory     *models.TradeHistory
	outcomes         *models.MarketOutcomes
	accountPositions *models.AccountPosition
	accountTrades    *models.TradeHistory
	orderBook        *models.MarketOrderBook
	cancellations    *models.OrderCancellations
	account          *models.LoginAccount
	shareBalances    *models.ShareBalances
	pendingOrders    *models.PendingOrders
}

// Assembler builds assembled market views. It is a pure derivation engine:
// no reads outside its inputs, no side effects, deterministic output.
type Assembler struct {
	cfg      *Config
	stripper sanitizer.HTMLStripperer
}

// NewAssembler creates an assembler. A nil config gets the defaults; a
// partial config is filled from them. A nil stripper gets the strict HTML
// stripper.
func NewAssembler(cfg *Config, stripper sanitizer.HTMLStripperer) (*Assembler, error) {
	if cfg == nil {
		cfg = GetDefaultConfig()
	} else if _, err := cfg.WithDefaults(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if stripper == nil {
		stripper = sanitizer.NewHTMLStripper()
	}
	return &Assembler{cfg: cfg, stripper: stripper}, nil
}

// assembleMarket combines one market's metadata with its outcome views, the
// viewing account's positions and orders, and the resolution record into one
// normalized, fully formatted market. A missing market record yields a
// zero-value Market, which callers treat as "not ready yet".
func (a *Assembler) assembleMarket(in inputs) *models.Market {
	md := in.marketData
	if md == nil || md.ID == "" {
		return &models.Market{}
	}

	m := &models.Market{
		ID:               md.ID,
		Description:      a.stripper.StripHTML(md.Description),
		Kind:             md.MarketType,
		NumOutcomes:      md.NumOutcomes,
		Tags:             compactTags(md.Tags),
		ResolutionSource: md.ResolutionSource,
		ReportingState:   md.ReportingState,
	}

	// The scalar price range and denomination travel together; non-scalar
	// markets carry neither.
	if m.Kind.IsScalar() {
		m.Scalar = &models.ScalarBounds{
			MinPrice:     derefDecimal(md.MinPrice),
			MaxPrice:     derefDecimal(md.MaxPrice),
			Denomination: md.ScalarDenomination,
		}
	}

	m.EndTime = format.FromUnix(md.EndTime)
	m.CreationTime = format.FromUnix(md.CreationTime)
	m.Status = statusFor(md.ReportingState)

	feeOpts := format.PercentOptions()
	feeOpts.Decimals = a.cfg.FeePercentDecimals
	feeOpts.DecimalsRounded = a.cfg.FeePercentDecimals
	m.ReportingFeePercent = format.FormatNumber(md.ReportingFeeRate.Mul(hundred), feeOpts)
	m.CreatorFeePercent = format.FormatNumber(md.MarketCreatorFeeRate.Mul(hundred), feeOpts)
	m.SettlementFeePercent = format.FormatNumber(md.SettlementFee.Mul(hundred), feeOpts)
	m.OpenInterest = format.Ether(md.OpenInterest)
	m.Volume = format.Ether(md.Volume)

	numCompleteSets := minBalance(in.shareBalances)

	nameFor := func(outcomeID string) string {
		return OutcomeName(m, outcomeID, outcomeData(in.outcomes, outcomeID))
	}

	m.UserPositions = a.userPositions(in, numCompleteSets, nameFor)
	m.UserOpenOrders = a.userOpenOrders(m, in, nameFor)

	outcomeIDs := sortedOutcomeIDs(in.outcomes)
	m.Outcomes = make([]*models.Outcome, 0, len(outcomeIDs))
	for _, id := range outcomeIDs {
		m.Outcomes = append(m.Outcomes, a.assembleOutcome(m, id, in.outcomes.ByID[id], in))
	}

	m.FilledOrders = orders.FilledOrders(in.tradeHistory, in.account, nameFor)
	if len(m.FilledOrders) > 0 {
		// The first entry is the most recent fill.
		m.RecentlyTraded = m.FilledOrders[0].Timestamp
	} else {
		m.RecentlyTraded = format.EpochDate()
	}

	m.UnclaimedCreatorFees = format.Ether(md.UnclaimedCreatorFees)
	m.CreatorFeesCollected = format.Ether(md.CreatorFeesCollected)

	m.ReportableOutcomes = append(
		reports.ReportableOutcomes(m.Kind, m.Outcomes),
		models.ReportableOutcome{
			ID:   reports.IndeterminateOutcomeID(m.Kind),
			Name: reports.IndeterminateOutcomeName,
		},
	)

	m.MyPositionsSummary = a.myPositionsSummary(m, in, numCompleteSets)
	m.Consensus = a.consensus(m, md.Consensus)

	return m
}

// userPositions builds the position rows, dropping fully-zeroed rows when
// the account holds complete sets: a zero balance that exists only through
// complete-set bookkeeping is not a position.
func (a *Assembler) userPositions(in inputs, numCompleteSets decimal.Decimal, nameFor func(string) string) []models.PositionSummary {
	if in.accountPositions == nil || len(in.accountPositions.TradingPositions) == 0 {
		return nil
	}

	ids := make([]string, 0, len(in.accountPositions.TradingPositions))
	for id := range in.accountPositions.TradingPositions {
		ids = append(ids, id)
	}
	sortIDs(ids)

	out := make([]models.PositionSummary, 0, len(ids))
	for _, id := range ids {
		pos := in.accountPositions.TradingPositions[id]
		if pos.OutcomeID == "" {
			pos.OutcomeID = id
		}
		summary := positions.Summarize(pos, nameFor(id))
		if numCompleteSets.GreaterThan(decimal.Zero) &&
			summary.Quantity.Value.IsZero() &&
			summary.UnrealizedNet.Value.IsZero() &&
			summary.RealizedNet.Value.IsZero() {
			continue
		}
		out = append(out, summary)
	}
	return out
}

// userOpenOrders gathers the account's confirmed open orders across all
// outcomes and prepends locally pending, not yet confirmed ones.
func (a *Assembler) userOpenOrders(m *models.Market, in inputs, nameFor func(string) string) []models.OpenOrder {
	var open []models.OpenOrder
	for _, outcomeID := range sortedOutcomeIDs(in.outcomes) {
		open = append(open, orders.UserOpenOrders(
			m.ID, outcomeID, in.orderBook, in.cancellations, in.account,
			m.Description, nameFor(outcomeID),
		)...)
	}
	if in.pendingOrders != nil && len(in.pendingOrders.Orders) > 0 {
		open = append(append([]models.OpenOrder{}, in.pendingOrders.Orders...), open...)
	}
	return open
}

// myPositionsSummary aggregates the account's stake in the market. Present
// when the account has trade history or an aggregate position record; the
// monetary fields additionally require at least one assembled position.
func (a *Assembler) myPositionsSummary(m *models.Market, in inputs, numCompleteSets decimal.Decimal) *models.PositionsSummary {
	hasAggregate := in.accountPositions != nil && in.accountPositions.Aggregate != nil
	if in.accountTrades == nil && !hasAggregate {
		return nil
	}

	summary := &models.PositionsSummary{
		NumCompleteSets: format.Shares(numCompleteSets),
	}
	if len(m.UserPositions) == 0 {
		return summary
	}

	var agg models.AggregatePosition
	if hasAggregate {
		agg = *in.accountPositions.Aggregate
	}

	pctOpts := format.PercentOptions()
	pctOpts.DecimalsRounded = a.cfg.SummaryPercentRounded

	currentValue := format.Ether(agg.UnrealizedRevenue)
	totalReturns := format.Ether(agg.Total)
	totalPercent := format.FormatNumber(agg.TotalPercent.Mul(hundred), pctOpts)
	valueChange := format.FormatNumber(agg.UnrealizedRevenue24hChangePercent.Mul(hundred), pctOpts)

	summary.CurrentValue = &currentValue
	summary.TotalReturns = &totalReturns
	summary.TotalPercent = &totalPercent
	summary.ValueChange = &valueChange
	return summary
}

// consensus copies the raw resolution record and resolves the winning
// outcome from the payout numerators. Returns nil when the market has not
// been resolved.
func (a *Assembler) consensus(m *models.Market, raw *models.ConsensusData) *models.Consensus {
	if raw == nil {
		return nil
	}

	c := &models.Consensus{
		Payout:    append([]decimal.Decimal(nil), raw.Payout...),
		IsInvalid: raw.IsInvalid,
	}
	if len(m.ReportableOutcomes) > 0 {
		c.WinningOutcome = reports.WinningOutcome(m.Kind, m.Scalar, c.Payout, c.IsInvalid)
		for _, ro := range m.ReportableOutcomes {
			if ro.ID == c.WinningOutcome {
				c.OutcomeName = ro.Name
				break
			}
		}
	}
	if raw.ProportionCorrect != nil {
		percentCorrect := format.Percent(raw.ProportionCorrect.Mul(hundred))
		c.PercentCorrect = &percentCorrect
	}
	return c
}

func statusFor(rs models.ReportingState) models.MarketStatus {
	switch rs {
	case models.ReportingStatePreReporting:
		return models.MarketStatusOpen
	case models.ReportingStateAwaitingFinalization, models.ReportingStateFinalized:
		return models.MarketStatusClosed
	default:
		return models.MarketStatusReporting
	}
}

// minBalance returns the smallest per-outcome share balance: the number of
// complete sets the account holds. Zero when the account holds no shares.
func minBalance(balances *models.ShareBalances) decimal.Decimal {
	if balances == nil || len(balances.Balances) == 0 {
		return decimal.Zero
	}
	minimum := balances.Balances[0]
	for _, b := range balances.Balances[1:] {
		if b.LessThan(minimum) {
			minimum = b
		}
	}
	return minimum
}

func outcomeData(set *models.MarketOutcomes, outcomeID string) *models.OutcomeData {
	if set == nil {
		return nil
	}
	if data, ok := set.ByID[outcomeID]; ok {
		return &data
	}
	return nil
}

// sortedOutcomeIDs returns the outcome ids in ascending numeric order;
// non-numeric ids sort after numeric ones, lexically.
func sortedOutcomeIDs(set *models.MarketOutcomes) []string {
	if set == nil {
		return nil
	}
	ids := make([]string, 0, len(set.ByID))
	for id := range set.ByID {
		ids = append(ids, id)
	}
	sortIDs(ids)
	return ids
}

func sortIDs(ids []string) {
	sort.Slice(ids, func(i, j int) bool {
		a, aErr := strconv.Atoi(ids[i])
		b, bErr := strconv.Atoi(ids[j])
		switch {
		case aErr == nil && bErr == nil:
			return a < b
		case aErr == nil:
			return true
		case bErr == nil:
			return false
		default:
			return ids[i] < ids[j]
		}
	})
}

func compactTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

func derefDecimal(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
