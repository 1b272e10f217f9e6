package markets

import (
	"github.com/joefazee/marketview/app/state"
	"github.com/joefazee/marketview/internal/logger"
	"github.com/joefazee/marketview/internal/memoize"
	"github.com/joefazee/marketview/models"
)

// Selector is the memoized entry point for assembled markets. One cache
// entry is kept per market id, most-recent-wins; the assembler re-runs only
// when one of its input slices changed identity for that market, never on
// unrelated state churn.
type Selector struct {
	asm  *Assembler
	memo *memoize.Store[string, inputs, *models.Market]
	log  logger.Logger
}

// NewSelector creates a selector around an assembler. A nil logger gets the
// null logger.
func NewSelector(asm *Assembler, log logger.Logger) *Selector {
	if log == nil {
		log = logger.NewNullLogger()
	}
	return &Selector{
		asm:  asm,
		memo: memoize.New[string, inputs, *models.Market](),
		log:  log,
	}
}

// AssembledMarket returns the current assembled market for marketID. This is
// the only read API UI containers may use; they must never reach into raw
// snapshot slices. Unknown or incomplete markets yield a zero-value Market
// ("not ready yet", not an error). The returned market is shared with the
// cache and must be treated as read-only.
func (s *Selector) AssembledMarket(snap *state.Snapshot, marketID string) *models.Market {
	md := state.MarketData(snap, marketID)
	if marketID == "" || md == nil || md.ID == "" {
		s.log.Debug("market not ready", map[string]interface{}{"market_id": marketID})
		return &models.Market{}
	}
	return s.market(snap, marketID)
}

// market gathers the per-market slices — a consistent view of one snapshot
// revision — and serves the assembled market from the memo when every slice
// pointer is unchanged.
func (s *Selector) market(snap *state.Snapshot, marketID string) *models.Market {
	in := inputs{
		marketData:       state.MarketData(snap, marketID),
		tradeHistory:     state.MarketTradeHistory(snap, marketID),
		outcomes:         state.MarketOutcomes(snap, marketID),
		accountPositions: state.AccountPositions(snap, marketID),
		accountTrades:    state.AccountTrades(snap, marketID),
		orderBook:        state.OrderBook(snap, marketID),
		cancellations:    state.Cancellations(snap),
		account:          state.Account(snap),
		shareBalances:    state.ShareBalances(snap, marketID),
		pendingOrders:    state.PendingOrders(snap, marketID),
	}

	if m, ok := s.memo.Get(marketID, in); ok {
		return m
	}

	m := s.asm.assembleMarket(in)
	s.memo.Put(marketID, in, m)
	s.log.Debug("market assembled", map[string]interface{}{
		"market_id":        marketID,
		"snapshot_version": snap.Version.String(),
	})
	return m
}

// Invalidate evicts the cached entry for a market, forcing reassembly on
// the next read.
func (s *Selector) Invalidate(marketID string) {
	s.memo.Delete(marketID)
}
