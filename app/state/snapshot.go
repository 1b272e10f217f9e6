// Package state defines the versioned application-state snapshot and the
// narrow sub-selectors the derivation layer reads it through.
//
// The snapshot is passed explicitly into every selector call; there is no
// package-level store. Every per-market slice maps to a pointer type so a
// sub-selector's output is identity-comparable: an unchanged slice yields
// the same pointer, and the memoized market selector keys off exactly that.
// Writers must never mutate a slice in place; they replace the pointer (and
// usually the snapshot) instead.
package state

import (
	"github.com/google/uuid"

	"github.com/joefazee/marketview/models"
)

// Snapshot is one immutable revision of the application state.
type Snapshot struct {
	// Version identifies the state revision this snapshot represents.
	Version uuid.UUID `json:"version"`

	Markets          map[string]*models.MarketData      `json:"markets"`
	Outcomes         map[string]*models.MarketOutcomes  `json:"outcomes"`
	OrderBooks       map[string]*models.MarketOrderBook `json:"order_books"`
	TradeHistory     map[string]*models.TradeHistory    `json:"trade_history"`
	AccountPositions map[string]*models.AccountPosition `json:"account_positions"`
	AccountTrades    map[string]*models.TradeHistory    `json:"account_trades"`
	ShareBalances    map[string]*models.ShareBalances   `json:"share_balances"`
	PendingOrders    map[string]*models.PendingOrders   `json:"pending_orders"`

	Cancellations *models.OrderCancellations `json:"cancellations,omitempty"`
	Account       *models.LoginAccount       `json:"account,omitempty"`
}

// NewSnapshot returns an empty snapshot with a fresh version.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Version:          uuid.New(),
		Markets:          make(map[string]*models.MarketData),
		Outcomes:         make(map[string]*models.MarketOutcomes),
		OrderBooks:       make(map[string]*models.MarketOrderBook),
		TradeHistory:     make(map[string]*models.TradeHistory),
		AccountPositions: make(map[string]*models.AccountPosition),
		AccountTrades:    make(map[string]*models.TradeHistory),
		ShareBalances:    make(map[string]*models.ShareBalances),
		PendingOrders:    make(map[string]*models.PendingOrders),
	}
}

// Next returns a shallow copy of the snapshot with a fresh version. Writers
// copy, swap the slices they changed, and publish the copy; untouched slices
// keep their pointers, which is what preserves downstream memoization.
func (s *Snapshot) Next() *Snapshot {
	next := *s
	next.Version = uuid.New()
	next.Markets = copyMap(s.Markets)
	next.Outcomes = copyMap(s.Outcomes)
	next.OrderBooks = copyMap(s.OrderBooks)
	next.TradeHistory = copyMap(s.TradeHistory)
	next.AccountPositions = copyMap(s.AccountPositions)
	next.AccountTrades = copyMap(s.AccountTrades)
	next.ShareBalances = copyMap(s.ShareBalances)
	next.PendingOrders = copyMap(s.PendingOrders)
	return &next
}

func copyMap[V any](src map[string]V) map[string]V {
	dst := make(map[string]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// MarketData returns the raw metadata slice for one market, or nil.
func MarketData(s *Snapshot, marketID string) *models.MarketData {
	if s == nil {
		return nil
	}
	return s.Markets[marketID]
}

// MarketOutcomes returns the raw outcome set for one market, or nil.
func MarketOutcomes(s *Snapshot, marketID string) *models.MarketOutcomes {
	if s == nil {
		return nil
	}
	return s.Outcomes[marketID]
}

// OrderBook returns the raw order book for one market, or nil.
func OrderBook(s *Snapshot, marketID string) *models.MarketOrderBook {
	if s == nil {
		return nil
	}
	return s.OrderBooks[marketID]
}

// MarketTradeHistory returns the trade history for one market, or nil.
func MarketTradeHistory(s *Snapshot, marketID string) *models.TradeHistory {
	if s == nil {
		return nil
	}
	return s.TradeHistory[marketID]
}

// AccountPositions returns the viewing account's positions for one market,
// or nil.
func AccountPositions(s *Snapshot, marketID string) *models.AccountPosition {
	if s == nil {
		return nil
	}
	return s.AccountPositions[marketID]
}

// AccountTrades returns the viewing account's trades for one market, or nil.
func AccountTrades(s *Snapshot, marketID string) *models.TradeHistory {
	if s == nil {
		return nil
	}
	return s.AccountTrades[marketID]
}

// ShareBalances returns the account's per-outcome share balances for one
// market, or nil.
func ShareBalances(s *Snapshot, marketID string) *models.ShareBalances {
	if s == nil {
		return nil
	}
	return s.ShareBalances[marketID]
}

// PendingOrders returns the locally submitted orders for one market, or nil.
func PendingOrders(s *Snapshot, marketID string) *models.PendingOrders {
	if s == nil {
		return nil
	}
	return s.PendingOrders[marketID]
}

// Cancellations returns the global in-flight order cancellations, or nil.
func Cancellations(s *Snapshot) *models.OrderCancellations {
	if s == nil {
		return nil
	}
	return s.Cancellations
}

// Account returns the viewing account, or nil when logged out.
func Account(s *Snapshot) *models.LoginAccount {
	if s == nil {
		return nil
	}
	return s.Account
}
