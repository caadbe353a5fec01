// Package engine implements the lot-matching and valuation core of the
// tracker. Every operation is a pure function over a snapshot of one
// user's transactions: the engine holds no shared state, never mutates
// its input, and is safe to call concurrently for any number of users.
package engine

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/jdevries/stock-tracker-backend/internal/model"
)

// Engine binds the configured lot-matching policy to the pure
// computation functions. It is cheap to share and safe for concurrent
// use.
type Engine struct {
	policy MatchPolicy
}

// New creates an Engine with the given matching policy.
func New(policy MatchPolicy) *Engine {
	return &Engine{policy: policy}
}

// Policy returns the configured lot-matching policy.
func (e *Engine) Policy() MatchPolicy {
	return e.policy
}

// Match runs the lot matcher over a ledger using the engine's policy.
func (e *Engine) Match(transactions []model.Transaction) ([]model.MatchResult, []model.Warning, error) {
	return Match(transactions, e.policy)
}

// Compute is the single entry point for the surrounding system: given
// one user's full ledger and a quote per held symbol, it returns the
// current valuation snapshot, the per-sale realized gain/loss results,
// and every warning collected along the way.
//
// Malformed transactions are reported through the returned error and
// excluded; the remaining ledger still produces a complete result, so
// callers receive figures plus the list of entries that need repair.
func (e *Engine) Compute(userID string, transactions []model.Transaction, quotes map[string]model.Quote) (model.ValuationSnapshot, []model.MatchResult, []model.Warning, error) {
	valid, errs := splitValid(transactions)

	results, matchWarnings := matchValid(valid, e.policy)
	realizedTotal := decimal.Zero
	for _, r := range results {
		realizedTotal = realizedTotal.Add(r.RealizedGainLoss)
	}

	positions, holdingWarnings := aggregateValid(valid, false)
	snapshot, quoteWarnings := Valuate(positions, quotes, realizedTotal)
	snapshot.UserID = userID

	warnings := make([]model.Warning, 0, len(matchWarnings)+len(holdingWarnings)+len(quoteWarnings))
	warnings = append(warnings, matchWarnings...)
	warnings = append(warnings, holdingWarnings...)
	warnings = append(warnings, quoteWarnings...)

	return snapshot, results, warnings, errors.Join(errs...)
}
