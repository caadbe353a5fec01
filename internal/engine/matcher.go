package engine

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jdevries/stock-tracker-backend/internal/apperrors"
	"github.com/jdevries/stock-tracker-backend/internal/model"
)

// MatchPolicy selects which historical buy lot a sell consumes first.
type MatchPolicy string

const (
	// LIFO matches each sell against the nearest preceding buy first,
	// then progressively older ones. This mirrors the original tracker's
	// behavior and is the default.
	LIFO MatchPolicy = "LIFO"

	// FIFO matches each sell against the oldest open buy lot first,
	// the conventional tax-lot order.
	FIFO MatchPolicy = "FIFO"
)

// ParsePolicy converts a configuration string into a MatchPolicy.
func ParsePolicy(s string) (MatchPolicy, error) {
	switch MatchPolicy(s) {
	case LIFO, "":
		return LIFO, nil
	case FIFO:
		return FIFO, nil
	default:
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidMatchPolicy, s)
	}
}

// Match computes the realized gain/loss for every sell in a user's
// ledger by attributing its shares to prior buy lots of the same symbol.
//
// The input may be in any order; matching is deterministic for a fixed
// list (equal timestamps are broken by original ordering). A buy lot's
// shares are never attributed to more than its original quantity across
// all sells. Malformed entries are reported through the returned error
// and excluded; the remaining ledger is still processed.
//
// Results are ordered by symbol, then chronologically per symbol.
func Match(transactions []model.Transaction, policy MatchPolicy) ([]model.MatchResult, []model.Warning, error) {
	valid, errs := splitValid(transactions)
	results, warnings := matchValid(valid, policy)
	return results, warnings, errors.Join(errs...)
}

func matchValid(valid []model.Transaction, policy MatchPolicy) ([]model.MatchResult, []model.Warning) {
	bySymbol := make(map[string][]model.Transaction)
	var symbols []string
	for _, t := range valid {
		key := normalizeSymbol(t.Symbol)
		if _, seen := bySymbol[key]; !seen {
			symbols = append(symbols, key)
		}
		bySymbol[key] = append(bySymbol[key], t)
	}
	sort.Strings(symbols)

	var results []model.MatchResult
	var warnings []model.Warning
	for _, symbol := range symbols {
		rs, ws := matchSymbol(symbol, bySymbol[symbol], policy)
		results = append(results, rs...)
		warnings = append(warnings, ws...)
	}
	return results, warnings
}

// matchSymbol runs the lot-matching scan for a single symbol.
//
// Entries are ordered most-recent-first. For each sell, candidate buys
// are the entries that appear later in that ordering (i.e. older
// trades). LIFO consumes them in that order; FIFO consumes them from
// the oldest end. The consumed ledger guarantees a buy lot is never
// over-attributed.
func matchSymbol(symbol string, entries []model.Transaction, policy MatchPolicy) ([]model.MatchResult, []model.Warning) {
	// Most recent first; equal timestamps keep their original ordering.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})

	consumed := make(map[string]int64)
	var results []model.MatchResult
	var warnings []model.Warning

	// Sells are processed newest-first under LIFO (as the original
	// tracker does) and oldest-first under FIFO, so that earlier sells
	// claim the older lots before later sells reach them.
	sellIdx := make([]int, 0, len(entries))
	for i, e := range entries {
		if e.Type == model.TransactionSell {
			sellIdx = append(sellIdx, i)
		}
	}
	if policy == FIFO {
		for l, r := 0, len(sellIdx)-1; l < r; l, r = l+1, r-1 {
			sellIdx[l], sellIdx[r] = sellIdx[r], sellIdx[l]
		}
	}

	for _, i := range sellIdx {
		sell := entries[i]
		remaining := sell.Quantity
		gain := decimal.Zero
		var fragments []model.LotFragment

		for _, j := range buyScanOrder(i, len(entries), policy) {
			if remaining == 0 {
				break
			}
			buy := entries[j]
			if buy.Type != model.TransactionBuy {
				continue
			}
			available := buy.Quantity - consumed[buy.ID]
			if available <= 0 {
				continue
			}
			matched := min(remaining, available)
			fragmentGain := sell.Price.Sub(buy.Price).Mul(decimal.NewFromInt(matched))
			gain = gain.Add(fragmentGain)
			consumed[buy.ID] += matched
			remaining -= matched
			fragments = append(fragments, model.LotFragment{
				BuyID:    buy.ID,
				Quantity: matched,
				GainLoss: fragmentGain.Round(2),
			})
		}

		result := model.MatchResult{
			SellID:            sell.ID,
			Symbol:            symbol,
			QuantitySold:      sell.Quantity,
			RealizedGainLoss:  gain.Round(2),
			FullyMatched:      remaining == 0,
			UnmatchedQuantity: remaining,
			Fragments:         fragments,
		}
		results = append(results, result)

		if remaining > 0 {
			warnings = append(warnings, model.Warning{
				Code:          model.WarnUnmatchedSell,
				Symbol:        symbol,
				TransactionID: sell.ID,
				Message:       fmt.Sprintf("sell of %d %s could not be matched for %d shares", sell.Quantity, symbol, remaining),
			})
		}
	}

	// Chronological output regardless of scan direction.
	sort.SliceStable(results, func(a, b int) bool {
		return resultOrder(entries, results[a].SellID) < resultOrder(entries, results[b].SellID)
	})
	return results, warnings
}

// buyScanOrder yields candidate indices for the sell at position i.
// Entries are sorted most-recent-first, so positions after i are older
// trades. LIFO walks them nearest-first; FIFO walks from the oldest end.
func buyScanOrder(i, n int, policy MatchPolicy) []int {
	order := make([]int, 0, n-i-1)
	if policy == FIFO {
		for j := n - 1; j > i; j-- {
			order = append(order, j)
		}
		return order
	}
	for j := i + 1; j < n; j++ {
		order = append(order, j)
	}
	return order
}

func resultOrder(entries []model.Transaction, sellID string) int {
	// Entries are most-recent-first, so a higher position means an
	// earlier trade.
	for i, e := range entries {
		if e.ID == sellID {
			return len(entries) - i
		}
	}
	return 0
}
