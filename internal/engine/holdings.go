package engine

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jdevries/stock-tracker-backend/internal/model"
)

// Aggregate derives the current per-symbol positions from a user's
// ledger. Buys move the weighted-average cost; sells reduce quantity
// and leave the average cost of the remaining shares untouched.
//
// Symbols that net to zero or negative quantity are excluded from the
// result. A symbol that goes negative additionally raises a
// NEGATIVE_HOLDINGS warning, since selling more than was ever held
// indicates upstream data corruption.
func Aggregate(transactions []model.Transaction) (map[string]model.Position, []model.Warning, error) {
	valid, errs := splitValid(transactions)
	positions, warnings := aggregateValid(valid, false)
	return positions, warnings, errors.Join(errs...)
}

// AggregateAll is Aggregate without the open-position filter: symbols
// that net to zero (or negative, after the integrity warning) stay in
// the result, for callers that want a complete history.
func AggregateAll(transactions []model.Transaction) (map[string]model.Position, []model.Warning, error) {
	valid, errs := splitValid(transactions)
	positions, warnings := aggregateValid(valid, true)
	return positions, warnings, errors.Join(errs...)
}

func aggregateValid(valid []model.Transaction, keepClosed bool) (map[string]model.Position, []model.Warning) {
	bySymbol := make(map[string][]model.Transaction)
	for _, t := range valid {
		key := normalizeSymbol(t.Symbol)
		bySymbol[key] = append(bySymbol[key], t)
	}

	positions := make(map[string]model.Position)
	var warnings []model.Warning

	symbols := make([]string, 0, len(bySymbol))
	for symbol := range bySymbol {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	for _, symbol := range symbols {
		entries := bySymbol[symbol]
		// Chronological; equal timestamps keep their original ordering.
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Timestamp.Before(entries[j].Timestamp)
		})

		var quantity int64
		averageCost := decimal.Zero
		wentNegative := false

		for _, t := range entries {
			switch t.Type {
			case model.TransactionBuy:
				if quantity <= 0 {
					// A buy against a flat or negative position opens a
					// fresh basis; the weighted average only covers
					// shares actually held.
					averageCost = t.Price
					quantity += t.Quantity
					continue
				}
				incoming := decimal.NewFromInt(t.Quantity)
				held := decimal.NewFromInt(quantity)
				newQuantity := held.Add(incoming)
				averageCost = held.Mul(averageCost).Add(incoming.Mul(t.Price)).Div(newQuantity)
				quantity += t.Quantity
			case model.TransactionSell:
				// Selling does not alter the cost basis of the shares
				// that remain.
				quantity -= t.Quantity
				if quantity < 0 && !wentNegative {
					wentNegative = true
					warnings = append(warnings, model.Warning{
						Code:          model.WarnNegativeHoldings,
						Symbol:        symbol,
						TransactionID: t.ID,
						Message:       fmt.Sprintf("net holdings of %s went negative (%d shares)", symbol, quantity),
					})
				}
			}
		}

		if !keepClosed && quantity <= 0 {
			continue
		}
		positions[symbol] = model.Position{
			Symbol:      symbol,
			Quantity:    quantity,
			AverageCost: averageCost,
		}
	}

	return positions, warnings
}
