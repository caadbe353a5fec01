package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jdevries/stock-tracker-backend/internal/model"
)

// Valuate prices a set of positions with the supplied quotes and
// assembles the portfolio-level totals.
//
// A position whose quote is missing or unusable is valued at its
// average cost instead: its market value stays meaningful, its
// unrealized gain/loss is zero, and a QUOTE_UNAVAILABLE warning is
// recorded. Valuation therefore degrades per symbol, never fails.
//
// All figures are accumulated at full precision and rounded to two
// decimal places only on the returned snapshot.
func Valuate(positions map[string]model.Position, quotes map[string]model.Quote, realizedTotal decimal.Decimal) (model.ValuationSnapshot, []model.Warning) {
	symbols := make([]string, 0, len(positions))
	for symbol := range positions {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	var warnings []model.Warning
	valuations := make([]model.SymbolValuation, 0, len(positions))
	marketValues := make([]decimal.Decimal, 0, len(positions))
	totalMarketValue := decimal.Zero
	totalCostBasis := decimal.Zero
	totalUnrealized := decimal.Zero
	totalDayChange := decimal.Zero

	for _, symbol := range symbols {
		position := positions[symbol]
		quantity := decimal.NewFromInt(position.Quantity)
		costBasis := position.CostBasis()

		quote, ok := quotes[symbol]
		usable := ok && quote.Valid()
		if !usable {
			warnings = append(warnings, model.Warning{
				Code:    model.WarnQuoteUnavailable,
				Symbol:  symbol,
				Message: fmt.Sprintf("no usable quote for %s, valuing at average cost", symbol),
			})
		}

		currentPrice := position.AverageCost
		if usable {
			currentPrice = quote.CurrentPrice
		}
		marketValue := quantity.Mul(currentPrice)
		unrealized := decimal.Zero
		dayChange := decimal.Zero
		if usable {
			unrealized = marketValue.Sub(costBasis)
			if quote.PreviousClose.IsPositive() {
				dayChange = quantity.Mul(quote.CurrentPrice.Sub(quote.PreviousClose))
			}
		}

		marketValues = append(marketValues, marketValue)
		totalMarketValue = totalMarketValue.Add(marketValue)
		totalCostBasis = totalCostBasis.Add(costBasis)
		totalUnrealized = totalUnrealized.Add(unrealized)
		totalDayChange = totalDayChange.Add(dayChange)

		valuations = append(valuations, model.SymbolValuation{
			Symbol:             symbol,
			Quantity:           position.Quantity,
			AverageCost:        position.AverageCost.Round(4),
			CurrentPrice:       currentPrice.Round(4),
			MarketValue:        marketValue.Round(2),
			UnrealizedGainLoss: unrealized.Round(2),
			DayChange:          dayChange.Round(2),
			PriceIsEstimate:    !usable,
		})
	}

	// Allocation needs the portfolio total, so it is a second pass.
	hundred := decimal.NewFromInt(100)
	for i := range valuations {
		if totalMarketValue.IsZero() {
			valuations[i].AllocationPercent = decimal.Zero
			continue
		}
		valuations[i].AllocationPercent = marketValues[i].Div(totalMarketValue).Mul(hundred).Round(2)
	}

	snapshot := model.ValuationSnapshot{
		Positions:               valuations,
		TotalMarketValue:        totalMarketValue.Round(2),
		TotalCostBasis:          totalCostBasis.Round(2),
		TotalUnrealizedGainLoss: totalUnrealized.Round(2),
		TotalRealizedGainLoss:   realizedTotal.Round(2),
		TotalDayChange:          totalDayChange.Round(2),
		GeneratedAt:             time.Now().UTC(),
	}
	return snapshot, warnings
}
