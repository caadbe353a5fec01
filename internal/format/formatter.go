// Package format renders engine output for display. All engine math is
// decimal; this package is the only place amounts become currency
// strings, so rounding artifacts cannot leak back into calculations.
package format

import (
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/jdevries/stock-tracker-backend/internal/model"
)

// HoldingRow is one position rendered for display.
type HoldingRow struct {
	Symbol             string  `json:"symbol"`
	Quantity           int64   `json:"quantity"`
	AverageCost        string  `json:"averageCost"`
	CurrentPrice       string  `json:"currentPrice"`
	MarketValue        string  `json:"marketValue"`
	UnrealizedGainLoss string  `json:"unrealizedGainLoss"`
	DayChange          string  `json:"dayChange"`
	AllocationPercent  float64 `json:"allocationPercent"`
	PriceIsEstimate    bool    `json:"priceIsEstimate"`
}

// AllocationSlice is one entry of the portfolio allocation breakdown,
// suitable for driving a pie chart.
type AllocationSlice struct {
	Symbol  string  `json:"symbol"`
	Percent float64 `json:"percent"`
	Value   string  `json:"value"`
}

// PortfolioView is a valuation snapshot rendered for display.
type PortfolioView struct {
	UserID                  string            `json:"userId"`
	Holdings                []HoldingRow      `json:"holdings"`
	Allocation              []AllocationSlice `json:"allocation"`
	TotalMarketValue        string            `json:"totalMarketValue"`
	TotalCostBasis          string            `json:"totalCostBasis"`
	TotalUnrealizedGainLoss string            `json:"totalUnrealizedGainLoss"`
	TotalRealizedGainLoss   string            `json:"totalRealizedGainLoss"`
	TotalDayChange          string            `json:"totalDayChange"`
	GeneratedAt             time.Time         `json:"generatedAt"`
}

// USD formats a decimal amount as a US dollar string, e.g. "$1,234.50".
func USD(d decimal.Decimal) string {
	cents := d.Mul(decimal.NewFromInt(100)).Round(0)
	return money.New(cents.IntPart(), money.USD).Display()
}

// NewPortfolioView renders a valuation snapshot into display form.
func NewPortfolioView(snapshot model.ValuationSnapshot) PortfolioView {
	view := PortfolioView{
		UserID:                  snapshot.UserID,
		Holdings:                make([]HoldingRow, 0, len(snapshot.Positions)),
		Allocation:              make([]AllocationSlice, 0, len(snapshot.Positions)),
		TotalMarketValue:        USD(snapshot.TotalMarketValue),
		TotalCostBasis:          USD(snapshot.TotalCostBasis),
		TotalUnrealizedGainLoss: USD(snapshot.TotalUnrealizedGainLoss),
		TotalRealizedGainLoss:   USD(snapshot.TotalRealizedGainLoss),
		TotalDayChange:          USD(snapshot.TotalDayChange),
		GeneratedAt:             snapshot.GeneratedAt,
	}

	for _, p := range snapshot.Positions {
		view.Holdings = append(view.Holdings, HoldingRow{
			Symbol:             p.Symbol,
			Quantity:           p.Quantity,
			AverageCost:        USD(p.AverageCost),
			CurrentPrice:       USD(p.CurrentPrice),
			MarketValue:        USD(p.MarketValue),
			UnrealizedGainLoss: USD(p.UnrealizedGainLoss),
			DayChange:          USD(p.DayChange),
			AllocationPercent:  p.AllocationPercent.InexactFloat64(),
			PriceIsEstimate:    p.PriceIsEstimate,
		})
		view.Allocation = append(view.Allocation, AllocationSlice{
			Symbol:  p.Symbol,
			Percent: p.AllocationPercent.InexactFloat64(),
			Value:   USD(p.MarketValue),
		})
	}

	return view
}
