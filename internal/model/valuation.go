package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SymbolValuation is the per-symbol slice of a valuation snapshot.
// All monetary values are rounded to two decimal places.
type SymbolValuation struct {
	Symbol             string          `json:"symbol"`
	Quantity           int64           `json:"quantity"`
	AverageCost        decimal.Decimal `json:"averageCost"`
	CurrentPrice       decimal.Decimal `json:"currentPrice"`
	MarketValue        decimal.Decimal `json:"marketValue"`
	UnrealizedGainLoss decimal.Decimal `json:"unrealizedGainLoss"`
	DayChange          decimal.Decimal `json:"dayChange"`
	AllocationPercent  decimal.Decimal `json:"allocationPercent"`
	PriceIsEstimate    bool            `json:"priceIsEstimate"` // true when average cost stood in for a missing quote
}

// ValuationSnapshot is the valuation engine's output for one user:
// every open position valued at current prices plus portfolio totals.
type ValuationSnapshot struct {
	UserID                  string            `json:"userId"`
	Positions               []SymbolValuation `json:"positions"`
	TotalMarketValue        decimal.Decimal   `json:"totalMarketValue"`
	TotalCostBasis          decimal.Decimal   `json:"totalCostBasis"`
	TotalUnrealizedGainLoss decimal.Decimal   `json:"totalUnrealizedGainLoss"`
	TotalRealizedGainLoss   decimal.Decimal   `json:"totalRealizedGainLoss"`
	TotalDayChange          decimal.Decimal   `json:"totalDayChange"`
	GeneratedAt             time.Time         `json:"generatedAt"`
}
