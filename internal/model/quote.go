package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote represents the latest market data for a symbol.
// CurrentPrice is the most recent traded price; PreviousClose is the
// close of the prior trading day, used for day-change calculations.
type Quote struct {
	Symbol        string          `json:"symbol"`
	CurrentPrice  decimal.Decimal `json:"currentPrice"`
	PreviousClose decimal.Decimal `json:"previousClose"`
	RetrievedAt   time.Time       `json:"retrievedAt"`
}

// Valid reports whether the quote is usable for valuation.
// Non-positive prices are rejected and treated as missing.
func (q Quote) Valid() bool {
	return q.CurrentPrice.IsPositive()
}
