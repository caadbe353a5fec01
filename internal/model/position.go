package model

import "github.com/shopspring/decimal"

// Position is the derived per-symbol holding for one user.
// Quantity is net open shares (total bought minus total sold) and
// AverageCost is the weighted-average purchase price of those shares.
// Positions are recomputed on demand from the transaction ledger and
// never persisted.
type Position struct {
	Symbol      string          `json:"symbol"`
	Quantity    int64           `json:"quantity"`
	AverageCost decimal.Decimal `json:"averageCost"`
}

// CostBasis returns the total cost of the open shares.
func (p Position) CostBasis() decimal.Decimal {
	return p.AverageCost.Mul(decimal.NewFromInt(p.Quantity))
}
