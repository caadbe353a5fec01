package model

import "github.com/shopspring/decimal"

// LotFragment records how many shares of a sell were attributed to a
// specific buy lot, and the gain/loss locked in by that fragment.
type LotFragment struct {
	BuyID    string          `json:"buyId"`
	Quantity int64           `json:"quantity"`
	GainLoss decimal.Decimal `json:"gainLoss"`
}

// MatchResult is the lot matcher's output for a single sell transaction.
// RealizedGainLoss is the sum over matched buy fragments of
// fragmentQuantity * (sellPrice - buyPrice), rounded to two decimal
// places for reporting.
//
// FullyMatched is false when the ledger did not contain enough prior buy
// quantity to cover the sell. That is a data-integrity signal, not an
// error: the partial gain/loss is still reported.
type MatchResult struct {
	SellID            string          `json:"sellId"`
	Symbol            string          `json:"symbol"`
	QuantitySold      int64           `json:"quantitySold"`
	RealizedGainLoss  decimal.Decimal `json:"realizedGainLoss"`
	FullyMatched      bool            `json:"fullyMatched"`
	UnmatchedQuantity int64           `json:"unmatchedQuantity,omitempty"`
	Fragments         []LotFragment   `json:"fragments,omitempty"`
}
