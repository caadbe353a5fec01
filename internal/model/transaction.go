package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType identifies the direction of a trade.
type TransactionType string

// Valid transaction types. The ledger records nothing else.
const (
	TransactionBuy  TransactionType = "BUY"
	TransactionSell TransactionType = "SELL"
)

// Transaction represents one executed trade in a user's ledger.
// Transactions are immutable once recorded; the engine never mutates them
// and tracks lot consumption externally.
type Transaction struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	Symbol    string          `json:"symbol"`
	Type      TransactionType `json:"type"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Timestamp time.Time       `json:"timestamp"`
	CreatedAt time.Time       `json:"createdAt,omitempty"`
}

// TransactionResponse represents a transaction with enriched data for API responses.
// Sell transactions carry the realized gain/loss computed by the lot matcher.
type TransactionResponse struct {
	ID               string           `json:"id"`
	UserID           string           `json:"userId"`
	Symbol           string           `json:"symbol"`
	Type             TransactionType  `json:"type"`
	Quantity         int64            `json:"quantity"`
	Price            decimal.Decimal  `json:"price"`
	Timestamp        time.Time        `json:"timestamp"`
	RealizedGainLoss *decimal.Decimal `json:"realizedGainLoss,omitempty"`
	FullyMatched     *bool            `json:"fullyMatched,omitempty"`
}

// UserLedger is a user's full transaction history together with the
// warnings and validation problems the lot matcher collected while
// enriching it.
type UserLedger struct {
	Transactions        []TransactionResponse `json:"transactions"`
	Warnings            []Warning             `json:"warnings"`
	InvalidTransactions []string              `json:"invalidTransactions,omitempty"`
}
