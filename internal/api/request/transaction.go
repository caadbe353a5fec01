package request

import "github.com/shopspring/decimal"

type CreateTransactionRequest struct {
	UserID    string          `json:"userId"`
	Symbol    string          `json:"symbol"`
	Type      string          `json:"type"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Timestamp string          `json:"timestamp"`
}
