package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jdevries/stock-tracker-backend/internal/model"
)

// TransactionBuilder provides a fluent interface for creating trades
// in the test database.
//
// Example usage:
//
//	// Simple creation with defaults
//	trade := testutil.NewTransaction("user-1").Build(t, db)
//
//	// Customized trade
//	trade := testutil.NewTransaction("user-1").
//	    WithSymbol("AAPL").
//	    Sell().
//	    WithQuantity(5).
//	    WithPrice("187.30").
//	    WithTimestamp(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)).
//	    Build(t, db)
type TransactionBuilder struct {
	ID        string
	UserID    string
	Symbol    string
	Type      model.TransactionType
	Quantity  int64
	Price     decimal.Decimal
	Timestamp time.Time
}

// NewTransaction creates a TransactionBuilder with defaults
func NewTransaction(userID string) *TransactionBuilder {
	return &TransactionBuilder{
		ID:        MakeID(),
		UserID:    userID,
		Symbol:    "AAPL",
		Type:      model.TransactionBuy,
		Quantity:  10,
		Price:     decimal.NewFromInt(100),
		Timestamp: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// WithID sets a custom ID
func (b *TransactionBuilder) WithID(id string) *TransactionBuilder {
	b.ID = id
	return b
}

// WithSymbol sets the traded symbol
func (b *TransactionBuilder) WithSymbol(symbol string) *TransactionBuilder {
	b.Symbol = symbol
	return b
}

// Buy marks the trade as a purchase
func (b *TransactionBuilder) Buy() *TransactionBuilder {
	b.Type = model.TransactionBuy
	return b
}

// Sell marks the trade as a sale
func (b *TransactionBuilder) Sell() *TransactionBuilder {
	b.Type = model.TransactionSell
	return b
}

// WithQuantity sets the number of shares
func (b *TransactionBuilder) WithQuantity(quantity int64) *TransactionBuilder {
	b.Quantity = quantity
	return b
}

// WithPrice sets the per-share price from a decimal string
func (b *TransactionBuilder) WithPrice(price string) *TransactionBuilder {
	b.Price = decimal.RequireFromString(price)
	return b
}

// WithTimestamp sets the execution time
func (b *TransactionBuilder) WithTimestamp(ts time.Time) *TransactionBuilder {
	b.Timestamp = ts
	return b
}

// Build creates the trade in the database
func (b *TransactionBuilder) Build(t *testing.T, db *sql.DB) model.Transaction {
	t.Helper()

	query := `
		INSERT INTO trade (id, user_id, symbol, type, quantity, price, timestamp, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	createdAt := time.Now().UTC()
	_, err := db.Exec(query,
		b.ID,
		b.UserID,
		b.Symbol,
		string(b.Type),
		b.Quantity,
		b.Price.String(),
		b.Timestamp.UTC().Format(time.RFC3339),
		createdAt.Format(time.RFC3339),
	)
	if err != nil {
		t.Fatalf("Failed to create transaction: %v", err)
	}

	return model.Transaction{
		ID:        b.ID,
		UserID:    b.UserID,
		Symbol:    b.Symbol,
		Type:      b.Type,
		Quantity:  b.Quantity,
		Price:     b.Price,
		Timestamp: b.Timestamp.UTC(),
		CreatedAt: createdAt,
	}
}
