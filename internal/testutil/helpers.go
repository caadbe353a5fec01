package testutil

import (
	"database/sql"
	"math/rand"
	"testing"

	"github.com/google/uuid"

	"github.com/jdevries/stock-tracker-backend/internal/engine"
	"github.com/jdevries/stock-tracker-backend/internal/repository"
	"github.com/jdevries/stock-tracker-backend/internal/service"
)

// NewTestTransactionService wires a TransactionService against the test
// database with the default lot-matching policy.
func NewTestTransactionService(t *testing.T, db *sql.DB) *service.TransactionService {
	t.Helper()

	transactionRepo := repository.NewTransactionRepository(db)

	return service.NewTransactionService(
		transactionRepo,
		engine.New(engine.LIFO),
	)
}

// NewTestPortfolioService wires a PortfolioService against the test
// database and the given quote source.
func NewTestPortfolioService(t *testing.T, db *sql.DB, quotes service.QuoteProvider) *service.PortfolioService {
	t.Helper()

	transactionRepo := repository.NewTransactionRepository(db)

	return service.NewPortfolioService(
		transactionRepo,
		quotes,
		engine.New(engine.LIFO),
	)
}

// NewTestSystemService wires a SystemService against the test database.
func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeUserID generates a unique user identifier for testing.
//
// Example usage:
//
//	userID := testutil.MakeUserID()
//	// Returns: "user-1A2B3C"
func MakeUserID() string {
	return "user-" + randomAlphanumeric(6)
}

// MakeSymbol generates a stock ticker symbol for testing.
//
// Example usage:
//
//	symbol := testutil.MakeSymbol("AAPL")
//	// Returns: "AAPL1A2B"
func MakeSymbol(base string) string {
	if base == "" {
		base = "TEST"
	}
	return base + randomAlphanumeric(4)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
