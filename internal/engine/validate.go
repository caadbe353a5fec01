package engine

import (
	"fmt"
	"strings"

	"github.com/jdevries/stock-tracker-backend/internal/model"
)

// TransactionError reports a malformed ledger entry. The offending
// transaction is excluded from matching and aggregation; processing
// continues over the remaining valid entries.
type TransactionError struct {
	TransactionID string
	Reason        string
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("invalid transaction %s: %s", e.TransactionID, e.Reason)
}

// splitValid partitions a ledger into valid entries and per-entry errors.
// A valid entry has a known type, a non-empty symbol, a positive share
// count and a positive price.
func splitValid(transactions []model.Transaction) ([]model.Transaction, []error) {
	valid := make([]model.Transaction, 0, len(transactions))
	var errs []error

	for _, t := range transactions {
		switch {
		case t.Type != model.TransactionBuy && t.Type != model.TransactionSell:
			errs = append(errs, &TransactionError{TransactionID: t.ID, Reason: fmt.Sprintf("unknown type %q", t.Type)})
		case strings.TrimSpace(t.Symbol) == "":
			errs = append(errs, &TransactionError{TransactionID: t.ID, Reason: "missing symbol"})
		case t.Quantity <= 0:
			errs = append(errs, &TransactionError{TransactionID: t.ID, Reason: fmt.Sprintf("quantity must be positive, got %d", t.Quantity)})
		case !t.Price.IsPositive():
			errs = append(errs, &TransactionError{TransactionID: t.ID, Reason: fmt.Sprintf("price must be positive, got %s", t.Price)})
		default:
			valid = append(valid, t)
		}
	}

	return valid, errs
}

// normalizeSymbol produces the canonical grouping key for a ticker.
// Matching and aggregation never cross symbols, so "aapl" and "AAPL"
// must land in the same group.
func normalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
