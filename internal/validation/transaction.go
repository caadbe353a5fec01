package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/jdevries/stock-tracker-backend/internal/api/request"
)

// ValidTransactionType contains the allowed transaction type values.
var ValidTransactionType = map[string]bool{
	"BUY": true, "SELL": true,
}

// ParseTimestamp parses a trade timestamp in "2006-01-02" or RFC3339 format.
func ParseTimestamp(str string) (time.Time, error) {
	parsed, err := time.Parse("2006-01-02", str)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, str)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse timestamp: %w", err)
		}
	}
	return parsed.UTC(), nil
}

// ValidateCreateTransaction validates a transaction creation request.
// Checks all required fields and validates their formats and constraints.
//
// Required fields:
//   - userId: Must be non-empty (opaque identifier, owned by the identity system)
//   - symbol: Must be non-empty
//   - type: Must be one of: BUY, SELL
//   - quantity: Must be a positive integer share count
//   - price: Must be positive
//   - timestamp: Must be in YYYY-MM-DD or RFC3339 format
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateTransaction(req request.CreateTransactionRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.UserID) == "" {
		errors["userId"] = "userId is required"
	}

	if strings.TrimSpace(req.Symbol) == "" {
		errors["symbol"] = "symbol is required"
	}

	if strings.TrimSpace(req.Type) == "" {
		errors["type"] = "type is required"
	} else if !ValidTransactionType[strings.ToUpper(req.Type)] {
		errors["type"] = fmt.Sprintf("invalid type: %s", req.Type)
	}

	if req.Quantity <= 0 {
		errors["quantity"] = "quantity must be a positive number of shares"
	}

	if !req.Price.IsPositive() {
		errors["price"] = "price must be positive"
	}

	if strings.TrimSpace(req.Timestamp) == "" {
		errors["timestamp"] = "timestamp is required"
	} else if _, err := ParseTimestamp(req.Timestamp); err != nil {
		errors["timestamp"] = err.Error()
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
