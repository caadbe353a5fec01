package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrTransactionNotFound indicates that a transaction with the given ID does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrQuoteNotFound indicates that a quote lookup returned no results for a symbol.
	ErrQuoteNotFound = errors.New("quote not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidSymbol indicates that a symbol parameter is missing or malformed.
	ErrInvalidSymbol = errors.New("symbol is required")

	// ErrInvalidUserID indicates that a user ID parameter is missing.
	ErrInvalidUserID = errors.New("user ID is required")

	// ErrInvalidMatchPolicy indicates an unrecognized lot-matching policy value.
	ErrInvalidMatchPolicy = errors.New("invalid match policy")
)

// Operation failure errors represent system-level failures when retrieving or processing data.
// These errors indicate that an operation failed, but not due to missing entities or validation issues.
var (
	// Transaction operation errors
	ErrFailedToRetrieveTransactions = errors.New("failed to retrieve transactions")
	ErrFailedToRetrieveTransaction  = errors.New("failed to retrieve transaction")
	ErrFailedToCreateTransaction    = errors.New("failed to create transaction")
	ErrFailedToDeleteTransaction    = errors.New("failed to delete transaction")

	// Portfolio operation errors
	ErrFailedToComputeValuation = errors.New("failed to compute portfolio valuation")

	// Quote operation errors
	ErrFailedToRetrieveQuote = errors.New("failed to retrieve quote")
)
