package model

import "fmt"

// WarningCode classifies non-fatal conditions detected while processing
// a ledger. Warnings are collected and returned alongside results so the
// caller can surface them instead of producing a silently wrong total.
type WarningCode string

const (
	// WarnUnmatchedSell signals a sell that could not be fully matched
	// against historical buys of the same symbol.
	WarnUnmatchedSell WarningCode = "UNMATCHED_SELL"

	// WarnNegativeHoldings signals a symbol whose net quantity went below
	// zero while aggregating, which indicates upstream data corruption.
	WarnNegativeHoldings WarningCode = "NEGATIVE_HOLDINGS"

	// WarnQuoteUnavailable signals a held symbol with no usable quote;
	// the valuation fell back to average cost for that symbol.
	WarnQuoteUnavailable WarningCode = "QUOTE_UNAVAILABLE"
)

// Warning describes one non-fatal condition. TransactionID is set when
// the condition is tied to a specific ledger entry.
type Warning struct {
	Code          WarningCode `json:"code"`
	Symbol        string      `json:"symbol,omitempty"`
	TransactionID string      `json:"transactionId,omitempty"`
	Message       string      `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}
