package model

// PortfolioSummary is a valuation snapshot together with the warnings
// and validation problems collected while computing it. Figures are
// always returned; the caller decides how prominently to surface the
// accompanying issues.
type PortfolioSummary struct {
	ValuationSnapshot
	Warnings            []Warning `json:"warnings"`
	InvalidTransactions []string  `json:"invalidTransactions,omitempty"`
}
