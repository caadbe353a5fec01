package testutil

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jdevries/stock-tracker-backend/internal/model"
)

// StaticQuotes is a quote source for tests backed by a fixed map. It
// satisfies both the engine-facing batch interface and the fetcher
// interface of the quote service, so it can stand in at either level.
type StaticQuotes struct {
	// Quotes maps symbol to the quote to serve. Symbols absent from the
	// map behave like an upstream outage for that symbol.
	Quotes map[string]model.Quote
	// Err, when set, is returned from every single-symbol fetch.
	Err error
	// Calls counts single-symbol fetches.
	Calls int
}

// NewStaticQuotes creates a StaticQuotes with no data. Use SetPrice to
// add symbols.
func NewStaticQuotes() *StaticQuotes {
	return &StaticQuotes{Quotes: make(map[string]model.Quote)}
}

// SetPrice registers a quote for a symbol from decimal strings.
func (s *StaticQuotes) SetPrice(symbol, current, previousClose string) *StaticQuotes {
	symbol = strings.ToUpper(symbol)
	s.Quotes[symbol] = model.Quote{
		Symbol:        symbol,
		CurrentPrice:  decimal.RequireFromString(current),
		PreviousClose: decimal.RequireFromString(previousClose),
		RetrievedAt:   time.Now().UTC(),
	}
	return s
}

// GetQuote returns the configured quote for one symbol, or Err when set.
func (s *StaticQuotes) GetQuote(_ context.Context, symbol string) (model.Quote, error) {
	s.Calls++
	if s.Err != nil {
		return model.Quote{}, s.Err
	}
	quote, ok := s.Quotes[strings.ToUpper(symbol)]
	if !ok {
		return model.Quote{}, fmt.Errorf("no quote configured for %s", symbol)
	}
	return quote, nil
}

// GetQuotes returns the configured quotes for the requested symbols,
// omitting any the map does not contain.
func (s *StaticQuotes) GetQuotes(_ context.Context, symbols []string) map[string]model.Quote {
	result := make(map[string]model.Quote, len(symbols))
	for _, symbol := range symbols {
		if quote, ok := s.Quotes[strings.ToUpper(symbol)]; ok {
			result[symbol] = quote
		}
	}
	return result
}
