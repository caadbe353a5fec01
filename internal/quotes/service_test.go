package quotes

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jdevries/stock-tracker-backend/internal/model"
)

type fakeFetcher struct {
	mu     sync.Mutex
	quotes map[string]model.Quote
	err    error
	calls  int
}

func (f *fakeFetcher) GetQuote(_ context.Context, symbol string) (model.Quote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return model.Quote{}, f.err
	}
	quote, ok := f.quotes[symbol]
	if !ok {
		return model.Quote{}, errors.New("unknown symbol")
	}
	return quote, nil
}

func quoteAt(symbol, price string) model.Quote {
	return model.Quote{
		Symbol:       symbol,
		CurrentPrice: decimal.RequireFromString(price),
		RetrievedAt:  time.Now().UTC(),
	}
}

func TestService_GetQuote(t *testing.T) {
	t.Run("fetches on miss and serves from cache while fresh", func(t *testing.T) {
		fetcher := &fakeFetcher{quotes: map[string]model.Quote{"AAPL": quoteAt("AAPL", "180")}}
		service := NewService(fetcher, time.Hour)

		for i := 0; i < 3; i++ {
			quote, err := service.GetQuote(context.Background(), "AAPL")
			if err != nil {
				t.Fatalf("GetQuote failed: %v", err)
			}
			if !quote.CurrentPrice.Equal(decimal.RequireFromString("180")) {
				t.Errorf("Expected price 180, got %s", quote.CurrentPrice)
			}
		}

		if fetcher.calls != 1 {
			t.Errorf("Expected 1 upstream fetch, got %d", fetcher.calls)
		}
	})

	t.Run("refetches when the cached entry expires", func(t *testing.T) {
		fetcher := &fakeFetcher{quotes: map[string]model.Quote{"AAPL": quoteAt("AAPL", "180")}}
		service := NewService(fetcher, time.Nanosecond)

		if _, err := service.GetQuote(context.Background(), "AAPL"); err != nil {
			t.Fatalf("GetQuote failed: %v", err)
		}
		time.Sleep(time.Millisecond)
		if _, err := service.GetQuote(context.Background(), "AAPL"); err != nil {
			t.Fatalf("GetQuote failed: %v", err)
		}

		if fetcher.calls != 2 {
			t.Errorf("Expected 2 upstream fetches, got %d", fetcher.calls)
		}
	})

	t.Run("serves stale quote when upstream fails", func(t *testing.T) {
		fetcher := &fakeFetcher{quotes: map[string]model.Quote{"AAPL": quoteAt("AAPL", "180")}}
		service := NewService(fetcher, time.Nanosecond)

		if _, err := service.GetQuote(context.Background(), "AAPL"); err != nil {
			t.Fatalf("GetQuote failed: %v", err)
		}

		fetcher.err = errors.New("upstream down")
		time.Sleep(time.Millisecond)

		quote, err := service.GetQuote(context.Background(), "AAPL")
		if err != nil {
			t.Fatalf("Expected stale quote, got error: %v", err)
		}
		if !quote.CurrentPrice.Equal(decimal.RequireFromString("180")) {
			t.Errorf("Expected stale price 180, got %s", quote.CurrentPrice)
		}
	})

	t.Run("propagates errors with no cached fallback", func(t *testing.T) {
		fetcher := &fakeFetcher{err: errors.New("upstream down")}
		service := NewService(fetcher, time.Hour)

		if _, err := service.GetQuote(context.Background(), "AAPL"); err == nil {
			t.Error("Expected an error with empty cache")
		}
	})
}

func TestService_GetQuotes(t *testing.T) {
	t.Run("omits symbols that cannot be quoted", func(t *testing.T) {
		fetcher := &fakeFetcher{quotes: map[string]model.Quote{
			"AAPL": quoteAt("AAPL", "180"),
			"MSFT": quoteAt("MSFT", "320"),
		}}
		service := NewService(fetcher, time.Hour)

		quotes := service.GetQuotes(context.Background(), []string{"AAPL", "MSFT", "NOPE"})

		if len(quotes) != 2 {
			t.Fatalf("Expected 2 quotes, got %d", len(quotes))
		}
		if _, ok := quotes["NOPE"]; ok {
			t.Error("Expected NOPE to be absent")
		}
		if !quotes["MSFT"].CurrentPrice.Equal(decimal.RequireFromString("320")) {
			t.Errorf("Expected MSFT at 320, got %s", quotes["MSFT"].CurrentPrice)
		}
	})

	t.Run("empty symbol list returns empty map", func(t *testing.T) {
		service := NewService(&fakeFetcher{}, time.Hour)

		quotes := service.GetQuotes(context.Background(), nil)
		if len(quotes) != 0 {
			t.Errorf("Expected empty map, got %d entries", len(quotes))
		}
	})
}
