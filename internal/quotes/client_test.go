package quotes

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func chartJSON(symbol string, closes []string) string {
	timestamps := make([]string, len(closes))
	for i := range closes {
		timestamps[i] = fmt.Sprintf("%d", 1704067200+i*86400)
	}
	return fmt.Sprintf(`{
		"chart": {
			"result": [{
				"meta": {"symbol": %q, "currency": "USD"},
				"timestamp": [%s],
				"indicators": {"quote": [{"close": [%s]}]}
			}],
			"error": null
		}
	}`, symbol, strings.Join(timestamps, ","), strings.Join(closes, ","))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *FinanceClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewFinanceClientWithBaseURL(server.URL)
}

func TestFinanceClient_GetQuote(t *testing.T) {
	t.Run("derives quote from the last two closes", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if !strings.Contains(r.URL.Path, "/v8/finance/chart/AAPL") {
				t.Errorf("Unexpected path %s", r.URL.Path)
			}
			fmt.Fprint(w, chartJSON("AAPL", []string{"175.5", "178.2", "180.0"}))
		})

		quote, err := client.GetQuote(context.Background(), "AAPL")
		if err != nil {
			t.Fatalf("GetQuote failed: %v", err)
		}

		if quote.Symbol != "AAPL" {
			t.Errorf("Expected symbol AAPL, got %s", quote.Symbol)
		}
		if !quote.CurrentPrice.Equal(decimal.RequireFromString("180")) {
			t.Errorf("Expected current price 180, got %s", quote.CurrentPrice)
		}
		if !quote.PreviousClose.Equal(decimal.RequireFromString("178.2")) {
			t.Errorf("Expected previous close 178.2, got %s", quote.PreviousClose)
		}
		if !quote.Valid() {
			t.Error("Expected a valid quote")
		}
	})

	t.Run("skips null closes", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, chartJSON("AAPL", []string{"175.5", "178.2", "null"}))
		})

		quote, err := client.GetQuote(context.Background(), "AAPL")
		if err != nil {
			t.Fatalf("GetQuote failed: %v", err)
		}

		if !quote.CurrentPrice.Equal(decimal.RequireFromString("178.2")) {
			t.Errorf("Expected current price 178.2, got %s", quote.CurrentPrice)
		}
	})

	t.Run("errors on chart api error payload", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `{"chart": {"result": [], "error": "Not Found"}}`)
		})

		if _, err := client.GetQuote(context.Background(), "NOPE"); err == nil {
			t.Error("Expected an error for chart api error")
		}
	})

	t.Run("errors when no usable closes exist", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, chartJSON("AAPL", []string{"null", "null"}))
		})

		if _, err := client.GetQuote(context.Background(), "AAPL"); err == nil {
			t.Error("Expected an error when all closes are null")
		}
	})

	t.Run("errors on empty result set", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `{"chart": {"result": [], "error": null}}`)
		})

		if _, err := client.GetQuote(context.Background(), "AAPL"); err == nil {
			t.Error("Expected an error for empty result set")
		}
	})
}
