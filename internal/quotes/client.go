package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jdevries/stock-tracker-backend/internal/apperrors"
	"github.com/jdevries/stock-tracker-backend/internal/model"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

// FinanceClient fetches market data from the Yahoo Finance chart API.
type FinanceClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewFinanceClient creates a client against the public API endpoint.
func NewFinanceClient() *FinanceClient {
	return NewFinanceClientWithBaseURL(defaultBaseURL)
}

// NewFinanceClientWithBaseURL creates a client against a custom
// endpoint. Used by tests to point the client at a local mock server.
func NewFinanceClientWithBaseURL(baseURL string) *FinanceClient {
	return &FinanceClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
	}
}

// GetQuote fetches the last five trading days for a symbol and derives
// a Quote from the two most recent usable closes: the latest close is
// the current price, the one before it the previous close.
func (c *FinanceClient) GetQuote(ctx context.Context, symbol string) (model.Quote, error) {
	url := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=5d", c.baseURL, symbol)
	result, err := c.queryChart(ctx, url)
	if err != nil {
		return model.Quote{}, err
	}
	if len(result.Chart.Result) == 0 {
		return model.Quote{}, fmt.Errorf("%w: no results returned for symbol %s", apperrors.ErrQuoteNotFound, symbol)
	}

	return quoteFromResult(symbol, result.Chart.Result[0])
}

// quoteFromResult validates the indicator arrays and extracts the two
// most recent non-null closes.
func quoteFromResult(symbol string, result Result) (model.Quote, error) {
	if len(result.Timestamp) == 0 {
		return model.Quote{}, fmt.Errorf("no price data returned for %s", symbol)
	}
	if len(result.Indicators.Quote) == 0 || len(result.Indicators.Quote[0].Close) == 0 {
		return model.Quote{}, fmt.Errorf("no close prices returned for %s", symbol)
	}
	closes := result.Indicators.Quote[0].Close
	if len(closes) != len(result.Timestamp) {
		return model.Quote{}, fmt.Errorf("mismatched data lengths for %s", symbol)
	}

	var usable []float64
	for _, close := range closes {
		if close != nil && *close > 0 {
			usable = append(usable, *close)
		}
	}
	if len(usable) == 0 {
		return model.Quote{}, fmt.Errorf("%w: no usable close prices for symbol %s", apperrors.ErrQuoteNotFound, symbol)
	}

	quote := model.Quote{
		Symbol:       symbol,
		CurrentPrice: decimal.NewFromFloat(usable[len(usable)-1]),
		RetrievedAt:  time.Now().UTC(),
	}
	if len(usable) > 1 {
		quote.PreviousClose = decimal.NewFromFloat(usable[len(usable)-2])
	}

	return quote, nil
}

// queryChart executes an HTTP request against the chart API, checking
// for transport errors and API-level error payloads.
func (c *FinanceClient) queryChart(ctx context.Context, url string) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Response{}, err
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, err
	}

	var response Response
	if err := json.Unmarshal(data, &response); err != nil {
		return Response{}, err
	}

	if response.Chart.Error != nil {
		return response, fmt.Errorf("chart api error: %s", *response.Chart.Error)
	}

	return response, nil
}
