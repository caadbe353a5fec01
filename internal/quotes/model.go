package quotes

// Response represents the raw JSON response structure from the Yahoo
// Finance chart API. Close prices are pointers because the API returns
// null entries for halted or partial trading days.
type Response struct {
	Chart Chart `json:"chart"`
}

// Chart is the top-level payload of a chart API response.
type Chart struct {
	Result []Result `json:"result"`
	Error  *string  `json:"error"`
}

// Result holds one symbol's metadata and daily indicator series.
type Result struct {
	Meta       Meta                `json:"meta"`
	Timestamp  []int64             `json:"timestamp"`
	Indicators IndicatorsContainer `json:"indicators"`
}

// Meta holds symbol metadata.
type Meta struct {
	Currency     string `json:"currency"`
	Symbol       string `json:"symbol"`
	ExchangeName string `json:"exchangeName"`
	ShortName    string `json:"shortName"`
}

// IndicatorsContainer wraps the quote indicator arrays.
type IndicatorsContainer struct {
	Quote []QuoteIndicators `json:"quote"`
}

// QuoteIndicators holds the per-day OHLCV arrays, index-aligned with
// the result's Timestamp array.
type QuoteIndicators struct {
	Open   []*float64 `json:"open"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Close  []*float64 `json:"close"`
	Volume []*int64   `json:"volume"`
}
