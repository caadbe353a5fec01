package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jdevries/stock-tracker-backend/internal/api/response"
	"github.com/jdevries/stock-tracker-backend/internal/apperrors"
	"github.com/jdevries/stock-tracker-backend/internal/quotes"
)

// QuoteHandler handles HTTP requests for market quote endpoints.
type QuoteHandler struct {
	quoteService *quotes.Service
}

// NewQuoteHandler creates a new QuoteHandler with the provided service dependency.
func NewQuoteHandler(quoteService *quotes.Service) *QuoteHandler {
	return &QuoteHandler{
		quoteService: quoteService,
	}
}

// GetQuote handles GET requests for the current quote of one symbol.
// Served from cache when fresh, otherwise fetched upstream.
//
// Endpoint: GET /api/quote/{symbol}
// Response: 200 OK with Quote
// Error: 400 Bad Request if the symbol is empty
// Error: 502 Bad Gateway if no quote could be retrieved
func (h *QuoteHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	symbol := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "symbol")))
	if symbol == "" {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidSymbol.Error(), "")
		return
	}

	quote, err := h.quoteService.GetQuote(r.Context(), symbol)
	if err != nil {
		response.RespondError(w, http.StatusBadGateway, apperrors.ErrFailedToRetrieveQuote.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, quote)
}
