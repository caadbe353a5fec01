package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jdevries/stock-tracker-backend/internal/api/response"
	"github.com/jdevries/stock-tracker-backend/internal/apperrors"
	"github.com/jdevries/stock-tracker-backend/internal/service"
)

// PortfolioHandler handles HTTP requests for portfolio valuation endpoints.
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler with the provided service dependency.
func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
	}
}

// UserSummary handles GET requests for one user's portfolio valuation.
// The summary carries the snapshot figures plus any warnings collected
// while matching lots and fetching quotes.
//
// Endpoint: GET /api/portfolio/{userId}/summary
// Response: 200 OK with PortfolioSummary
// Error: 400 Bad Request if the user ID is empty
// Error: 500 Internal Server Error if the valuation fails
func (h *PortfolioHandler) UserSummary(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidUserID.Error(), "")
		return
	}

	summary, err := h.portfolioService.GetSummary(r.Context(), userID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToComputeValuation.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, summary)
}

// UserHoldings handles GET requests for one user's holdings rendered for
// display, including formatted currency strings and the allocation
// breakdown.
//
// Endpoint: GET /api/portfolio/{userId}/holdings
// Response: 200 OK with PortfolioView
// Error: 400 Bad Request if the user ID is empty
// Error: 500 Internal Server Error if the valuation fails
func (h *PortfolioHandler) UserHoldings(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidUserID.Error(), "")
		return
	}

	view, err := h.portfolioService.GetHoldings(r.Context(), userID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToComputeValuation.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, view)
}

// AllSummaries handles GET requests for the valuation of every user with
// recorded trades.
//
// Endpoint: GET /api/portfolio/summary
// Response: 200 OK with array of PortfolioSummary
// Error: 500 Internal Server Error if any valuation fails
func (h *PortfolioHandler) AllSummaries(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.portfolioService.GetAllSummaries(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToComputeValuation.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, summaries)
}
