package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jdevries/stock-tracker-backend/internal/api/handlers"
	custommiddleware "github.com/jdevries/stock-tracker-backend/internal/api/middleware"
	"github.com/jdevries/stock-tracker-backend/internal/config"
	"github.com/jdevries/stock-tracker-backend/internal/quotes"
	"github.com/jdevries/stock-tracker-backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	transactionService *service.TransactionService,
	portfolioService *service.PortfolioService,
	quoteService *quotes.Service,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/transaction", func(r chi.Router) {
			transactionHandler := handlers.NewTransactionHandler(transactionService)

			// Mutations require the internal API key.
			r.With(custommiddleware.APIKeyMiddleware).Post("/", transactionHandler.CreateTransaction)

			r.Get("/user/{userId}", transactionHandler.TransactionsPerUser)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", transactionHandler.GetTransaction)
				r.With(custommiddleware.APIKeyMiddleware).Delete("/", transactionHandler.DeleteTransaction)
			})
		})

		r.Route("/portfolio", func(r chi.Router) {
			portfolioHandler := handlers.NewPortfolioHandler(portfolioService)
			r.Get("/summary", portfolioHandler.AllSummaries)
			r.Get("/{userId}/summary", portfolioHandler.UserSummary)
			r.Get("/{userId}/holdings", portfolioHandler.UserHoldings)
		})

		r.Route("/quote", func(r chi.Router) {
			quoteHandler := handlers.NewQuoteHandler(quoteService)
			r.Get("/{symbol}", quoteHandler.GetQuote)
		})
	})

	return r
}
