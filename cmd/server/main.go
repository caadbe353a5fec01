package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jdevries/stock-tracker-backend/internal/api"
	"github.com/jdevries/stock-tracker-backend/internal/config"
	"github.com/jdevries/stock-tracker-backend/internal/database"
	"github.com/jdevries/stock-tracker-backend/internal/engine"
	"github.com/jdevries/stock-tracker-backend/internal/quotes"
	"github.com/jdevries/stock-tracker-backend/internal/repository"
	"github.com/jdevries/stock-tracker-backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Lot-matching policy
	policy, err := engine.ParsePolicy(cfg.Engine.MatchPolicy)
	if err != nil {
		log.Fatalf("Invalid MATCH_POLICY: %v", err)
	}
	eng := engine.New(policy)
	log.Printf("Lot matching policy: %s", eng.Policy())

	// Create repositories
	transactionRepo := repository.NewTransactionRepository(db)

	// Quote service with background refresh
	quoteService := quotes.NewService(quotes.NewFinanceClient(), cfg.Quotes.CacheTTL)
	if err := quoteService.StartRefresh(cfg.Quotes.RefreshSpec); err != nil {
		log.Fatalf("Invalid QUOTE_REFRESH_SPEC: %v", err)
	}
	defer quoteService.Stop()

	// Create services
	systemService := service.NewSystemService(db)
	transactionService := service.NewTransactionService(
		transactionRepo,
		eng,
	)
	portfolioService := service.NewPortfolioService(
		transactionRepo,
		quoteService,
		eng,
	)

	// Create router
	router := api.NewRouter(systemService, transactionService, portfolioService, quoteService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
