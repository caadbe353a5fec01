package service

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jdevries/stock-tracker-backend/internal/engine"
	"github.com/jdevries/stock-tracker-backend/internal/format"
	"github.com/jdevries/stock-tracker-backend/internal/model"
	"github.com/jdevries/stock-tracker-backend/internal/repository"
)

// summaryConcurrency caps how many users are valued in parallel when
// building the all-users overview.
const summaryConcurrency = 4

// QuoteProvider supplies current quotes for a batch of symbols. Symbols
// without a usable quote are absent from the returned map; the engine
// falls back to average cost for those.
type QuoteProvider interface {
	GetQuotes(ctx context.Context, symbols []string) map[string]model.Quote
}

// PortfolioService computes portfolio valuations by combining the trade
// ledger, the quote service and the lot-matching engine.
type PortfolioService struct {
	transactionRepo *repository.TransactionRepository
	quotes          QuoteProvider
	engine          *engine.Engine
}

// NewPortfolioService creates a new PortfolioService with the provided dependencies.
func NewPortfolioService(
	transactionRepo *repository.TransactionRepository,
	quotes QuoteProvider,
	eng *engine.Engine,
) *PortfolioService {
	return &PortfolioService{
		transactionRepo: transactionRepo,
		quotes:          quotes,
		engine:          eng,
	}
}

// GetSummary values one user's portfolio at current prices. The ledger
// is loaded once, open symbols determine which quotes to fetch, and the
// engine produces the snapshot plus any warnings.
func (s *PortfolioService) GetSummary(ctx context.Context, userID string) (model.PortfolioSummary, error) {
	transactions, err := s.transactionRepo.GetTransactionsByUser(userID)
	if err != nil {
		return model.PortfolioSummary{}, err
	}

	positions, _, _ := engine.Aggregate(transactions)
	symbols := make([]string, 0, len(positions))
	for symbol := range positions {
		symbols = append(symbols, symbol)
	}

	quotes := s.quotes.GetQuotes(ctx, symbols)

	snapshot, _, warnings, computeErr := s.engine.Compute(userID, transactions, quotes)

	summary := model.PortfolioSummary{
		ValuationSnapshot: snapshot,
		Warnings:          warnings,
	}
	if computeErr != nil {
		// Rows the database let through but the engine rejected. The
		// summary is still returned; these name the entries to repair.
		summary.InvalidTransactions = splitJoined(computeErr)
	}

	return summary, nil
}

// GetHoldings returns one user's portfolio rendered for display,
// including the allocation breakdown.
func (s *PortfolioService) GetHoldings(ctx context.Context, userID string) (format.PortfolioView, error) {
	summary, err := s.GetSummary(ctx, userID)
	if err != nil {
		return format.PortfolioView{}, err
	}
	return format.NewPortfolioView(summary.ValuationSnapshot), nil
}

// GetAllSummaries values every user with recorded trades, a bounded
// number at a time. One user's failure aborts the whole overview; the
// per-user endpoint remains available for the others.
func (s *PortfolioService) GetAllSummaries(ctx context.Context) ([]model.PortfolioSummary, error) {
	userIDs, err := s.transactionRepo.ListUserIDs()
	if err != nil {
		return nil, err
	}

	summaries := make([]model.PortfolioSummary, len(userIDs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(summaryConcurrency)

	for i, userID := range userIDs {
		i, userID := i, userID
		g.Go(func() error {
			summary, err := s.GetSummary(ctx, userID)
			if err != nil {
				return fmt.Errorf("summary for user %s: %w", userID, err)
			}
			summaries[i] = summary
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].UserID < summaries[j].UserID
	})

	return summaries, nil
}
