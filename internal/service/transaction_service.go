package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jdevries/stock-tracker-backend/internal/api/request"
	"github.com/jdevries/stock-tracker-backend/internal/engine"
	"github.com/jdevries/stock-tracker-backend/internal/model"
	"github.com/jdevries/stock-tracker-backend/internal/repository"
	"github.com/jdevries/stock-tracker-backend/internal/validation"
)

// TransactionService handles trade ledger business logic operations.
type TransactionService struct {
	transactionRepo *repository.TransactionRepository
	engine          *engine.Engine
}

// NewTransactionService creates a new TransactionService with the provided dependencies.
func NewTransactionService(
	transactionRepo *repository.TransactionRepository,
	eng *engine.Engine,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		engine:          eng,
	}
}

// CreateTransaction validates and records a single trade.
// Symbols are stored uppercase so lot matching treats "aapl" and "AAPL"
// as the same instrument.
func (s *TransactionService) CreateTransaction(ctx context.Context, req request.CreateTransactionRequest) (*model.Transaction, error) {
	if err := validation.ValidateCreateTransaction(req); err != nil {
		return nil, err
	}

	timestamp, err := validation.ParseTimestamp(req.Timestamp)
	if err != nil {
		return nil, err
	}

	transaction := &model.Transaction{
		ID:        uuid.New().String(),
		UserID:    strings.TrimSpace(req.UserID),
		Symbol:    strings.ToUpper(strings.TrimSpace(req.Symbol)),
		Type:      model.TransactionType(strings.ToUpper(req.Type)),
		Quantity:  req.Quantity,
		Price:     req.Price,
		Timestamp: timestamp,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.transactionRepo.InsertTransaction(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return transaction, nil
}

// GetTransaction retrieves a single transaction by its ID.
func (s *TransactionService) GetTransaction(transactionID string) (model.Transaction, error) {
	return s.transactionRepo.GetTransaction(transactionID)
}

// GetTransactionsByUser returns a user's full ledger in chronological order.
// Sell rows are enriched with the realized gain/loss the lot matcher
// attributes to them under the configured matching policy; the matcher's
// warnings and any invalid entries ride along on the envelope.
func (s *TransactionService) GetTransactionsByUser(userID string) (*model.UserLedger, error) {
	transactions, err := s.transactionRepo.GetTransactionsByUser(userID)
	if err != nil {
		return nil, err
	}

	results, warnings, matchErr := s.engine.Match(transactions)
	bySell := make(map[string]model.MatchResult, len(results))
	for _, r := range results {
		bySell[r.SellID] = r
	}

	responses := make([]model.TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		resp := model.TransactionResponse{
			ID:        t.ID,
			UserID:    t.UserID,
			Symbol:    t.Symbol,
			Type:      t.Type,
			Quantity:  t.Quantity,
			Price:     t.Price,
			Timestamp: t.Timestamp,
		}
		if r, ok := bySell[t.ID]; ok {
			gain := r.RealizedGainLoss
			matched := r.FullyMatched
			resp.RealizedGainLoss = &gain
			resp.FullyMatched = &matched
		}
		responses = append(responses, resp)
	}

	return &model.UserLedger{
		Transactions:        responses,
		Warnings:            warnings,
		InvalidTransactions: splitJoined(matchErr),
	}, nil
}

// DeleteTransaction removes a trade from the ledger.
func (s *TransactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	return s.transactionRepo.DeleteTransaction(ctx, transactionID)
}
