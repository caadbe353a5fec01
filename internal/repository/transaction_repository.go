package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jdevries/stock-tracker-backend/internal/apperrors"
	"github.com/jdevries/stock-tracker-backend/internal/model"
)

// TransactionRepository provides data access methods for the trade table.
// The table is the audit ledger: rows are inserted when trades execute
// and are never updated.
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new TransactionRepository with the provided database connection.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// InsertTransaction records one executed trade.
func (s *TransactionRepository) InsertTransaction(ctx context.Context, t *model.Transaction) error {
	query := `
		INSERT INTO trade (id, user_id, symbol, type, quantity, price, timestamp, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		t.ID,
		t.UserID,
		t.Symbol,
		string(t.Type),
		t.Quantity,
		t.Price.String(),
		t.Timestamp.UTC().Format(time.RFC3339),
		t.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert trade: %w", err)
	}

	return nil
}

// GetTransactionsByUser retrieves the full ledger for one user, sorted
// by execution time ascending. The engine re-orders internally, but a
// stable ascending order keeps API responses readable.
func (s *TransactionRepository) GetTransactionsByUser(userID string) ([]model.Transaction, error) {
	query := `
		SELECT id, user_id, symbol, type, quantity, price, timestamp, created_at
		FROM trade
		WHERE user_id = ?
		ORDER BY timestamp ASC, created_at ASC
	`

	rows, err := s.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query trade table: %w", err)
	}
	defer rows.Close()

	transactions := []model.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trade table: %w", err)
	}

	return transactions, nil
}

// GetTransaction retrieves a single transaction by its ID.
// Returns apperrors.ErrTransactionNotFound when no such row exists.
func (s *TransactionRepository) GetTransaction(transactionID string) (model.Transaction, error) {
	query := `
		SELECT id, user_id, symbol, type, quantity, price, timestamp, created_at
		FROM trade
		WHERE id = ?
	`

	row := s.db.QueryRow(query, transactionID)
	t, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Transaction{}, apperrors.ErrTransactionNotFound
	}
	if err != nil {
		return model.Transaction{}, err
	}

	return t, nil
}

// DeleteTransaction removes a trade from the ledger. The ledger is
// otherwise append-only; deletion exists for repairing erroneous entries.
// Returns apperrors.ErrTransactionNotFound when no such row exists.
func (s *TransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM trade WHERE id = ?`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete trade: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTransactionNotFound
	}

	return nil
}

// ListUserIDs returns every user that has at least one recorded trade.
func (s *TransactionRepository) ListUserIDs() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT user_id FROM trade ORDER BY user_id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query trade table: %w", err)
	}
	defer rows.Close()

	userIDs := []string{}
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("failed to scan user id: %w", err)
		}
		userIDs = append(userIDs, userID)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trade table: %w", err)
	}

	return userIDs, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (model.Transaction, error) {
	var t model.Transaction
	var typeStr, priceStr, timestampStr, createdAtStr string

	err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.Symbol,
		&typeStr,
		&t.Quantity,
		&priceStr,
		&timestampStr,
		&createdAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Transaction{}, err
		}
		return model.Transaction{}, fmt.Errorf("failed to scan trade table results: %w", err)
	}

	t.Type = model.TransactionType(typeStr)

	t.Price, err = decimal.NewFromString(priceStr)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to parse price: %w", err)
	}

	t.Timestamp, err = ParseTime(timestampStr)
	if err != nil || t.Timestamp.IsZero() {
		return model.Transaction{}, fmt.Errorf("failed to parse timestamp: %w", err)
	}

	t.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil || t.CreatedAt.IsZero() {
		return model.Transaction{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return t, nil
}
