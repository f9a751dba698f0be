//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"suifaucet/backend/internal/model"
	"suifaucet/backend/pkg/snowflake"
)

// ErrNoPendingRequest is returned when a status transition targets a row
// that is missing or has already left the pending state.
var ErrNoPendingRequest = errors.New("no pending faucet request")

// CreateFaucetRequestParams carries the immutable provenance of one dispense
// attempt.
type CreateFaucetRequestParams struct {
	WalletAddress string
	Amount        int64
	IPAddress     string
	UserAgent     string
}

// FaucetRequestRepository defines the interface for ledger row storage.
type FaucetRequestRepository interface {
	Create(ctx context.Context, params CreateFaucetRequestParams) (*model.FaucetRequest, error)
	GetByID(ctx context.Context, id int64) (*model.FaucetRequest, error)
	MarkCompleted(ctx context.Context, id int64, txHash string, completedAt time.Time) error
	MarkFailed(ctx context.Context, id int64, errorMessage string) error
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) ([]model.StatusCount, error)
	ListRecent(ctx context.Context, limit int) ([]model.FaucetRequest, error)
}

type faucetRequestRepository struct {
	db *sql.DB
}

// NewFaucetRequestRepository creates a new sqlite-backed ledger repository.
func NewFaucetRequestRepository(db *sql.DB) FaucetRequestRepository {
	return &faucetRequestRepository{db: db}
}

// Create inserts a new ledger row in the pending state.
func (r *faucetRequestRepository) Create(ctx context.Context, params CreateFaucetRequestParams) (*model.FaucetRequest, error) {
	id := snowflake.NextID()
	now := time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO faucet_requests (id, wallet_address, amount, ip_address, user_agent, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, id, params.WalletAddress, params.Amount, params.IPAddress, params.UserAgent, model.StatusPending, formatTime(now))
	if err != nil {
		return nil, fmt.Errorf("insert faucet request: %w", err)
	}

	return &model.FaucetRequest{
		ID:            id,
		WalletAddress: params.WalletAddress,
		Amount:        params.Amount,
		IPAddress:     params.IPAddress,
		UserAgent:     params.UserAgent,
		Status:        model.StatusPending,
		CreatedAt:     now,
	}, nil
}

// GetByID retrieves a single ledger row.
func (r *faucetRequestRepository) GetByID(ctx context.Context, id int64) (*model.FaucetRequest, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, wallet_address, amount, ip_address, user_agent, status, tx_hash, error_message, created_at, completed_at
		FROM faucet_requests
		WHERE id = ?
	`, id)
	return scanFaucetRequest(row)
}

// MarkCompleted transitions a pending row to completed. The status guard in
// the WHERE clause makes the transition single-shot.
func (r *faucetRequestRepository) MarkCompleted(ctx context.Context, id int64, txHash string, completedAt time.Time) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE faucet_requests
		SET status = ?, tx_hash = ?, completed_at = ?
		WHERE id = ? AND status = ?
	`, model.StatusCompleted, txHash, formatTime(completedAt), id, model.StatusPending)
	if err != nil {
		return fmt.Errorf("mark completed: %w", err)
	}
	return requireTransition(result)
}

// MarkFailed transitions a pending row to failed with a descriptive message.
func (r *faucetRequestRepository) MarkFailed(ctx context.Context, id int64, errorMessage string) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE faucet_requests
		SET status = ?, error_message = ?
		WHERE id = ? AND status = ?
	`, model.StatusFailed, errorMessage, id, model.StatusPending)
	if err != nil {
		return fmt.Errorf("mark failed: %w", err)
	}
	return requireTransition(result)
}

func (r *faucetRequestRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM faucet_requests`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count faucet requests: %w", err)
	}
	return count, nil
}

func (r *faucetRequestRepository) CountByStatus(ctx context.Context) ([]model.StatusCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT status, COUNT(*)
		FROM faucet_requests
		GROUP BY status
		ORDER BY status
	`)
	if err != nil {
		return nil, fmt.Errorf("count by status: %w", err)
	}
	defer rows.Close()

	var counts []model.StatusCount
	for rows.Next() {
		var sc model.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		counts = append(counts, sc)
	}
	return counts, rows.Err()
}

// ListRecent returns the newest rows first.
func (r *faucetRequestRepository) ListRecent(ctx context.Context, limit int) ([]model.FaucetRequest, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, wallet_address, amount, ip_address, user_agent, status, tx_hash, error_message, created_at, completed_at
		FROM faucet_requests
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent requests: %w", err)
	}
	defer rows.Close()

	var requests []model.FaucetRequest
	for rows.Next() {
		request, err := scanFaucetRequestRows(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *request)
	}
	return requests, rows.Err()
}

func requireTransition(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNoPendingRequest
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanFaucetRequest(row *sql.Row) (*model.FaucetRequest, error) {
	return scanFaucetRequestRows(row)
}

func scanFaucetRequestRows(row rowScanner) (*model.FaucetRequest, error) {
	var (
		request      model.FaucetRequest
		txHash       sql.NullString
		errorMessage sql.NullString
		createdAt    string
		completedAt  sql.NullString
	)
	err := row.Scan(
		&request.ID, &request.WalletAddress, &request.Amount,
		&request.IPAddress, &request.UserAgent, &request.Status,
		&txHash, &errorMessage, &createdAt, &completedAt,
	)
	if err != nil {
		return nil, err
	}

	request.TxHash = stringPtr(txHash)
	request.ErrorMessage = stringPtr(errorMessage)
	if request.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	if request.CompletedAt, err = timePtr(completedAt); err != nil {
		return nil, fmt.Errorf("parse completed_at: %w", err)
	}
	return &request, nil
}
