package model

import "time"

// Request status lifecycle: pending is assigned at creation, then exactly
// one transition to completed or failed.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// FaucetRequest is one dispense attempt and its outcome. TxHash is set only
// on completed rows, ErrorMessage only on failed ones.
type FaucetRequest struct {
	ID            int64
	WalletAddress string
	Amount        int64
	IPAddress     string
	UserAgent     string
	Status        string
	TxHash        *string
	ErrorMessage  *string
	CreatedAt     time.Time
	CompletedAt   *time.Time
}

// StatusCount is one bucket of the status distribution used by the stats
// endpoint.
type StatusCount struct {
	Status string
	Count  int64
}
