//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"suifaucet/backend/internal/model"
	"suifaucet/backend/internal/ratelimit"
	"suifaucet/backend/internal/repository"
	"suifaucet/backend/internal/sui"
	"suifaucet/backend/pkg/logger"
)

// recentRequestLimit bounds the stats endpoint's recent-request list.
const recentRequestLimit = 10

// FundingWallet is the custodial account tokens are dispensed from.
type FundingWallet interface {
	Address() string
	Balance(ctx context.Context) (uint64, error)
	Transfer(ctx context.Context, recipient string, amount uint64) (string, error)
}

// DispenseParams carries one dispense attempt's input and provenance.
type DispenseParams struct {
	WalletAddress string
	IPAddress     string
	UserAgent     string
}

// DispenseResult is a successful dispense.
type DispenseResult struct {
	RequestID   int64
	Message     string
	TxHash      string
	AmountMist  int64
	ExplorerURL string
}

// Stats aggregates the ledger for the admin view.
type Stats struct {
	TotalRequests int64
	StatusCounts  []model.StatusCount
	Recent        []model.FaucetRequest
}

// FaucetService drives one dispense attempt end to end and aggregates
// ledger statistics.
type FaucetService interface {
	Dispense(ctx context.Context, params DispenseParams) (*DispenseResult, error)
	Stats(ctx context.Context) (*Stats, error)
}

// FaucetConfig is the process-wide dispensing configuration.
type FaucetConfig struct {
	AmountMist    int64
	ExplorerURL   string
	SubmitTimeout time.Duration
}

type faucetService struct {
	requests repository.FaucetRequestRepository
	limiter  ratelimit.Limiter
	wallet   FundingWallet
	cfg      FaucetConfig
}

// NewFaucetService creates the dispense orchestrator. wallet may be nil when
// no funding key is configured; dispense calls then fail with
// ErrNotConfigured.
func NewFaucetService(requests repository.FaucetRequestRepository, limiter ratelimit.Limiter, wallet FundingWallet, cfg FaucetConfig) FaucetService {
	if cfg.SubmitTimeout <= 0 {
		cfg.SubmitTimeout = 30 * time.Second
	}
	return &faucetService{requests: requests, limiter: limiter, wallet: wallet, cfg: cfg}
}

var suiAddressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

// IsValidSuiAddress reports whether address is 0x followed by exactly 64 hex
// characters.
func IsValidSuiAddress(address string) bool {
	return suiAddressPattern.MatchString(address)
}

func (s *faucetService) Dispense(ctx context.Context, params DispenseParams) (*DispenseResult, error) {
	address := strings.TrimSpace(params.WalletAddress)
	if !IsValidSuiAddress(address) {
		return nil, ErrInvalidAddress
	}

	// IP first for short-circuiting; either key failing blocks equally.
	// A rejected request leaves no ledger row.
	if !s.limiter.Allow(ctx, ratelimit.IPKey(params.IPAddress)) {
		return nil, &RateLimitError{Scope: ScopeIP}
	}
	if !s.limiter.Allow(ctx, ratelimit.WalletKey(address)) {
		return nil, &RateLimitError{Scope: ScopeWallet}
	}

	if s.wallet == nil {
		return nil, ErrNotConfigured
	}

	// The pending row is written before any chain call so an in-flight or
	// crashed attempt stays observable.
	request, err := s.requests.Create(ctx, repository.CreateFaucetRequestParams{
		WalletAddress: address,
		Amount:        s.cfg.AmountMist,
		IPAddress:     params.IPAddress,
		UserAgent:     params.UserAgent,
	})
	if err != nil {
		return nil, fmt.Errorf("create ledger row: %w", err)
	}

	balance, err := s.wallet.Balance(ctx)
	if err != nil {
		logger.Error("query faucet balance", "requestId", request.ID, "error", err)
		s.markFailed(ctx, request.ID, "Failed to query faucet balance")
		return nil, &SubmitError{Code: sui.CodeUnknown, Technical: "Failed to query faucet balance"}
	}

	required := uint64(s.cfg.AmountMist)
	if balance < required {
		message := fmt.Sprintf("Insufficient faucet balance. Available: %s SUI, Required: %s SUI",
			sui.FormatMist(balance), sui.FormatMist(required))
		s.markFailed(ctx, request.ID, message)
		return nil, &InsufficientFundsError{
			AvailableMist: balance,
			RequiredMist:  required,
			FaucetAddress: s.wallet.Address(),
		}
	}

	logger.Info("dispensing",
		"requestId", request.ID,
		"faucetAddress", s.wallet.Address(),
		"balanceMist", balance,
		"amountMist", required,
		"recipient", address)

	submitCtx, cancel := context.WithTimeout(ctx, s.cfg.SubmitTimeout)
	defer cancel()

	digest, err := s.wallet.Transfer(submitCtx, address, required)
	if err != nil {
		submitErr := toSubmitError(err)
		logger.Error("transfer failed", "requestId", request.ID, "code", submitErr.Code, "error", err)
		s.markFailed(ctx, request.ID, submitErr.Technical)
		return nil, submitErr
	}

	if err := s.requests.MarkCompleted(ctx, request.ID, digest, time.Now().UTC()); err != nil {
		// The transfer is irreversible; report success and leave the
		// row for reconciliation.
		logger.Error("mark completed", "requestId", request.ID, "txHash", digest, "error", err)
	}

	return &DispenseResult{
		RequestID:   request.ID,
		Message:     fmt.Sprintf("Successfully sent %s SUI to %s", sui.FormatMist(required), address),
		TxHash:      digest,
		AmountMist:  s.cfg.AmountMist,
		ExplorerURL: s.cfg.ExplorerURL + digest,
	}, nil
}

func (s *faucetService) Stats(ctx context.Context) (*Stats, error) {
	total, err := s.requests.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count requests: %w", err)
	}
	counts, err := s.requests.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count by status: %w", err)
	}
	recent, err := s.requests.ListRecent(ctx, recentRequestLimit)
	if err != nil {
		return nil, fmt.Errorf("list recent: %w", err)
	}
	return &Stats{TotalRequests: total, StatusCounts: counts, Recent: recent}, nil
}

func (s *faucetService) markFailed(ctx context.Context, id int64, message string) {
	if err := s.requests.MarkFailed(ctx, id, message); err != nil {
		logger.Error("mark failed", "requestId", id, "error", err)
	}
}

func toSubmitError(err error) *SubmitError {
	var transferErr *sui.TransferError
	if errors.As(err, &transferErr) {
		return &SubmitError{Code: transferErr.Code, Technical: transferErr.Message}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &SubmitError{Code: sui.CodeTimeout, Technical: "Transaction confirmation timed out"}
	}
	return &SubmitError{Code: sui.CodeUnknown, Technical: "Transaction failed"}
}
