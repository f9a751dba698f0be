//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"database/sql"
	"time"

	"suifaucet/backend/pkg/logger"
)

// checkTimeout bounds each individual dependency probe.
const checkTimeout = 5 * time.Second

// ChainProbe is the minimal fullnode surface the health check needs.
type ChainProbe interface {
	LatestCheckpoint(ctx context.Context) (uint64, error)
}

// HealthStatus reports each dependency probe independently. Healthy is true
// only when every check passed.
type HealthStatus struct {
	Healthy      bool
	Database     bool
	SuiNetwork   bool
	FaucetWallet bool
	Environment  bool
}

// HealthService probes the faucet's dependencies without ever letting one
// probe's failure escape its own boundary.
type HealthService interface {
	Check(ctx context.Context) HealthStatus
}

type healthService struct {
	db     *sql.DB
	chain  ChainProbe
	wallet FundingWallet
}

// NewHealthService creates the health prober. wallet may be nil when no
// funding key is configured.
func NewHealthService(db *sql.DB, chain ChainProbe, wallet FundingWallet) HealthService {
	return &healthService{db: db, chain: chain, wallet: wallet}
}

func (s *healthService) Check(ctx context.Context) HealthStatus {
	status := HealthStatus{Environment: s.wallet != nil}

	status.Database = s.checkDatabase(ctx)
	status.SuiNetwork = s.checkChain(ctx)
	status.FaucetWallet = s.checkWallet(ctx)

	status.Healthy = status.Database && status.SuiNetwork && status.FaucetWallet && status.Environment
	return status
}

func (s *healthService) checkDatabase(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		logger.Error("database health check failed", "error", err)
		return false
	}
	return true
}

func (s *healthService) checkChain(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	if _, err := s.chain.LatestCheckpoint(ctx); err != nil {
		logger.Error("sui network health check failed", "error", err)
		return false
	}
	return true
}

func (s *healthService) checkWallet(ctx context.Context) bool {
	if s.wallet == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	balance, err := s.wallet.Balance(ctx)
	if err != nil {
		logger.Error("faucet wallet health check failed", "error", err)
		return false
	}
	return balance > 0
}
