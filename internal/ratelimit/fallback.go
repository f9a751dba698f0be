package ratelimit

import (
	"context"
	"sync/atomic"

	"suifaucet/backend/internal/metrics"
	"suifaucet/backend/pkg/logger"
)

// backend is a limiter attempt that can fail for infrastructure reasons.
type backend interface {
	allow(ctx context.Context, key string) (bool, error)
}

// Fallback tries the shared backend first and degrades to the process-local
// limiter while the shared backend is erroring. Degradation and recovery are
// each logged once, not per request.
type Fallback struct {
	primary  backend
	local    *Memory
	degraded atomic.Bool
}

func NewFallback(primary *Redis, local *Memory) *Fallback {
	return &Fallback{primary: primary, local: local}
}

func (f *Fallback) Allow(ctx context.Context, key string) bool {
	allowed, err := f.primary.allow(ctx, key)
	if err == nil {
		if f.degraded.CompareAndSwap(true, false) {
			logger.Info("rate limit backend recovered, leaving in-memory fallback")
			metrics.RateLimitFallbackActive.Set(0)
		}
		return allowed
	}

	if f.degraded.CompareAndSwap(false, true) {
		logger.Warn("rate limit backend unreachable, using in-memory fallback", "error", err)
		metrics.RateLimitFallbackActive.Set(1)
	}
	return f.local.Allow(ctx, key)
}

var _ Limiter = (*Fallback)(nil)
