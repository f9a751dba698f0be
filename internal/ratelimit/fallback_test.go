package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"
)

// stubBackend scripts the shared backend's behavior per call.
type stubBackend struct {
	allowed bool
	err     error
	calls   int
}

func (s *stubBackend) allow(ctx context.Context, key string) (bool, error) {
	s.calls++
	return s.allowed, s.err
}

func TestFallback_UsesPrimaryWhenHealthy(t *testing.T) {
	primary := &stubBackend{allowed: false}
	f := &Fallback{primary: primary, local: NewMemory(time.Hour)}

	if f.Allow(context.Background(), IPKey("203.0.113.7")) {
		t.Fatal("primary verdict should be honored")
	}
	if primary.calls != 1 {
		t.Fatalf("expected 1 primary call, got %d", primary.calls)
	}
	if f.local.Len() != 0 {
		t.Fatal("local limiter should be untouched while primary is healthy")
	}
}

func TestFallback_DegradesToLocalOnError(t *testing.T) {
	primary := &stubBackend{err: errors.New("connection refused")}
	f := &Fallback{primary: primary, local: NewMemory(time.Hour)}
	ctx := context.Background()

	// The window is still enforced through the local limiter
	if !f.Allow(ctx, WalletKey("0xabc")) {
		t.Fatal("first request through fallback should be allowed")
	}
	if f.Allow(ctx, WalletKey("0xabc")) {
		t.Fatal("second request through fallback should be blocked")
	}
	if !f.degraded.Load() {
		t.Fatal("fallback should be marked degraded")
	}
}

func TestFallback_RecoversWhenPrimaryReturns(t *testing.T) {
	primary := &stubBackend{err: errors.New("connection refused")}
	f := &Fallback{primary: primary, local: NewMemory(time.Hour)}
	ctx := context.Background()

	f.Allow(ctx, IPKey("203.0.113.7"))
	if !f.degraded.Load() {
		t.Fatal("expected degraded state")
	}

	primary.err = nil
	primary.allowed = true
	if !f.Allow(ctx, IPKey("203.0.113.9")) {
		t.Fatal("recovered primary verdict should be honored")
	}
	if f.degraded.Load() {
		t.Fatal("degraded flag should clear once primary answers")
	}
}

func TestFallback_InfrastructureErrorNeverBlocksFirstRequest(t *testing.T) {
	primary := &stubBackend{err: errors.New("timeout")}
	f := &Fallback{primary: primary, local: NewMemory(time.Hour)}

	// A backend outage must not reject a key that has not dispensed yet
	if !f.Allow(context.Background(), IPKey("198.51.100.1")) {
		t.Fatal("outage alone must not fail the request")
	}
}
