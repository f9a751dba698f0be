package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Memory is the process-local limiter. It is the permanent backend when no
// shared store is configured and the degradation target when the shared
// store is unreachable. It is not safe across multiple process instances;
// that compromise keeps the faucet available during shared-backend outages.
type Memory struct {
	mu      sync.Mutex
	window  time.Duration
	entries map[string]time.Time
	now     func() time.Time
}

func NewMemory(window time.Duration) *Memory {
	return &Memory{
		window:  window,
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

// Allow grants a key at most once per window. Every call also sweeps expired
// entries so the map stays bounded.
func (m *Memory) Allow(_ context.Context, key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.sweepLocked(now)

	if last, ok := m.entries[key]; ok && now.Sub(last) < m.window {
		return false
	}
	m.entries[key] = now
	return true
}

// Sweep removes entries older than the window. The janitor calls this
// periodically so idle processes release memory too.
func (m *Memory) Sweep() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweepLocked(m.now())
}

func (m *Memory) sweepLocked(now time.Time) {
	for key, last := range m.entries {
		if now.Sub(last) >= m.window {
			delete(m.entries, key)
		}
	}
}

// Len reports the number of tracked keys.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

var _ Limiter = (*Memory)(nil)
