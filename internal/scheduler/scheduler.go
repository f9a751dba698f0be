package scheduler

import (
	"sync"
	"time"

	"suifaucet/backend/pkg/logger"
)

// Sweeper evicts expired entries from a rate limit store.
type Sweeper interface {
	Sweep()
}

// Scheduler periodically sweeps the in-memory rate limit store so idle
// deployments do not accumulate expired entries.
type Scheduler struct {
	sweeper  Sweeper
	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

func New(sweeper Sweeper, interval time.Duration) *Scheduler {
	return &Scheduler{
		sweeper:  sweeper,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("sweep scheduler started", "interval", s.interval)
}

func (s *Scheduler) Stop() {
	close(s.stopCh)
	s.wg.Wait()
	logger.Info("sweep scheduler stopped")
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweeper.Sweep()
		case <-s.stopCh:
			return
		}
	}
}
