package session

import (
	"log/slog"
	"sync"
	"time"
)

// DefaultSweepPeriod is the interval between sweeper passes.
const DefaultSweepPeriod = 30 * time.Second

// Sweeper periodically evicts expired sessions from a Registry. It
// holds the registry lock only for the duration of each Sweep call,
// never across its own sleep.
type Sweeper struct {
	registry Registry
	period   time.Duration
	logger   *slog.Logger

	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewSweeper(registry Registry, period time.Duration, logger *slog.Logger) *Sweeper {
	if period <= 0 {
		period = DefaultSweepPeriod
	}
	return &Sweeper{
		registry: registry,
		period:   period,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// Start launches the background sweep loop. Call Stop to terminate it.
func (s *Sweeper) Start() {
	s.wg.Add(1)
	go s.run()
}

// Stop signals the loop and waits for it to exit. Safe to call more
// than once.
func (s *Sweeper) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
	})
	s.wg.Wait()
}

func (s *Sweeper) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.period)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			if evicted := s.registry.Sweep(now); evicted > 0 {
				s.logger.Info("evicted expired sessions", "evicted", evicted)
			}
		}
	}
}
