package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// RunFunc executes one sync run. Failures inside a run are the run's own
// concern; the scheduler keeps ticking regardless.
type RunFunc func(ctx context.Context)

// Config holds scheduler configuration.
type Config struct {
	Interval time.Duration // time between runs (default: 15m)
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Interval: 15 * time.Minute,
	}
}

// Scheduler periodically invokes a sync run.
type Scheduler struct {
	cfg    Config
	run    RunFunc
	logger *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a new Scheduler.
func New(cfg Config, run RunFunc, logger *slog.Logger) *Scheduler {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultConfig().Interval
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		cfg:    cfg,
		run:    run,
		logger: logger,
	}
}

// Start begins the scheduling loop.
func (s *Scheduler) Start(ctx context.Context) error {
	s.ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.loop()

	s.logger.Info("sync scheduler started", "interval", s.cfg.Interval)
	return nil
}

// Stop gracefully shuts down the scheduler, waiting for an in-flight run to
// finish or for ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) error {
	if s.cancel != nil {
		s.cancel()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("sync scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) loop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	// Run immediately on start.
	s.run(s.ctx)

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.run(s.ctx)
		}
	}
}
