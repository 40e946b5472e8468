package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// maxRefreshTimeout bounds one scheduled override refresh.
const maxRefreshTimeout = time.Minute

// Scheduler periodically reloads the override snapshot from the store. A
// refresh that is still running when the next tick fires makes that tick
// a no-op, so a slow database never stacks up queries.
type Scheduler struct {
	cron    *cron.Cron
	engine  *Engine
	timeout time.Duration
	log     *slog.Logger
}

// NewScheduler creates a Scheduler that refreshes overrides every
// refreshInterval. Each run gets at most min(refreshInterval, 1m).
func NewScheduler(
	eng *Engine,
	refreshInterval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	c := cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DiscardLogger),
	))

	s := &Scheduler{
		cron:    c,
		engine:  eng,
		timeout: min(refreshInterval, maxRefreshTimeout),
		log:     log,
	}

	if _, err := c.AddFunc(
		"@every "+refreshInterval.String(),
		s.runOverrideRefresh,
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("override scheduler started", "timeout", s.timeout)
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for a running refresh to
// finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("override scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runOverrideRefresh() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()
	if err := s.engine.RefreshOverrides(ctx); err != nil {
		s.log.Error("scheduled override refresh failed",
			"error", err,
			"active", s.engine.Overrides().Len(),
		)
		return
	}
	s.log.Debug("scheduled override refresh done", "duration", time.Since(start))
}
