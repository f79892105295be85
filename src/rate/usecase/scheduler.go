package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/MMN3003/tokenrates/src/rate/domain"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

var RecomputeRatesCronID = uuid.MustParse("9b1f3c52-6a0e-4d7c-8f21-3e5d7a4c0b10")

var ErrSchedulerRunning = errors.New("rate scheduler already running")

// Start begins periodic recomputation at the configured interval.
func (e *Engine) Start() error {
	e.schedMu.Lock()
	defer e.schedMu.Unlock()

	if e.scheduler != nil {
		return ErrSchedulerRunning
	}

	c := cron.New(cron.WithChain(cron.Recover(e.logger.Cron())))
	spec := fmt.Sprintf("@every %s", e.interval)
	if _, err := c.AddFunc(spec, func() {
		e.handleScheduledRecompute(context.Background())
	}); err != nil {
		return fmt.Errorf("schedule rate recompute: %w", err)
	}
	c.Start()
	e.scheduler = c
	e.logger.Infof("rate recompute scheduled every %s", e.interval)
	return nil
}

// Stop halts the schedule and waits for an in-flight run to finish. It is a
// no-op when the scheduler is not running.
func (e *Engine) Stop() {
	e.schedMu.Lock()
	c := e.scheduler
	e.scheduler = nil
	e.schedMu.Unlock()

	if c == nil {
		return
	}
	<-c.Stop().Done()
	e.logger.Infof("rate recompute schedule stopped")
}

func (e *Engine) handleScheduledRecompute(ctx context.Context) {
	recompute := func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		e.recomputeLocked(domain.TriggerSchedule)
	}

	if e.cronGuard == nil {
		recompute()
		return
	}
	ran, err := e.cronGuard.RunExclusive(ctx, RecomputeRatesCronID, recompute)
	if err != nil {
		e.logger.Errorf("scheduled recompute: %v", err)
		return
	}
	if !ran {
		e.logger.Debugf("scheduled recompute skipped: previous run still in flight")
	}
}
