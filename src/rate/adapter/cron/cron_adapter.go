package cron

import (
	"context"
	"errors"
	"fmt"

	"github.com/MMN3003/tokenrates/src/cron/domain"
	"github.com/MMN3003/tokenrates/src/logger"
	"github.com/google/uuid"
)

// RunGuard lets at most one run of a job id execute at a time.
type RunGuard interface {
	// RunExclusive calls fn while holding the slot for id. It reports false
	// without calling fn when another run still holds the slot.
	RunExclusive(ctx context.Context, id uuid.UUID, fn func()) (bool, error)
}

var _ RunGuard = (*CronPort)(nil)

// NewCronPort backs a RunGuard with the cron run registry.
func NewCronPort(cronService domain.CronUseCase, logg *logger.Logger) *CronPort {
	return &CronPort{cronService: cronService, logger: logg}
}

type CronPort struct {
	cronService domain.CronUseCase
	logger      *logger.Logger
}

func (p *CronPort) RunExclusive(ctx context.Context, id uuid.UUID, fn func()) (bool, error) {
	if err := p.cronService.CreateCron(ctx, id); err != nil {
		if errors.Is(err, domain.ErrCronRunning) {
			return false, nil
		}
		return false, fmt.Errorf("claim run %s: %w", id, err)
	}
	defer func() {
		// released even when ctx was canceled mid-run
		if err := p.cronService.DeleteCron(context.WithoutCancel(ctx), id); err != nil {
			p.logger.Errorf("release run %s: %v", id, err)
		}
	}()

	fn()
	return true, nil
}
