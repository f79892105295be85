package usecase

import (
	"context"
	"time"

	"github.com/MMN3003/tokenrates/src/cron/domain"
	"github.com/MMN3003/tokenrates/src/logger"
	"github.com/google/uuid"
)

var _ domain.CronUseCase = (*Service)(nil)

type Service struct {
	cronRepo domain.CronRepository
	logger   *logger.Logger
	now      func() time.Time
}

func NewService(cronRepo domain.CronRepository, logg *logger.Logger) *Service {
	s := &Service{
		cronRepo: cronRepo,
		logger:   logg,
		now:      time.Now,
	}
	return s
}

// CreateCron claims the run slot for id. It fails with domain.ErrCronRunning
// while a previous run of the same job has not been deleted yet.
func (s *Service) CreateCron(ctx context.Context, id uuid.UUID) error {
	_, err := s.cronRepo.SaveCron(ctx, &domain.Cron{ID: id, StartedAt: s.now().UTC()})
	if err != nil {
		s.logger.Debugf("cron %s not started: %v", id, err)
	}
	return err
}

func (s *Service) DeleteCron(ctx context.Context, id uuid.UUID) error {
	return s.cronRepo.DeleteCron(ctx, id)
}
