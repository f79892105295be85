package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/MMN3003/tokenrates/src/cron/domain"
	"github.com/MMN3003/tokenrates/src/logger"
	"github.com/google/uuid"
)

var _ domain.CronRepository = (*CronRepo)(nil)

// ---------- REPO ----------

// CronRepo keeps in-flight job markers in process memory.
type CronRepo struct {
	mu    sync.Mutex
	crons map[uuid.UUID]domain.Cron
	log   *logger.Logger
}

func NewCronRepo(log *logger.Logger) *CronRepo {
	return &CronRepo{crons: make(map[uuid.UUID]domain.Cron), log: log}
}

// ---------- CRON CRUD ----------

func (r *CronRepo) SaveCron(ctx context.Context, c *domain.Cron) (*domain.Cron, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.crons[c.ID]; ok {
		return nil, fmt.Errorf("%w: %s since %s", domain.ErrCronRunning, c.ID, existing.StartedAt)
	}
	r.crons[c.ID] = *c
	out := *c
	return &out, nil
}

func (r *CronRepo) GetCronByID(ctx context.Context, id uuid.UUID) (*domain.Cron, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.crons[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CronRepo) DeleteCron(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.crons, id)
	return nil
}
