package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrCronRunning is returned when a job with the same id is already in flight.
var ErrCronRunning = errors.New("cron job already running")

// Cron marks a job run that is currently in progress.
type Cron struct {
	ID        uuid.UUID
	StartedAt time.Time
}

type CronRepository interface {
	SaveCron(ctx context.Context, c *Cron) (*Cron, error)
	GetCronByID(ctx context.Context, id uuid.UUID) (*Cron, error)
	DeleteCron(ctx context.Context, id uuid.UUID) error
}

type CronUseCase interface {
	CreateCron(ctx context.Context, id uuid.UUID) error
	DeleteCron(ctx context.Context, id uuid.UUID) error
}
