package repository

import (
	"context"
	"testing"
	"time"

	"github.com/MMN3003/tokenrates/src/cron/domain"
	"github.com/MMN3003/tokenrates/src/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCronRepo(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("SaveGetDelete", func(t *testing.T) {
		r := NewCronRepo(logger.Nop())
		started := time.Now().UTC()

		saved, err := r.SaveCron(ctx, &domain.Cron{ID: id, StartedAt: started})
		require.NoError(t, err)
		assert.Equal(t, id, saved.ID)

		got, err := r.GetCronByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, started, got.StartedAt)

		require.NoError(t, r.DeleteCron(ctx, id))
		got, err = r.GetCronByID(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("DuplicateRejected", func(t *testing.T) {
		r := NewCronRepo(logger.Nop())

		_, err := r.SaveCron(ctx, &domain.Cron{ID: id})
		require.NoError(t, err)

		_, err = r.SaveCron(ctx, &domain.Cron{ID: id})
		assert.ErrorIs(t, err, domain.ErrCronRunning)

		require.NoError(t, r.DeleteCron(ctx, id))
		_, err = r.SaveCron(ctx, &domain.Cron{ID: id})
		assert.NoError(t, err)
	})

	t.Run("CanceledContext", func(t *testing.T) {
		r := NewCronRepo(logger.Nop())
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := r.SaveCron(cctx, &domain.Cron{ID: id})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
