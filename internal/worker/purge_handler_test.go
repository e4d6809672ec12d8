package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickhire/internal/database"
	"quickhire/internal/store"
	"quickhire/internal/tasks"
	"quickhire/internal/testutil"
)

type failingPurger struct{ err error }

func (f failingPurger) DeleteByJob(context.Context, string) (int64, error) { return 0, f.err }

func TestPurgeTaskHandlerRemovesOrphans(t *testing.T) {
	db := testutil.NewTestDB(t)
	jobs := store.NewJobStore(db, nil, nil)
	apps := store.NewApplicationStore(db, jobs)

	orphanJob := "5f0c3c4e-2b8a-4d8e-8f1a-0e6a7b9c1d23"
	for _, email := range []string{"a@example.com", "b@example.com"} {
		require.NoError(t, db.Create(&database.Application{
			JobID:      orphanJob,
			Name:       "Orphan",
			Email:      email,
			ResumeLink: "https://example.com/cv.pdf",
			CoverNote:  "Left behind after a failed cascade.",
			CreatedAt:  time.Now(),
		}).Error)
	}

	task, err := tasks.NewApplicationsPurgeTask(orphanJob, "corr-1")
	require.NoError(t, err)

	h := NewPurgeTaskHandler(apps, nil)
	require.NoError(t, h.ProcessTask(context.Background(), task))

	var count int64
	require.NoError(t, db.Model(&database.Application{}).Count(&count).Error)
	assert.Zero(t, count)

	// 重复投递同一任务不报错。
	require.NoError(t, h.ProcessTask(context.Background(), task))
}

func TestPurgeTaskHandlerBadPayloadSkipsRetry(t *testing.T) {
	h := NewPurgeTaskHandler(failingPurger{}, nil)

	err := h.ProcessTask(context.Background(), asynq.NewTask(tasks.TypeApplicationsPurge, []byte("{")))
	assert.ErrorIs(t, err, asynq.SkipRetry)

	err = h.ProcessTask(context.Background(), asynq.NewTask(tasks.TypeApplicationsPurge, []byte(`{"job_id":" "}`)))
	assert.ErrorIs(t, err, asynq.SkipRetry)
}

func TestPurgeTaskHandlerPropagatesStoreError(t *testing.T) {
	boom := errors.New("db down")
	h := NewPurgeTaskHandler(failingPurger{err: boom}, nil)

	task, err := tasks.NewApplicationsPurgeTask("job", "")
	require.NoError(t, err)
	assert.ErrorIs(t, h.ProcessTask(context.Background(), task), boom)
}
