package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (r *recordingEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	r.tasks = append(r.tasks, task)
	if r.err != nil {
		return nil, r.err
	}
	return &asynq.TaskInfo{Type: task.Type()}, nil
}

func TestSchedulePurgeEnqueuesPayload(t *testing.T) {
	rec := &recordingEnqueuer{}
	s := NewScheduler(rec)

	ctx := WithCorrelationID(context.Background(), "req-42")
	require.NoError(t, s.SchedulePurge(ctx, "job-1"))

	require.Len(t, rec.tasks, 1)
	assert.Equal(t, TypeApplicationsPurge, rec.tasks[0].Type())

	var payload ApplicationsPurgePayload
	require.NoError(t, json.Unmarshal(rec.tasks[0].Payload(), &payload))
	assert.Equal(t, ApplicationsPurgePayload{JobID: "job-1", CorrelationID: "req-42"}, payload)
}

func TestSchedulePurgeIgnoresDuplicateTask(t *testing.T) {
	s := NewScheduler(&recordingEnqueuer{err: asynq.ErrTaskIDConflict})
	assert.NoError(t, s.SchedulePurge(context.Background(), "job-1"))
}

func TestSchedulePurgeReturnsEnqueueError(t *testing.T) {
	s := NewScheduler(&recordingEnqueuer{err: errors.New("redis unavailable")})
	err := s.SchedulePurge(context.Background(), "job-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis unavailable")
}

func TestCorrelationIDMissing(t *testing.T) {
	assert.Empty(t, CorrelationID(context.Background()))
	assert.Empty(t, CorrelationID(WithCorrelationID(context.Background(), "")))
}
