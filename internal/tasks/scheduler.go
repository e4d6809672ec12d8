package tasks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

type correlationKey struct{}

// WithCorrelationID 把请求的 Correlation ID 放进 ctx，入队时写入任务负载。
func WithCorrelationID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, correlationKey{}, id)
}

// CorrelationID 取出 ctx 中的 Correlation ID。
func CorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(correlationKey{}).(string)
	return id
}

// Enqueuer 是 *asynq.Client 的子集。
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Scheduler 把级联删除失败后的清理工作投递到 asynq 队列。
type Scheduler struct {
	client Enqueuer
}

// NewScheduler 构造 Scheduler。
func NewScheduler(client Enqueuer) *Scheduler {
	return &Scheduler{client: client}
}

// SchedulePurge 入队一个 applications:purge 任务。
// 以 job id 作为 TaskID，同一职位重复调度时只会保留一个待处理任务。
func (s *Scheduler) SchedulePurge(ctx context.Context, jobID string) error {
	task, err := NewApplicationsPurgeTask(jobID, CorrelationID(ctx),
		asynq.TaskID(TypeApplicationsPurge+":"+jobID),
		asynq.MaxRetry(10),
		asynq.Timeout(time.Minute),
		asynq.Retention(24*time.Hour),
	)
	if err != nil {
		return fmt.Errorf("build purge task: %w", err)
	}

	// 入队不应随请求取消而失败。
	if _, err := s.client.EnqueueContext(context.WithoutCancel(ctx), task); err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			return nil
		}
		return fmt.Errorf("enqueue purge task: %w", err)
	}
	return nil
}
