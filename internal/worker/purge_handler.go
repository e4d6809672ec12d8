package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hibiken/asynq"

	"quickhire/internal/metrics"
	"quickhire/internal/tasks"
)

// ApplicationPurger 删除某职位下的全部投递，多次调用结果一致。
type ApplicationPurger interface {
	DeleteByJob(ctx context.Context, jobID string) (int64, error)
}

// PurgeTaskHandler 消费 applications:purge 任务。
type PurgeTaskHandler struct {
	apps   ApplicationPurger
	logger *slog.Logger
}

// NewPurgeTaskHandler 创建任务处理器。
func NewPurgeTaskHandler(apps ApplicationPurger, logger *slog.Logger) *PurgeTaskHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PurgeTaskHandler{apps: apps, logger: logger}
}

// ProcessTask 实现 asynq.Handler。负载无法解析时跳过重试。
func (h *PurgeTaskHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	log := h.logger

	var payload tasks.ApplicationsPurgePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Error("unmarshal task payload failed", slog.Any("error", err))
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}
	if strings.TrimSpace(payload.JobID) == "" {
		log.Error("purge task without job id, skipping")
		return fmt.Errorf("%w: empty job id", asynq.SkipRetry)
	}

	log = log.With(
		slog.String("correlation_id", payload.CorrelationID),
		slog.String("job_id", payload.JobID),
	)
	log.Info("purging orphaned applications")

	removed, err := h.apps.DeleteByJob(ctx, payload.JobID)
	if err != nil {
		log.Error("purge applications failed", slog.Any("error", err))
		return err
	}

	metrics.AddPurgedApplications(removed)
	log.Info("applications purged", slog.Int64("removed", removed))
	return nil
}
