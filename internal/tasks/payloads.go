package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// 任务类型常量，确保队列生产者与消费者一致。
const (
	TypeApplicationsPurge = "applications:purge"
)

// ApplicationsPurgePayload 描述一次投递补偿清理。
type ApplicationsPurgePayload struct {
	JobID         string `json:"job_id"`
	CorrelationID string `json:"correlation_id"`
}

// NewApplicationsPurgeTask 构造清理某职位残留投递的任务。
func NewApplicationsPurgeTask(jobID, correlationID string, opts ...asynq.Option) (*asynq.Task, error) {
	payload, err := json.Marshal(ApplicationsPurgePayload{
		JobID:         jobID,
		CorrelationID: correlationID,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeApplicationsPurge, payload, opts...), nil
}
