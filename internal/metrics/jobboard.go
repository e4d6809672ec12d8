package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 投递结果标签取值。
const (
	SubmissionCreated   = "created"
	SubmissionDuplicate = "duplicate"
	SubmissionInactive  = "inactive"
	SubmissionInvalid   = "invalid"
	SubmissionNotFound  = "job_not_found"
	SubmissionError     = "error"
)

var (
	applicationSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "quickhire",
			Subsystem: "applications",
			Name:      "submissions_total",
			Help:      "按结果统计的投递请求数。",
		},
		[]string{"outcome"},
	)

	applicationsPurged = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "quickhire",
			Subsystem: "applications",
			Name:      "purged_total",
			Help:      "补偿任务删除的孤儿投递数。",
		},
	)
)

// ObserveSubmission 记录一次投递请求的结果。
func ObserveSubmission(outcome string) {
	applicationSubmissions.WithLabelValues(outcome).Inc()
}

// AddPurgedApplications 累加补偿任务删除的投递数。
func AddPurgedApplications(n int64) {
	if n > 0 {
		applicationsPurged.Add(float64(n))
	}
}
