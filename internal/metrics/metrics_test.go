package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestGinMiddlewareLabelsByRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(GinMiddleware())
	r.GET("/api/jobs/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	before := testutil.ToFloat64(requestTotal.WithLabelValues("GET", "/api/jobs/:id", "200"))
	unmatched := testutil.ToFloat64(requestTotal.WithLabelValues("GET", "unmatched", "404"))

	for _, path := range []string{"/api/jobs/a", "/api/jobs/b", "/nowhere"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, before+2, testutil.ToFloat64(requestTotal.WithLabelValues("GET", "/api/jobs/:id", "200")))
	assert.Equal(t, unmatched+1, testutil.ToFloat64(requestTotal.WithLabelValues("GET", "unmatched", "404")))
}

func TestAsynqMetricsMiddlewareCountsFailures(t *testing.T) {
	const taskType = "test:metrics"
	failing := AsynqMetricsMiddleware()(asynq.HandlerFunc(func(context.Context, *asynq.Task) error {
		return errors.New("boom")
	}))

	_ = failing.ProcessTask(context.Background(), asynq.NewTask(taskType, nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(taskProcessedTotal.WithLabelValues(taskType, "failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(taskFailedTotal.WithLabelValues(taskType)))
	assert.Equal(t, 0.0, testutil.ToFloat64(taskInProgress.WithLabelValues(taskType)))
}

func TestAsynqMetricsMiddlewareResultLabels(t *testing.T) {
	const taskType = "test:results"
	handler := AsynqMetricsMiddleware()(asynq.HandlerFunc(func(_ context.Context, task *asynq.Task) error {
		if string(task.Payload()) == "bad" {
			return fmt.Errorf("%w: bad payload", asynq.SkipRetry)
		}
		return nil
	}))

	assert.NoError(t, handler.ProcessTask(context.Background(), asynq.NewTask(taskType, []byte("ok"))))
	assert.Error(t, handler.ProcessTask(context.Background(), asynq.NewTask(taskType, []byte("bad"))))

	assert.Equal(t, 1.0, testutil.ToFloat64(taskProcessedTotal.WithLabelValues(taskType, "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(taskProcessedTotal.WithLabelValues(taskType, "skipped")))
	assert.Equal(t, 1.0, testutil.ToFloat64(taskFailedTotal.WithLabelValues(taskType)))
}

func TestJobboardCounters(t *testing.T) {
	before := testutil.ToFloat64(applicationSubmissions.WithLabelValues(SubmissionDuplicate))
	ObserveSubmission(SubmissionDuplicate)
	assert.Equal(t, before+1, testutil.ToFloat64(applicationSubmissions.WithLabelValues(SubmissionDuplicate)))

	purged := testutil.ToFloat64(applicationsPurged)
	AddPurgedApplications(3)
	AddPurgedApplications(0)
	assert.Equal(t, purged+3, testutil.ToFloat64(applicationsPurged))
}
