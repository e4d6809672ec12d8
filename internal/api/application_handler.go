package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"quickhire/internal/jobboard"
	"quickhire/internal/metrics"
	"quickhire/internal/pagination"
	"quickhire/internal/store"
)

// ApplicationHandler 处理 /api/applications 下的请求。
type ApplicationHandler struct {
	apps *store.ApplicationStore
}

func NewApplicationHandler(apps *store.ApplicationStore) *ApplicationHandler {
	return &ApplicationHandler{apps: apps}
}

type statusRequest struct {
	Status string `json:"status"`
}

// SubmitApplication POST /api/applications
func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	var in jobboard.ApplicationInput
	if !bindJSON(c, &in) {
		return
	}

	view, err := h.apps.Submit(c.Request.Context(), in)
	metrics.ObserveSubmission(submissionOutcome(err))
	if err != nil {
		respondError(c, err, msgJobNotFound)
		return
	}
	Success(c, http.StatusCreated, "Application submitted successfully!", view)
}

func submissionOutcome(err error) string {
	if _, ok := jobboard.AsValidationError(err); ok {
		return metrics.SubmissionInvalid
	}
	switch {
	case err == nil:
		return metrics.SubmissionCreated
	case errors.Is(err, jobboard.ErrNotFound):
		return metrics.SubmissionNotFound
	case errors.Is(err, jobboard.ErrJobInactive):
		return metrics.SubmissionInactive
	case errors.Is(err, jobboard.ErrDuplicate):
		return metrics.SubmissionDuplicate
	default:
		return metrics.SubmissionError
	}
}

// ListApplications GET /api/applications?jobId=&status=&page=&limit=
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	filter := store.ApplicationFilter{
		JobID:  c.Query("jobId"),
		Status: c.Query("status"),
		Page:   pagination.Applications.Parse(c.Query("page"), c.Query("limit")),
	}

	page, err := h.apps.ListAll(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, msgApplicationNotFound)
		return
	}
	Paginated(c, "Applications fetched successfully", page.Applications, page.Meta)
}

// ListJobApplications GET /api/applications/job/:jobId
func (h *ApplicationHandler) ListJobApplications(c *gin.Context) {
	res, err := h.apps.ListByJob(c.Request.Context(), c.Param("jobId"))
	if err != nil {
		respondError(c, err, msgJobNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Applications fetched successfully",
		"data":    res.Applications,
		"total":   res.Total,
		"job":     res.Job,
	})
}

// GetApplication GET /api/applications/:id
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	view, err := h.apps.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, msgApplicationNotFound)
		return
	}
	Success(c, http.StatusOK, "Application fetched successfully", view)
}

// UpdateApplicationStatus PATCH /api/applications/:id/status
func (h *ApplicationHandler) UpdateApplicationStatus(c *gin.Context) {
	var req statusRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.apps.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err, msgApplicationNotFound)
		return
	}
	Success(c, http.StatusOK, "Application status updated", view)
}

// DeleteApplication DELETE /api/applications/:id
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	id, err := h.apps.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, msgApplicationNotFound)
		return
	}
	Success(c, http.StatusOK, "Application deleted successfully", gin.H{"deletedId": id})
}
