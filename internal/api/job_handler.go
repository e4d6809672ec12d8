package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"quickhire/internal/jobboard"
	"quickhire/internal/pagination"
	"quickhire/internal/store"
)

// JobHandler 处理 /api/jobs 下的请求。
type JobHandler struct {
	jobs *store.JobStore
}

func NewJobHandler(jobs *store.JobStore) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// ListJobs GET /api/jobs?search=&category=&location=&type=&sort=&page=&limit=
func (h *JobHandler) ListJobs(c *gin.Context) {
	filter := store.JobFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Location: c.Query("location"),
		Type:     c.Query("type"),
		Sort:     c.DefaultQuery("sort", store.DefaultJobSort),
		Page:     pagination.Jobs.Parse(c.Query("page"), c.Query("limit")),
	}

	page, err := h.jobs.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, msgJobNotFound)
		return
	}
	Paginated(c, "Jobs fetched successfully", page.Jobs, page.Meta)
}

// GetJob GET /api/jobs/:id
func (h *JobHandler) GetJob(c *gin.Context) {
	detail, err := h.jobs.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, msgJobNotFound)
		return
	}
	Success(c, http.StatusOK, "Job fetched successfully", detail)
}

// CreateJob POST /api/jobs
func (h *JobHandler) CreateJob(c *gin.Context) {
	var in jobboard.JobInput
	if !bindJSON(c, &in) {
		return
	}

	job, err := h.jobs.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, msgJobNotFound)
		return
	}
	Success(c, http.StatusCreated, "Job created successfully", job)
}

// UpdateJob PUT /api/jobs/:id，只覆盖请求中出现的字段。
func (h *JobHandler) UpdateJob(c *gin.Context) {
	var in jobboard.JobInput
	if !bindJSON(c, &in) {
		return
	}

	job, err := h.jobs.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err, msgJobNotFound)
		return
	}
	Success(c, http.StatusOK, "Job updated successfully", job)
}

// DeleteJob DELETE /api/jobs/:id，同时删除该职位的全部投递。
func (h *JobHandler) DeleteJob(c *gin.Context) {
	res, err := h.jobs.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, msgJobNotFound)
		return
	}
	Success(c, http.StatusOK, "Job and related applications deleted successfully", res)
}

// GetFilters GET /api/jobs/filters
func (h *JobHandler) GetFilters(c *gin.Context) {
	opts, err := h.jobs.FilterOptions(c.Request.Context())
	if err != nil {
		respondError(c, err, msgJobNotFound)
		return
	}
	Success(c, http.StatusOK, "Filter options fetched successfully", opts)
}

// bindJSON 解码请求体，失败时直接写入 400/413 响应并返回 false。
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			Error(c, http.StatusRequestEntityTooLarge, "Request body too large")
			return false
		}
		BadRequest(c, msgInvalidBody)
		return false
	}
	return true
}
