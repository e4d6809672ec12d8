package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"quickhire/internal/api/middleware"
	"quickhire/internal/jobboard"
	"quickhire/internal/pagination"
)

// 所有响应都使用 {success, message, data?, pagination?, errors?} 信封。

func Success(c *gin.Context, status int, msg string, data any) {
	c.JSON(status, gin.H{"success": true, "message": msg, "data": data})
}

func Paginated(c *gin.Context, msg string, data any, meta pagination.Meta) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": msg, "data": data, "pagination": meta})
}

func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "message": msg})
}

func ValidationFailed(c *gin.Context, fields []jobboard.FieldError) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"success": false,
		"message": "Validation failed",
		"errors":  fields,
	})
}

func BadRequest(c *gin.Context, msg string) { Error(c, http.StatusBadRequest, msg) }
func NotFound(c *gin.Context, msg string)   { Error(c, http.StatusNotFound, msg) }
func Conflict(c *gin.Context, msg string)   { Error(c, http.StatusConflict, msg) }
func Internal(c *gin.Context, msg string)   { Error(c, http.StatusInternalServerError, msg) }

const (
	msgJobNotFound         = "Job not found"
	msgApplicationNotFound = "Application not found"
	msgJobInactive         = "This job listing is no longer active"
	msgDuplicate           = "You have already applied to this job with this email address"
	msgInvalidBody         = "Invalid request body"
	msgInternal            = "Internal Server Error"
)

// respondError 把存储层错误映射为状态码与信封，notFoundMsg 用于 404 文案。
func respondError(c *gin.Context, err error, notFoundMsg string) {
	if ve, ok := jobboard.AsValidationError(err); ok {
		ValidationFailed(c, ve.Errors)
		return
	}

	switch {
	case errors.Is(err, jobboard.ErrNotFound):
		NotFound(c, notFoundMsg)
	case errors.Is(err, jobboard.ErrJobInactive):
		BadRequest(c, msgJobInactive)
	case errors.Is(err, jobboard.ErrDuplicate):
		Conflict(c, msgDuplicate)
	default:
		middleware.LoggerFromContext(c).Error("request failed", slog.Any("error", err))
		Internal(c, msgInternal)
	}
}
