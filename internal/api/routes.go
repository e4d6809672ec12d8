package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"quickhire/internal/api/middleware"
)

// RegisterRoutes 注册 /api 下的业务路由。管理类路由与公开路由一样不做鉴权。
func RegisterRoutes(api *gin.RouterGroup, deps Dependencies) {
	deps = deps.withDefaults()
	jobHandler := NewJobHandler(deps.Jobs)
	applicationHandler := NewApplicationHandler(deps.Applications)

	submitLimiter := middleware.RateLimit(deps.RateCounter, middleware.RateLimitOptions{
		Prefix: "applications",
		Limit:  deps.Config.RateLimit.ApplicationsPerHour,
		Window: time.Hour,
	})

	jobs := api.Group("/jobs")
	{
		// /filters 必须先于 /:id 注册
		jobs.GET("/filters", jobHandler.GetFilters)
		jobs.GET("", jobHandler.ListJobs)
		jobs.GET("/:id", jobHandler.GetJob)

		jobs.POST("", jobHandler.CreateJob)
		jobs.PUT("/:id", jobHandler.UpdateJob)
		jobs.DELETE("/:id", jobHandler.DeleteJob)
	}

	applications := api.Group("/applications")
	{
		applications.POST("", submitLimiter, applicationHandler.SubmitApplication)

		applications.GET("", applicationHandler.ListApplications)
		applications.GET("/job/:jobId", applicationHandler.ListJobApplications)
		applications.GET("/:id", applicationHandler.GetApplication)
		applications.PATCH("/:id/status", applicationHandler.UpdateApplicationStatus)
		applications.DELETE("/:id", applicationHandler.DeleteApplication)
	}
}
