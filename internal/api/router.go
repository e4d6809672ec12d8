package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"quickhire/internal/api/middleware"
	"quickhire/internal/config"
	"quickhire/internal/database"
	"quickhire/internal/metrics"
	"quickhire/internal/store"
)

const serviceVersion = "1.0.0"

// Dependencies 汇总构建路由所需的组件。RateCounter 为 nil 时不限流；
// Config 为 nil 时按零值配置处理（本地来源、不限制请求体、不限流）。
type Dependencies struct {
	Config       *config.Config
	DB           *gorm.DB
	Jobs         *store.JobStore
	Applications *store.ApplicationStore
	RateCounter  middleware.RateCounter
	Logger       *slog.Logger
}

func (d Dependencies) withDefaults() Dependencies {
	if d.Config == nil {
		d.Config = &config.Config{}
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	return d
}

// NewRouter 构建 Gin 路由引擎并注册全部端点。
func NewRouter(deps Dependencies) *gin.Engine {
	deps = deps.withDefaults()
	cfg := deps.Config

	router := gin.New()
	router.Use(
		middleware.CorrelationIDMiddleware(),
		middleware.SlogLoggerMiddleware(deps.Logger),
		middleware.Recovery(),
		metrics.GinMiddleware(),
		middleware.SafeHeader(),
		cors.New(cors.Config{
			AllowOrigins:     cfg.API.Origins(),
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type", "Authorization", "X-Correlation-ID"},
			ExposeHeaders:    []string{"X-Correlation-ID"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		middleware.BodyLimit(cfg.API.MaxBodyBytes),
	)

	started := time.Now()
	router.GET("/", banner)
	router.GET("/api/health", health(deps.DB, cfg.API.Environment, started))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	RegisterRoutes(router.Group("/api"), deps)

	router.NoRoute(func(c *gin.Context) {
		NotFound(c, "Route not found: "+c.Request.URL.RequestURI())
	})

	return router
}

func banner(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "QuickHire API is running",
		"version": serviceVersion,
		"endpoints": gin.H{
			"jobs":         "/api/jobs",
			"jobFilters":   "/api/jobs/filters",
			"applications": "/api/applications",
		},
	})
}

// health 返回运行状态；数据库不可达时返回 503。
func health(db *gorm.DB, environment string, started time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, dbState, code := "healthy", "connected", http.StatusOK
		if db != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := database.Ping(ctx, db); err != nil {
				middleware.LoggerFromContext(c).Warn("health check database ping failed", slog.Any("error", err))
				status, dbState, code = "degraded", "unreachable", http.StatusServiceUnavailable
			}
		}

		message := "QuickHire API is healthy"
		if code != http.StatusOK {
			message = "QuickHire API is degraded"
		}
		c.JSON(code, gin.H{
			"success":     code == http.StatusOK,
			"message":     message,
			"status":      status,
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"uptime":      fmt.Sprintf("%ds", int64(time.Since(started).Seconds())),
			"environment": environment,
			"database":    dbState,
		})
	}
}
