package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimitOptions 配置固定窗口限流。
type RateLimitOptions struct {
	// Prefix 区分不同接口的计数键。
	Prefix string
	Limit  int
	Window time.Duration
}

// RateLimit 按客户端 IP 在 Redis 中做固定窗口计数，超过上限返回 429。
// Limit <= 0 或 client 为 nil 时不限流；Redis 不可用时放行并记录告警。
func RateLimit(client RateCounter, opts RateLimitOptions) gin.HandlerFunc {
	if client == nil || opts.Limit <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if opts.Window <= 0 {
		opts.Window = time.Hour
	}

	return func(c *gin.Context) {
		key := "rate:" + opts.Prefix + ":" + c.ClientIP()
		count, err := incrWithTTL(c.Request.Context(), client, key, opts.Window)
		if err != nil {
			LoggerFromContext(c).Warn("rate limit counter unavailable", slog.Any("error", err))
			c.Next()
			return
		}

		remaining := int64(opts.Limit) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(opts.Limit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(opts.Limit) {
			c.Header("Retry-After", strconv.Itoa(int(opts.Window.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": "Too many requests. Please try again later.",
			})
			return
		}
		c.Next()
	}
}
