package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/glowin/internal/adapters/http/handlers"
	"github.com/rafaelleal24/glowin/internal/core/logger"
)

// Quota is the state of one fixed window after a request was counted.
type Quota struct {
	Allowed   bool
	Remaining int
	ResetIn   time.Duration
}

type RateLimiter interface {
	Take(ctx context.Context, key string, limit int, window time.Duration) (Quota, error)
}

// RateLimit caps requests per client and route. A limiter failure lets the request through.
func RateLimit(limiter RateLimiter, limit int, window time.Duration) gin.HandlerFunc {
	limitHeader := strconv.Itoa(limit)

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := fmt.Sprintf("%s:%s:%s", c.Request.Method, c.FullPath(), c.ClientIP())

		quota, err := limiter.Take(ctx, key, limit, window)
		if err != nil {
			logger.Warn(ctx, "rate limiter unavailable", map[string]any{
				"key":   key,
				"error": err.Error(),
			})
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", limitHeader)
		c.Header("X-RateLimit-Remaining", strconv.Itoa(quota.Remaining))
		if !quota.Allowed {
			c.Header("Retry-After", strconv.Itoa(retryAfterSeconds(quota.ResetIn)))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, handlers.ErrorResponse{Error: "rate limit exceeded"})
			return
		}
		c.Next()
	}
}

// retryAfterSeconds rounds up so clients never retry inside the window.
func retryAfterSeconds(d time.Duration) int {
	if d <= 0 {
		return 1
	}
	return int(math.Ceil(d.Seconds()))
}
