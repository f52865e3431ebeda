package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubLimiter struct {
	quota Quota
	err   error
	keys  []string
}

func (s *stubLimiter) Take(_ context.Context, key string, _ int, _ time.Duration) (Quota, error) {
	s.keys = append(s.keys, key)
	return s.quota, s.err
}

func newRateLimitedEngine(limiter RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.POST("/api/v1/sessions/:id/cart/items", RateLimit(limiter, 5, time.Minute), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return engine
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name          string
		limiter       *stubLimiter
		wantCode      int
		wantRemaining string
		wantRetry     string
	}{
		{
			name:          "allowed",
			limiter:       &stubLimiter{quota: Quota{Allowed: true, Remaining: 4, ResetIn: time.Minute}},
			wantCode:      http.StatusOK,
			wantRemaining: "4",
		},
		{
			name:          "denied rounds retry up",
			limiter:       &stubLimiter{quota: Quota{Remaining: 0, ResetIn: 12300 * time.Millisecond}},
			wantCode:      http.StatusTooManyRequests,
			wantRemaining: "0",
			wantRetry:     "13",
		},
		{
			name:          "denied with expired window",
			limiter:       &stubLimiter{quota: Quota{}},
			wantCode:      http.StatusTooManyRequests,
			wantRemaining: "0",
			wantRetry:     "1",
		},
		{
			name:     "limiter error fails open",
			limiter:  &stubLimiter{err: errors.New("redis down")},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newRateLimitedEngine(tt.limiter)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/abc/cart/items", nil)
			req.RemoteAddr = "10.0.0.7:5123"

			engine.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantRemaining, w.Header().Get("X-RateLimit-Remaining"))
			assert.Equal(t, tt.wantRetry, w.Header().Get("Retry-After"))
			assert.Equal(t, []string{"POST:/api/v1/sessions/:id/cart/items:10.0.0.7"}, tt.limiter.keys)
		})
	}
}
