package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rafaelleal24/glowin/internal/core/logger"
)

const (
	RequestIDHeader = "X-Request-ID"
	sessionsRoute   = "/api/v1/sessions/"
)

// LogRequest tags each request with an id (kept from the client when present)
// and logs one entry once the handler returns. Bodies are never logged: checkout
// carries card and shipping data.
func LogRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)

		c.Next()

		status := c.Writer.Status()
		route := c.FullPath()
		attrs := map[string]any{
			"http.request_id":    requestID,
			"http.method":        c.Request.Method,
			"http.path":          c.Request.URL.Path,
			"http.route":         route,
			"http.status_code":   status,
			"http.duration":      time.Since(start),
			"http.client_ip":     c.ClientIP(),
			"http.response_size": c.Writer.Size(),
		}
		if strings.HasPrefix(route, sessionsRoute) {
			attrs["session.id"] = c.Param("id")
		}
		if key := c.GetHeader("Idempotency-Key"); key != "" {
			attrs["http.idempotency_key"] = key
		}
		if len(c.Errors) > 0 {
			attrs["http.errors"] = c.Errors.String()
		}

		logger.Log(c.Request.Context(), logger.LogEntry{
			Level:      levelForStatus(status),
			Message:    "HTTP Request",
			Attributes: attrs,
			Timestamp:  start,
		})
	}
}

func levelForStatus(status int) logger.LogLevel {
	switch {
	case status >= 500:
		return logger.LogLevelError
	case status >= 400:
		return logger.LogLevelWarn
	default:
		return logger.LogLevelInfo
	}
}
