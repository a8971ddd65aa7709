package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cohorttools/cohort-tools-api/internal/pkg/logger"
)

// LegacyStatusCodesKey marks a request as using the legacy error status policy
const LegacyStatusCodesKey = "legacyStatusCodes"

// RequestLogger writes one structured access log line per request
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		status := c.Writer.Status()
		event := logger.Info()
		switch {
		case status >= 500:
			event = logger.Error()
		case status >= 400:
			event = logger.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("clientIP", c.ClientIP()).
			Int("size", c.Writer.Size()).
			Msg("HTTP request")
	}
}

// RequestTimeout bounds the request context; storage calls observe the deadline
func RequestTimeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if timeout <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// StatusCodePolicy selects how HandleAPIError picks status codes
func StatusCodePolicy(legacy bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(LegacyStatusCodesKey, legacy)
		c.Next()
	}
}
