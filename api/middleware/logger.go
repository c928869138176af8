package middleware

import (
	"time"

	"github.com/OldStager01/diabetes-risk/internal/logger"
	"github.com/gin-gonic/gin"
)

// ErrorKindKey is where handlers record the kind of a failed request. Only
// the kind is logged, never the error text, which echoes user input.
const ErrorKindKey = "error_kind"

func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		fields := map[string]interface{}{
			"status":     status,
			"method":     c.Request.Method,
			"path":       path,
			"latency_ms": latency.Milliseconds(),
			"ip":         c.ClientIP(),
		}

		if route := c.FullPath(); route != "" && route != path {
			fields["route"] = route
		}

		if requestID := GetRequestID(c); requestID != "" {
			fields["request_id"] = requestID
		}

		if kind := c.GetString(ErrorKindKey); kind != "" {
			fields[ErrorKindKey] = kind
		}

		entry := logger.WithFields(fields)

		switch {
		case status >= 500:
			entry.Error("server error")
		case status >= 400:
			entry.Warn("client error")
		default:
			entry.Info("request completed")
		}
	}
}
