package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pocketledger/internal/logger"
)

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "requestID"

// RequestLogging assigns each request an id, echoes it in X-Request-ID and
// logs the outcome once the handler chain has run. An incoming X-Request-ID
// is kept so callers can correlate their own logs.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDKey, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		c.Next()

		fields := []interface{}{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if c.Writer.Status() >= 500 {
			logger.Get().Warnw("request", fields...)
			return
		}
		logger.Get().Infow("request", fields...)
	}
}
