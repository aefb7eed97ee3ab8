package middleware

import (
	"github.com/gin-gonic/gin"

	"pocketledger/internal/logger"
)

// ErrorHandler logs errors that handlers attach with c.Error. Handlers write
// their own JSON error bodies, so the only errors left here surface after the
// response has started, such as a failed workbook stream, and the client
// response is never touched.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, e := range c.Errors {
			logger.Get().Errorw("request error",
				"error", e.Err.Error(),
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"status", c.Writer.Status(),
				"written", c.Writer.Written(),
			)
		}
	}
}
