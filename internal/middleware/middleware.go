package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JuanS3/globant-data-eng/internal/pkg/logger"
)

// RequestLogger logs every request with method, path, status and
// duration through the structured logger.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		event := logger.Info()
		if status >= 500 {
			event = logger.Error()
		} else if status >= 400 {
			event = logger.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Str("clientIp", c.ClientIP()).
			Dur("duration", duration).
			Msg("Request handled")
	}
}
