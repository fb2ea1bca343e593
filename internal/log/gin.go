package log

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// GinLogger logs HTTP requests through the global slog handler.
func GinLogger() gin.HandlerFunc {
	logger := slog.Default().WithGroup("GIN")
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()

		statusColored := func(code int) string {
			switch {
			case code >= 500:
				return Red("%d", code)
			case code >= 400:
				return Yellow("%d", code)
			case code >= 300:
				return Cyan("%d", code)
			default:
				return Green("%d", code)
			}
		}(statusCode)

		msg := fmt.Sprintf("%s %s %s", statusColored, c.Request.Method, path)
		if query != "" {
			msg += "?" + query
		}
		msg += fmt.Sprintf(" | %s | %s", c.ClientIP(), latency)
		if len(c.Errors) > 0 {
			msg += " | " + c.Errors.String()
		}

		if statusCode >= 500 {
			logger.ErrorContext(c.Request.Context(), msg)
		} else {
			logger.InfoContext(c.Request.Context(), msg)
		}
	}
}

// GinRecovery recovers panics inside handlers and responds 500.
func GinRecovery() gin.HandlerFunc {
	logger := slog.Default().WithGroup("GIN")
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.ErrorContext(c.Request.Context(),
					fmt.Sprintf("panic recovered: %v | %s %s", err, c.Request.Method, c.Request.URL.Path))
				c.AbortWithStatus(500)
			}
		}()
		c.Next()
	}
}
