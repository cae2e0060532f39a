package logging

import (
	"log/slog"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
)

const contextKey = "logger"

// LoggerMiddleware returns a Gin middleware that logs every request
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := Get().With(
			slog.String("request_id", c.GetHeader("X-Request-Id")),
			slog.String("client_ip", c.ClientIP()),
		)
		c.Set(contextKey, logger)

		start := time.Now()
		c.Next()

		attrs := []slog.Attr{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status_code", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.Int("response_size", c.Writer.Size()),
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			logger.ErrorCtx(c.Request.Context(), "Request completed with server error", attrs...)
		case status >= 400:
			logger.WarnCtx(c.Request.Context(), "Request completed with client error", attrs...)
		default:
			logger.InfoCtx(c.Request.Context(), "Request completed successfully", attrs...)
		}
	}
}

// Recoverer logs panics with their stack and answers 500
func Recoverer() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				buf := make([]byte, 2048)
				n := runtime.Stack(buf, false)

				FromContext(c).ErrorCtx(c.Request.Context(), "Panic recovered",
					slog.Any("panic_value", err),
					slog.String("stack_trace", string(buf[:n])),
					slog.String("method", c.Request.Method),
					slog.String("path", c.Request.URL.Path),
				)
				c.AbortWithStatus(500)
			}
		}()
		c.Next()
	}
}

// FromContext returns the request logger stored by LoggerMiddleware, or the global one
func FromContext(c *gin.Context) *Logger {
	if value, exists := c.Get(contextKey); exists {
		if logger, ok := value.(*Logger); ok {
			return logger
		}
	}
	return Get()
}
