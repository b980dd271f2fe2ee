package httpserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"telegram-alerts/pkg/logger"
	"telegram-alerts/pkg/metrics"
	"telegram-alerts/pkg/trace"
)

// TraceMiddleware puts a trace id on the request context and response header.
func TraceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := trace.FromHeader(c.GetHeader(trace.HeaderName))
		c.Request = c.Request.WithContext(trace.WithContext(c.Request.Context(), traceID))
		c.Header(trace.HeaderName, traceID)
		c.Next()
	}
}

// MetricsMiddleware records request latency per route.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		// deferred so requests that panic are still observed
		defer func() {
			path := c.FullPath()
			if path == "" {
				path = "unmatched"
			}
			metrics.RecordHTTPRequestDuration(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start))
		}()
		c.Next()
	}
}

// RecoveryMiddleware logs panics and still answers 200 "OK", so the upstream
// sender does not keep re-delivering a poison update.
func RecoveryMiddleware(log *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		logger.WithTrace(c.Request.Context(), log).Error("Panic while handling request",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
		)
		c.String(http.StatusOK, "OK")
		c.Abort()
	})
}
