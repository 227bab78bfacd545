package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"bazario-backend/internal/metrics"
)

// Metrics records request count, error count, and duration per route.
func Metrics(m *metrics.AppMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		m.RecordRequest(c.Request.Context(), c.Request.Method, route,
			c.Writer.Status(), time.Since(start))
	}
}
