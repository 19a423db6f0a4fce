package middleware

import (
	"strconv"
	"time"

	"bukubersama-backend/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics mencatat counter dan histogram Prometheus per request.
// Label path memakai route pattern (c.FullPath), bukan URL mentah,
// supaya kardinalitas label tidak meledak.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(
			c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
