package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"vendor-desk.backend/pkg/metrics"
)

// MetricsMiddleware records request counts and latency per route. The
// route template is used as the path label so ids do not blow up the
// cardinality.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.TrackHTTPRequest(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), start)
	}
}
