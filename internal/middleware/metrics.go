package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"love_space/internal/metrics"
)

// Metrics пишет счетчик и гистограмму длительности по каждому запросу.
// В качестве path берется шаблон роута, чтобы не раздувать кардинальность
// метрик кодами комнат.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method, path, strconv.Itoa(c.Writer.Status()),
		).Inc()

		metrics.HTTPRequestDuration.WithLabelValues(
			c.Request.Method, path,
		).Observe(time.Since(start).Seconds())
	}
}
