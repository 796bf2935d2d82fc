// README: Metrics middleware; records analyze request counts and latency.
package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"jdmpulse/internal/metrics"
)

func Metrics(reg *metrics.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		reg.AnalyzeRequests.Inc()
		reg.AnalyzeLatency.Observe(time.Since(start).Seconds())
		switch {
		case c.Writer.Status() == http.StatusBadRequest:
			reg.AnalyzeRejected.Inc()
		case c.Writer.Status() >= http.StatusInternalServerError:
			reg.AnalyzeErrors.Inc()
		}
	}
}
