package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"voterkyc/internal/metrics"
)

// Metrics counts served requests by method, matched route and status.
// Unmatched paths share one label so scanners cannot blow up cardinality.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.IncrementHTTPRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()))
	}
}
