package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	pkgErrors "github.com/g3lasio/Andy-AI-by-Claude/pkg/errors"
	"github.com/g3lasio/Andy-AI-by-Claude/pkg/response"
)

// RateLimit bounds each client IP with a token bucket. This is the transport
// guard; the chat use case keeps its own request window for the expensive
// model calls.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()

		limiter, ok := m.limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(m.rate, m.burst)
			m.limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "%s: client %s over limit", LogPrefixRateLimit, key)
			response.Error(c, pkgErrors.NewHTTPError(429, "rate_limited", "too many requests, slow down"))
			c.Abort()
			return
		}

		c.Next()
	}
}
