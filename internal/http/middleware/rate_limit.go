package middleware

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/portfolio-assistant/internal/observability"
	"github.com/yungbote/portfolio-assistant/internal/pkg/logger"
	"github.com/yungbote/portfolio-assistant/internal/platform/ratelimit"
)

// RateLimit refuses callers that exhausted their window with 429 and a
// Retry-After header. A failing limiter lets the request through.
func RateLimit(l ratelimit.Limiter, m *observability.Metrics, log *logger.Logger) gin.HandlerFunc {
	if l == nil {
		return func(c *gin.Context) { c.Next() }
	}
	if log == nil {
		log = logger.Nop()
	}
	log = log.With("middleware", "RateLimit")
	return func(c *gin.Context) {
		d, err := l.Allow(c.Request.Context(), ClientID(c))
		if err != nil {
			log.Warn("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(d.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
		if !d.Allowed {
			m.IncRateLimited()
			secs := int(math.Ceil(d.RetryAfter.Seconds()))
			if secs < 1 {
				secs = 1
			}
			c.Header("Retry-After", strconv.Itoa(secs))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": gin.H{"message": "Too many requests, please try again later.", "code": "rate_limited"},
			})
			return
		}
		c.Next()
	}
}
