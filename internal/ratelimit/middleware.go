package ratelimit

import (
	"fmt"
	"net/http"

	"loyalty-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// Middleware limits requests per :business_id. Limiter failures let the request through.
func (s *Service) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.limit <= 0 {
			c.Next()
			return
		}

		businessID := c.Param("business_id")
		ctx := observability.WithFields(c.Request.Context(),
			observability.Field{Key: "business_id", Value: businessID},
			observability.Field{Key: "rate_limit_rpm", Value: s.limit},
		)

		result, err := s.CheckRateLimit(ctx, businessID)
		if err != nil {
			s.logger.Error(ctx, "rate limit check failed", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetAt.Unix()))

		if !result.Allowed {
			retryAfter := (result.RetryAfterMs + 999) / 1000
			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			s.logger.Warn(ctx, "rate limit exceeded")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "Rate limit exceeded",
				"code":        "RATE_LIMIT_EXCEEDED",
				"retry_after": retryAfter,
			})
			return
		}

		c.Next()
	}
}
