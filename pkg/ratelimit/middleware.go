package ratelimit

import (
	"fmt"
	"net/http"
	"strings"

	"boxoffice/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

// Middleware enforces per-IP budgets, with stricter classes for the
// state-changing hold and reserve endpoints.
func Middleware(rateLimiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		limitType := getRateLimitType(c.FullPath())

		result, err := rateLimiter.IsAllowed(c.Request.Context(), clientIP, limitType)
		if err != nil {
			response.RespondJSON(c, "error", http.StatusInternalServerError,
				"Rate limit check failed", nil, nil)
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetTime))

		if !result.Allowed {
			response.RespondJSON(c, "error", http.StatusTooManyRequests,
				"Rate limit exceeded", nil, map[string]interface{}{
					"limit":      result.Limit,
					"reset_time": result.ResetTime,
				})
			c.Abort()
			return
		}

		c.Next()
	}
}

func getRateLimitType(path string) RateLimitType {
	switch {
	case strings.HasPrefix(path, "/health"),
		strings.HasPrefix(path, "/ping"),
		strings.HasPrefix(path, "/status"):
		return RateLimitTypeHealth

	case strings.Contains(path, "/seats/hold"):
		return RateLimitTypeHold

	case strings.Contains(path, "/seats/reserve"):
		return RateLimitTypeReserve

	case strings.Contains(path, "/seats/available"),
		strings.Contains(path, "/venue/"):
		return RateLimitTypeAvailability

	default:
		return RateLimitTypeDefault
	}
}
