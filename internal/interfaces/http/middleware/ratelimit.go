package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/infrastructure/ratelimit"
	"helpdesk/internal/shared/utils"
)

// IPRateLimit throttles unauthenticated endpoints per client IP. The login
// flow carries its own tighter limit inside the use case; this guard covers
// the remaining public surface (register, password reset).
func IPRateLimit(limiter ratelimit.RateLimiter, cfg ratelimit.RateLimitConfig, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", scope, c.ClientIP())

		allowed, err := limiter.Allow(key, cfg)
		if err != nil {
			// A broken limiter should not take the API down with it.
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "Too many requests, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
