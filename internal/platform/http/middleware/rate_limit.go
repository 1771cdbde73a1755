package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"market_backend/internal/platform/http/apierror"
	"market_backend/internal/shared/ratelimiter"
)

// Limiter is the subset of ratelimiter.Limiter used by RateLimit.
type Limiter interface {
	Allow(ctx context.Context, key string) (ratelimiter.Decision, error)
}

// RateLimit rejects clients that exceed the limiter's quota with 429.
// Requests are keyed by client IP. A limiter error lets the request through.
func RateLimit(l Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := l.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			slog.Warn("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(d.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
		if !d.Allowed {
			apierror.Abort(c, http.StatusTooManyRequests, apierror.CodeRateLimited, "too many requests, try again later")
			return
		}
		c.Next()
	}
}
