// Package handler provides HTTP handlers for platform-level endpoints.
package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthResponse is the body of the health endpoints.
type HealthResponse struct {
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"` // seconds since startup
}

// Health returns the handler for /health and /healthz.
// startedAt is the process start time used for the uptime field.
func Health(startedAt time.Time) gin.HandlerFunc {
	return healthAt(startedAt, time.Now)
}

func healthAt(startedAt time.Time, now func() time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Prevent caching explicitly
		c.Header("Cache-Control", "no-store")

		switch c.Request.Method {
		case http.MethodHead:
			c.Status(http.StatusOK)
		case http.MethodOptions:
			c.Status(http.StatusNoContent)
		default:
			t := now()
			c.JSON(http.StatusOK, HealthResponse{
				Status:    "ok",
				Timestamp: t.UTC().Format(time.RFC3339),
				Uptime:    t.Sub(startedAt).Seconds(),
			})
		}
	}
}

// Root answers GET / with a short welcome message.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Crypto market data API. Try GET /market/btc"})
}
