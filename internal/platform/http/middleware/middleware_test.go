package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market_backend/internal/platform/http/apierror"
	"market_backend/internal/shared/ratelimiter"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockLimiter is a func-field mock of Limiter.
type mockLimiter struct {
	AllowFunc func(ctx context.Context, key string) (ratelimiter.Decision, error)
}

func (m *mockLimiter) Allow(ctx context.Context, key string) (ratelimiter.Decision, error) {
	return m.AllowFunc(ctx, key)
}

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"requestId": c.GetString(apierror.RequestIDKey)})
	})
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	return r
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
		reuse    bool
	}{
		{name: "generated", incoming: "", reuse: false},
		{name: "reused", incoming: "abc-123", reuse: true},
		{name: "too long is replaced", incoming: strings.Repeat("x", 200), reuse: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			w := httptest.NewRecorder()
			newEngine(RequestID()).ServeHTTP(w, req)

			id := w.Header().Get(RequestIDHeader)
			require.NotEmpty(t, id)
			if tt.reuse {
				assert.Equal(t, tt.incoming, id)
			} else {
				_, err := uuid.Parse(id)
				assert.NoError(t, err)
			}

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, id, body["requestId"])
		})
	}
}

func TestSecurityHeaders(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	newEngine(SecurityHeaders()).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "no-referrer", w.Header().Get("Referrer-Policy"))
	assert.NotEmpty(t, w.Header().Get("Content-Security-Policy"))
}

func TestRateLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		decision       ratelimiter.Decision
		err            error
		expectedStatus int
		remaining      string
	}{
		{
			name:           "allowed",
			decision:       ratelimiter.Decision{Allowed: true, Limit: 60, Remaining: 59},
			expectedStatus: http.StatusOK,
			remaining:      "59",
		},
		{
			name:           "rejected",
			decision:       ratelimiter.Decision{Allowed: false, Limit: 60, Remaining: 0},
			expectedStatus: http.StatusTooManyRequests,
			remaining:      "0",
		},
		{
			name:           "limiter error fails open",
			err:            errors.New("redis down"),
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := &mockLimiter{AllowFunc: func(ctx context.Context, key string) (ratelimiter.Decision, error) {
				assert.Equal(t, "192.0.2.1", key)
				return tt.decision, tt.err
			}}

			w := httptest.NewRecorder()
			newEngine(RequestID(), RateLimit(l)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

			require.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.remaining, w.Header().Get("X-RateLimit-Remaining"))
			if tt.expectedStatus == http.StatusTooManyRequests {
				var body apierror.Response
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, apierror.CodeRateLimited, body.Error)
				assert.NotEmpty(t, body.RequestID)
			}
		})
	}
}

func TestRateLimit_WithMemoryLimiter(t *testing.T) {
	t.Parallel()

	r := newEngine(RateLimit(ratelimiter.NewMemoryLimiter(2, time.Minute)))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRecovery(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	newEngine(RequestID(), Recovery()).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body apierror.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, apierror.CodeInternalError, body.Error)
}

func TestLogger_PassesThrough(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	newEngine(Logger()).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		origins []string
		origin  string
		want    string
	}{
		{name: "allowed origin", origins: []string{"http://localhost:3000"}, origin: "http://localhost:3000", want: "http://localhost:3000"},
		{name: "other origin", origins: []string{"http://localhost:3000"}, origin: "http://evil.example", want: ""},
		{name: "wildcard", origins: []string{"*"}, origin: "http://any.example", want: "*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			newEngine(CORS(tt.origins)).ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
