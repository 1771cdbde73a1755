// Package apierror writes the uniform JSON error body returned by every endpoint.
package apierror

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "requestId"

// Error codes carried in Response.Error.
const (
	CodeBadRequest    = "bad_request"
	CodeNotFound      = "not_found"
	CodeUpstream      = "upstream_error"
	CodeRateLimited   = "rate_limited"
	CodeInternalError = "internal_server_error"
)

// Response is the error body.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Timestamp  string `json:"timestamp"`
	Path       string `json:"path"`
	Method     string `json:"method"`
	Error      string `json:"error"`
	Message    string `json:"message"`
	RequestID  string `json:"requestId,omitempty"`
}

// Abort writes the error body and stops the handler chain.
func Abort(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, New(c, status, code, message))
}

// New builds the error body for the current request.
func New(c *gin.Context, status int, code, message string) Response {
	return Response{
		StatusCode: status,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Path:       c.Request.URL.Path,
		Method:     c.Request.Method,
		Error:      code,
		Message:    message,
		RequestID:  c.GetString(RequestIDKey),
	}
}
