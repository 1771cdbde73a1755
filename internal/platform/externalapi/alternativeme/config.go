// Package alternativeme provides a client for the alternative.me Fear & Greed index.
package alternativeme

import (
	"os"
	"time"
)

const (
	// DefaultBaseURL is the public alternative.me endpoint.
	DefaultBaseURL = "https://api.alternative.me"
	// DefaultTimeout bounds every upstream request.
	DefaultTimeout = 8 * time.Second

	sentimentTTL = 300 * time.Second
)

// Config holds configuration for the Fear & Greed client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{
		BaseURL: os.Getenv("FNG_BASE_URL"),
		Timeout: DefaultTimeout,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return cfg
}
