// Package coingecko provides a client for the CoinGecko market-data API.
package coingecko

import (
	"os"
	"time"
)

const (
	// DefaultBaseURL is the public CoinGecko v3 endpoint.
	DefaultBaseURL = "https://api.coingecko.com/api/v3"
	// DefaultTimeout bounds every upstream request.
	DefaultTimeout = 8 * time.Second

	snapshotTTL = 60 * time.Second
	rangeTTL    = 300 * time.Second
	rangeWindow = 90 * 24 * time.Hour
)

// Config holds configuration for the CoinGecko API client.
type Config struct {
	APIKey  string        // optional; sent as x-cg-pro-api-key when set
	BaseURL string        // e.g. "https://api.coingecko.com/api/v3"
	Timeout time.Duration // per-request timeout
}

// LoadConfig loads CoinGecko configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{
		APIKey:  os.Getenv("COINGECKO_API_KEY"),
		BaseURL: os.Getenv("COINGECKO_BASE_URL"),
		Timeout: DefaultTimeout,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return cfg
}
