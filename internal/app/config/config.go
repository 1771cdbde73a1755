// Package config loads the application-level settings.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the HTTP server settings.
type Config struct {
	Port           string
	AllowOrigins   []string
	RateLimitTTL   time.Duration // window length
	RateLimitLimit int           // requests per window and client
	LogLevel       slog.Level
	// TrustedProxies are the proxy IPs/CIDRs whose X-Forwarded-For is honoured.
	// Empty means the client IP is always the TCP peer address.
	TrustedProxies []string
}

// Load reads the settings from environment variables, applying defaults for
// missing or invalid values.
func Load() Config {
	return Config{
		Port:           getEnv("PORT", "3000"),
		AllowOrigins:   splitList(getEnv("ALLOW_ORIGINS", "http://localhost:3000")),
		RateLimitTTL:   time.Duration(getInt("RATE_LIMIT_TTL", 60)) * time.Second,
		RateLimitLimit: getInt("RATE_LIMIT_LIMIT", 60),
		LogLevel:       parseLevel(os.Getenv("LOG_LEVEL")),
		TrustedProxies: splitList(os.Getenv("TRUSTED_PROXIES")),
	}
}

// Addr is the listen address.
func (c Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid integer setting, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
