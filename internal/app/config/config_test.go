package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "ALLOW_ORIGINS", "RATE_LIMIT_TTL", "RATE_LIMIT_LIMIT", "LOG_LEVEL", "TRUSTED_PROXIES"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowOrigins)
	assert.Equal(t, 60*time.Second, cfg.RateLimitTTL)
	assert.Equal(t, 60, cfg.RateLimitLimit)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Empty(t, cfg.TrustedProxies)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ALLOW_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("RATE_LIMIT_TTL", "30")
	t.Setenv("RATE_LIMIT_LIMIT", "10")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 192.168.1.1")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowOrigins)
	assert.Equal(t, 30*time.Second, cfg.RateLimitTTL)
	assert.Equal(t, 10, cfg.RateLimitLimit)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.1"}, cfg.TrustedProxies)
}

func TestLoad_InvalidIntegersFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_TTL", "soon")
	t.Setenv("RATE_LIMIT_LIMIT", "-5")

	cfg := Load()

	assert.Equal(t, 60*time.Second, cfg.RateLimitTTL)
	assert.Equal(t, 60, cfg.RateLimitLimit)
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), in)
	}
}
