package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STOREFRONT_API_BASE_URL", "")
	t.Setenv("STOREFRONT_HTTP_TIMEOUT", "")
	t.Setenv("STOREFRONT_IDLE_TIMEOUT", "")
	t.Setenv("STOREFRONT_VERBOSE", "")

	cfg := Load()
	assert.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, time.Hour, cfg.IdleTimeout)
	assert.False(t, cfg.Verbose)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STOREFRONT_API_BASE_URL", "https://api.bafain.id/")
	t.Setenv("STOREFRONT_HTTP_TIMEOUT", "30s")
	t.Setenv("STOREFRONT_IDLE_TIMEOUT", "45m")
	t.Setenv("STOREFRONT_VERBOSE", "true")

	cfg := Load()
	assert.Equal(t, "https://api.bafain.id", cfg.APIBaseURL) // trailing slash dropped
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 45*time.Minute, cfg.IdleTimeout)
	assert.True(t, cfg.Verbose)
}

func TestLoadRejectsInvalidDurations(t *testing.T) {
	t.Setenv("STOREFRONT_HTTP_TIMEOUT", "banyak")
	t.Setenv("STOREFRONT_IDLE_TIMEOUT", "-5m")

	cfg := Load()
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, time.Hour, cfg.IdleTimeout)
}
