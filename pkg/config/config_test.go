package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATABASE_URL", "APP_ENV", "STACC_DOMAIN", "STACC_POSTS_TABLE", "UPSTREAM_TIMEOUT", "TRUST_PROXY_HEADERS", "LOG_LEVEL", "LOG_FORMAT", "CHICAGO_CACHE_TTL"} {
		t.Setenv(key, "")
	}
	t.Setenv("PORT", "8000")
	t.Setenv("DATABASE_URL", "file:stacc.sqlite")
	t.Setenv("APP_ENV", "local")
	t.Setenv("STACC_DOMAIN", "http://localhost:8080")
	t.Setenv("STACC_POSTS_TABLE", "posts")
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, []string{"http://localhost:8080"}, cfg.AllowedOrigins)
	assert.Equal(t, 10*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, 10*time.Minute, cfg.ChicagoCacheTTL)
	assert.False(t, cfg.TrustProxyHeaders)
	assert.False(t, cfg.AdminEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("STACC_DOMAIN", "https://a.example, https://b.example ,")
	t.Setenv("STACC_VISITORS_TABLE", "site_visitors")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")
	t.Setenv("TRUST_PROXY_HEADERS", "true")
	t.Setenv("RATE_LIMIT_REQUESTS", "7")
	t.Setenv("ADMIN_JWT_SECRET", "s3cret")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, "site_visitors", cfg.VisitorsTable)
	assert.Equal(t, 3*time.Second, cfg.UpstreamTimeout)
	assert.True(t, cfg.TrustProxyHeaders)
	assert.Equal(t, 7, cfg.RateLimitRequests)
	assert.True(t, cfg.AdminEnabled())
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"table name with sql", "STACC_POSTS_TABLE", "posts; DROP TABLE visitors"},
		{"bad duration", "VISIT_TIMEOUT", "soon"},
		{"bad bool", "TRUST_PROXY_HEADERS", "maybe"},
		{"bad int", "RATE_LIMIT_REQUESTS", "many"},
		{"non numeric port", "PORT", "http"},
		{"unknown log format", "LOG_FORMAT", "xml"},
		{"zero timeout", "UPSTREAM_TIMEOUT", "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
