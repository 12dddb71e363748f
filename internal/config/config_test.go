package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvTest, cfg.Env)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL())
	assert.Equal(t, 10, cfg.PaginationDefaultLimit)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/x")
	t.Setenv("JWT_TTL_HOURS", "2")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("CACHE_TTL_SECONDS", "30")
	t.Setenv("S3_BUCKET", "images")
	t.Setenv("MP_ACCESS_TOKEN", "TEST-123")
	t.Setenv("CHECK_EMAIL_DOMAIN", "true")
	t.Setenv("PAGINATION_DEFAULT_LIMIT", "25")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "postgres://u:p@db:5432/x", cfg.DBUrl)
	assert.Equal(t, 2*time.Hour, cfg.JWTTTL())
	assert.Equal(t, 30*time.Second, cfg.CacheTTL())
	assert.True(t, cfg.CacheEnabled())
	assert.True(t, cfg.StorageEnabled())
	assert.True(t, cfg.PaymentsEnabled())
	assert.True(t, cfg.CheckEmailDomain)
	assert.Equal(t, 25, cfg.PaginationDefaultLimit)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("APP_ENV", "staging")

	_, err := Load()
	assert.Error(t, err)
}

func TestOptionalIntegrationsDisabledByDefault(t *testing.T) {
	cfg := defaults()

	assert.False(t, cfg.CacheEnabled())
	assert.False(t, cfg.StorageEnabled())
	assert.False(t, cfg.PaymentsEnabled())
	assert.Nil(t, cfg.AllowedOrigins())
}
