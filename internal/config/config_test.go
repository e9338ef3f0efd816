package config_test

import (
	"testing"
	"time"

	"storefront/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "GO_ENV", "LOG_LEVEL", "STORE", "DATABASE_URL",
		"POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB", "POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_SSLMODE",
		"JWT_SECRET", "ACCESS_TOKEN_TTL", "FE_URL", "SESSION_TTL", "DEFAULT_CURRENCY", "COOKIE_SECURE",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, config.StoreMemory, cfg.Store)
	assert.Equal(t, "ETB", cfg.DefaultCurrency)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.NotEmpty(t, cfg.JWTSecret)
}

func TestLoad_PostgresRequiresSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE", "postgres")

	_, err := config.Load()
	assert.ErrorContains(t, err, "JWT_SECRET is required")
}

func TestLoad_InvalidStore(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE", "redis")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_InvalidDuration(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_TTL", "soon")

	_, err := config.Load()
	assert.ErrorContains(t, err, "SESSION_TTL must be duration")
}

func TestDSN(t *testing.T) {
	clearEnv(t)
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_PORT", "5433")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "host=db port=5433 user=postgres password=postgres dbname=app sslmode=disable", cfg.DSN())

	t.Setenv("DATABASE_URL", "postgres://u:p@h/d")
	cfg, err = config.Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@h/d", cfg.DSN())
}
