package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vinylvault/internal/config"
)

var allVariablesExceptEnv = []string{
	"DISCOGS_TOKEN",
	"DISCOGS_USERNAME",
	"SENTRY_DSN",
	"PORT",
	"VINYLVAULT_DATA_DIR",
	"CACHE_BACKEND",
	"DB_HOST",
	"DB_USERNAME",
	"DB_PASSWORD",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range allVariablesExceptEnv {
		t.Setenv(key, "")
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Run("environment is required", func(t *testing.T) {
		clearEnv(t)
		_, err := config.ConfigFromEnv()
		require.ErrorIs(t, err, config.ErrMissingRequiredValue)
	})

	t.Run("invalid environment is rejected", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("VINYLVAULT_ENVIRONMENT", "prod")
		_, err := config.ConfigFromEnv()
		require.ErrorIs(t, err, config.ErrInvalidValue)
	})

	t.Run("development needs no credentials", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("VINYLVAULT_ENVIRONMENT", "development")

		conf, err := config.ConfigFromEnv()
		require.NoError(t, err)

		require.True(t, conf.IsDevelopment())
		require.False(t, conf.IsProduction())
		require.Equal(t, "8080", conf.Port())
		require.Equal(t, "data", conf.DataDir())
		require.Equal(t, config.CacheBackendSQLite, conf.CacheBackend())
	})

	t.Run("production requires discogs credentials and sentry", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("VINYLVAULT_ENVIRONMENT", "production")

		_, err := config.ConfigFromEnv()
		require.ErrorIs(t, err, config.ErrMissingRequiredValue)

		t.Setenv("DISCOGS_TOKEN", "token")
		_, err = config.ConfigFromEnv()
		require.ErrorIs(t, err, config.ErrMissingRequiredValue)

		t.Setenv("DISCOGS_USERNAME", "collector")
		_, err = config.ConfigFromEnv()
		require.ErrorIs(t, err, config.ErrMissingRequiredValue)

		t.Setenv("SENTRY_DSN", "https://sentry.example")
		conf, err := config.ConfigFromEnv()
		require.NoError(t, err)

		require.True(t, conf.IsProduction())
		require.Equal(t, "token", conf.DiscogsToken())
		require.Equal(t, "collector", conf.DiscogsUsername())
		require.Equal(t, "https://sentry.example", conf.SentryDSN())
	})

	t.Run("postgres backend requires db credentials", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("VINYLVAULT_ENVIRONMENT", "development")
		t.Setenv("CACHE_BACKEND", "postgres")

		_, err := config.ConfigFromEnv()
		require.ErrorIs(t, err, config.ErrMissingRequiredValue)

		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DB_USERNAME", "vinylvault")
		t.Setenv("DB_PASSWORD", "secret")

		conf, err := config.ConfigFromEnv()
		require.NoError(t, err)
		require.Equal(t, config.CacheBackendPostgres, conf.CacheBackend())
		require.Equal(t, "localhost", conf.DBHost())
	})

	t.Run("unknown cache backend is rejected", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("VINYLVAULT_ENVIRONMENT", "development")
		t.Setenv("CACHE_BACKEND", "redis")

		_, err := config.ConfigFromEnv()
		require.ErrorIs(t, err, config.ErrInvalidValue)
	})

	t.Run("overrides are honored", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("VINYLVAULT_ENVIRONMENT", "development")
		t.Setenv("PORT", "9999")
		t.Setenv("VINYLVAULT_DATA_DIR", "/var/lib/vinylvault")
		t.Setenv("CACHE_BACKEND", "file")

		conf, err := config.ConfigFromEnv()
		require.NoError(t, err)
		require.Equal(t, "9999", conf.Port())
		require.Equal(t, "/var/lib/vinylvault", conf.DataDir())
		require.Equal(t, config.CacheBackendFile, conf.CacheBackend())
	})
}
