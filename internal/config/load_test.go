package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskmaster/api/internal/config"
)

const testJWTSecret = "config-test-secret-32-characters!!"

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TASKMASTER_DATABASE_URL", "postgres://localhost:5432/taskmaster")
	t.Setenv("TASKMASTER_AUTH_JWT_SECRET", testJWTSecret)
}

func TestLoad(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := config.Load()
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "info", cfg.Server.LogLevel)
		assert.Equal(t, 60, cfg.Auth.TokenLifetimeMinutes)
		assert.Equal(t, 587, cfg.Mail.Port)
		assert.False(t, cfg.Mail.Enabled())
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("TASKMASTER_SERVER_PORT", "9090")
		t.Setenv("TASKMASTER_SERVER_LOG_LEVEL", "debug")
		t.Setenv("TASKMASTER_AUTH_TOKEN_LIFETIME_MINUTES", "15")
		t.Setenv("TASKMASTER_MAIL_HOST", "smtp.example.com")
		t.Setenv("TASKMASTER_MAIL_FROM", "noreply@example.com")

		cfg, err := config.Load()
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "debug", cfg.Server.LogLevel)
		assert.Equal(t, 15, cfg.Auth.TokenLifetimeMinutes)
		assert.True(t, cfg.Mail.Enabled())
		assert.Equal(t, "smtp.example.com", cfg.Mail.Host)
	})

	t.Run("missing database URL", func(t *testing.T) {
		t.Setenv("TASKMASTER_DATABASE_URL", "")
		t.Setenv("TASKMASTER_AUTH_JWT_SECRET", testJWTSecret)

		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("short jwt secret", func(t *testing.T) {
		t.Setenv("TASKMASTER_DATABASE_URL", "postgres://localhost:5432/taskmaster")
		t.Setenv("TASKMASTER_AUTH_JWT_SECRET", "too-short")

		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("invalid log level", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("TASKMASTER_SERVER_LOG_LEVEL", "loud")

		_, err := config.Load()
		assert.Error(t, err)
	})
}
