package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"SERVER_ADDR", "SESSION_TTL", "SESSION_BACKEND", "EMAIL_PROVIDER", "APP_STATIC", "DB_QUERY_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()

	assert.Equal(t, ":8080", cfg.GetServerAddr())
	assert.Equal(t, 24*time.Hour, cfg.GetSessionTTL())
	assert.Equal(t, SessionBackendMemory, cfg.GetSessionBackend())
	assert.Equal(t, "log", cfg.GetEmailProvider())
	assert.Equal(t, "embed", cfg.GetStaticMode())
	assert.Equal(t, 5*time.Second, cfg.GetDBQueryTimeout())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("SESSION_TTL", "90m")
	t.Setenv("SESSION_BACKEND", "Redis")
	t.Setenv("REDIS_ADDR", "cache:6380")

	cfg := FromEnv()

	assert.Equal(t, 90*time.Minute, cfg.GetSessionTTL())
	assert.Equal(t, SessionBackendRedis, cfg.GetSessionBackend())
	assert.Equal(t, "cache:6380", cfg.GetRedisAddr())
}

func TestFromEnv_MalformedDurationFallsBack(t *testing.T) {
	t.Setenv("SESSION_TTL", "tomorrow")

	assert.Equal(t, 24*time.Hour, FromEnv().GetSessionTTL())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			SessionSecret:  "0123456789abcdef",
			SessionTTL:     time.Hour,
			SessionBackend: SessionBackendMemory,
			EmailProvider:  "log",
		}
	}

	t.Run("memory backend needs only a secret", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	t.Run("short secret is rejected", func(t *testing.T) {
		cfg := valid()
		cfg.SessionSecret = "short"
		assert.ErrorContains(t, cfg.Validate(), "SESSION_SECRET")
	})

	t.Run("surreal backend requires connection settings", func(t *testing.T) {
		cfg := valid()
		cfg.SessionBackend = SessionBackendSurreal
		cfg.DBQueryTimeout = time.Second
		assert.ErrorContains(t, cfg.Validate(), "SURREAL_URL")

		cfg.DBUrl, cfg.DBNs, cfg.DBDb = "ws://localhost:8000", "app", "app"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("unknown backend", func(t *testing.T) {
		cfg := valid()
		cfg.SessionBackend = "postgres"
		assert.ErrorContains(t, cfg.Validate(), `unknown SESSION_BACKEND "postgres"`)
	})

	t.Run("resend needs an api key", func(t *testing.T) {
		cfg := valid()
		cfg.EmailProvider = "resend"
		assert.ErrorContains(t, cfg.Validate(), "EMAIL_API_KEY")
	})
}
