package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("DB_DSN", "postgres://localhost/console")
	t.Setenv("API_BASE_URL", "")
	t.Setenv("ENV", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("NOTIFICATION_TTL", "")
	t.Setenv("SESSION_TTL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api", cfg.APIBaseURL)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 5*time.Second, cfg.NotificationTTL)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.False(t, cfg.RedisEnabled())
}

func TestLoadRequiresToken(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "")
	t.Setenv("DB_DSN", "postgres://localhost/console")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("DB_DSN", "postgres://localhost/console")
	t.Setenv("LOOKUP_CACHE_TTL", "ten minutes")

	_, err := Load()
	assert.ErrorContains(t, err, "LOOKUP_CACHE_TTL")
}
