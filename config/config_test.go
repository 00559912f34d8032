package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.CORSOrigins)
	assert.Empty(t, cfg.Database.DSN)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, 24, cfg.Session.TTLHours)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.False(t, cfg.App.SnapshotsEnabled)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ORIGINS", "https://app.zylox.agency, https://admin.zylox.agency")
	t.Setenv("SESSION_TTL_HOURS", "48")
	t.Setenv("STATS_SNAPSHOTS_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, []string{"https://app.zylox.agency", "https://admin.zylox.agency"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 48, cfg.Session.TTLHours)
	assert.True(t, cfg.App.SnapshotsEnabled)
}

func TestLoadRejectsBadTTL(t *testing.T) {
	t.Setenv("SESSION_TTL_HOURS", "-1")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_TTL_HOURS")
}

func TestGetEnvAsIntFallsBackOnGarbage(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Redis.DB)
}
