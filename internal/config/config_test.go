package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pidgeonhole/rookery-api/internal/config"
)

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("ROOKERY_DATABASE_URL", "")
	t.Setenv("ROOKERY_IDENTITY_URL", "https://id.example.com")

	_, err := config.Load()
	require.Error(t, err)
}

func TestLoadRequiresIdentityURL(t *testing.T) {
	t.Setenv("ROOKERY_DATABASE_URL", "postgres://localhost/rookery")
	t.Setenv("ROOKERY_IDENTITY_URL", "")

	_, err := config.Load()
	require.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ROOKERY_DATABASE_URL", "postgres://localhost/rookery")
	t.Setenv("ROOKERY_IDENTITY_URL", "https://id.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "/api/v3", cfg.BasePath)
	require.Equal(t, ":8080", cfg.HTTPAddress())
	require.Equal(t, 30*time.Second, cfg.OwlTimeout)
	require.Equal(t, 5*time.Minute, cfg.CategoryCacheTTL)
	require.False(t, cfg.JudgeDebug)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ROOKERY_DATABASE_URL", "postgres://localhost/rookery")
	t.Setenv("ROOKERY_IDENTITY_URL", "https://id.example.com")
	t.Setenv("ROOKERY_APP_PORT", "9090")
	t.Setenv("ROOKERY_BASE_PATH", "/api/v4")
	t.Setenv("ROOKERY_OWL_TIMEOUT", "10s")
	t.Setenv("ROOKERY_JUDGE_DEBUG", "true")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTPAddress())
	require.Equal(t, "/api/v4", cfg.BasePath)
	require.Equal(t, 10*time.Second, cfg.OwlTimeout)
	require.True(t, cfg.JudgeDebug)
}
