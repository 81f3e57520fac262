package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hungerguard/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, "pattern", cfg.Planner.Provider)
	assert.Equal(t, "gemini-2.0-flash", cfg.Planner.DefaultModel)
	assert.Equal(t, 60, cfg.Planner.TimeoutSecs)
	assert.Equal(t, "sqlite", cfg.Recorder.Driver)
	assert.Equal(t, "hungerguard.db", cfg.Recorder.Path)
	assert.Equal(t, "noop", cfg.Alert.Provider)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HUNGERGUARD_SERVER_PORT", ":9090")
	t.Setenv("HUNGERGUARD_PLANNER_TIMEOUT_SECS", "15")
	t.Setenv("HUNGERGUARD_RECORDER_DRIVER", "noop")
	t.Setenv("HUNGERGUARD_CORS_ALLOWED_ORIGINS", "https://app.hungerguard.org, https://admin.hungerguard.org")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, 15, cfg.Planner.TimeoutSecs)
	assert.Equal(t, "noop", cfg.Recorder.Driver)
	assert.Equal(t, []string{"https://app.hungerguard.org", "https://admin.hungerguard.org"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_PlatformPortFallback(t *testing.T) {
	t.Setenv("PORT", "7070")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Port)
}

func TestLoad_ExplicitPortBeatsPlatformPort(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("HUNGERGUARD_SERVER_PORT", ":9090")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Port)
}

func TestLoad_GeminiRequiresAPIKey(t *testing.T) {
	t.Setenv("HUNGERGUARD_PLANNER_PROVIDER", "gemini")

	_, err := config.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "HUNGERGUARD_PLANNER_API_KEY")
}

func TestLoad_GeminiWithAPIKey(t *testing.T) {
	t.Setenv("HUNGERGUARD_PLANNER_PROVIDER", "gemini")
	t.Setenv("HUNGERGUARD_PLANNER_API_KEY", "test-key")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "gemini", cfg.Planner.Provider)
	assert.Equal(t, "test-key", cfg.Planner.APIKey)
}
