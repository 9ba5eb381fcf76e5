package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Defaults(t *testing.T) {
	cfg, err := InitConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "drivescore", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10.0, cfg.Roads.ToleranceMeters)
	assert.Equal(t, 30000, cfg.Roads.CacheTTLMs)
	assert.Equal(t, 5000, cfg.Roads.RequestTimeoutMs)
	assert.Equal(t, "memory", cfg.Roads.CacheBackend)
	assert.Equal(t, 5.0, cfg.Scoring.PointsPerMeter)
	assert.Equal(t, 8.0, cfg.Scoring.MultiplierRampSeconds)
	assert.Empty(t, cfg.Roads.APIKey)
}

func TestInitConfig_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 9090
roads:
  api_key: test-key
  tolerance_meters: 25.0
  fallback_center:
    latitude: -6.2
    longitude: 106.8
scoring:
  multiplier_max: 2.0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := InitConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "test-key", cfg.Roads.APIKey)
	assert.Equal(t, 25.0, cfg.Roads.ToleranceMeters)
	assert.Equal(t, -6.2, cfg.Roads.FallbackCenter.Latitude)
	assert.Equal(t, 2.0, cfg.Scoring.MultiplierMax)

	// Untouched sections keep their defaults
	assert.Equal(t, "drivescore", cfg.App.Name)
	assert.Equal(t, 30000, cfg.Roads.CacheTTLMs)
}

func TestInitConfig_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0o600))

	_, err := InitConfig(path)
	assert.Error(t, err)
}
