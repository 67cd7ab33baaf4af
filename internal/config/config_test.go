package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "detector.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "")

	cfg, err := Load("")
	require.NoError(t, err)
	want := Default()
	assert.Equal(t, want.Logging, cfg.Logging)
	assert.Equal(t, want.Database, cfg.Database)
	assert.Equal(t, want.Metrics, cfg.Metrics)
	assert.Equal(t, want.Engine, cfg.Engine)
	assert.Equal(t, want.Correlation, cfg.Correlation)
	assert.Empty(t, cfg.Handlers.Allowlist)
	assert.Empty(t, cfg.Handlers.SafeZones)
	assert.Equal(t, 1024, cfg.Handlers.HistoryKeys)
	assert.Equal(t, 30*time.Minute, cfg.Correlation.Window)
	assert.Equal(t, 0.0005, cfg.Correlation.LocationTolerance)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: debug
  format: json
database:
  path: /tmp/capture.db
correlation:
  window: 1h
  incident_gap: 2m
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "/tmp/capture.db", cfg.Database.Path)
	assert.Equal(t, time.Hour, cfg.Correlation.Window)
	assert.Equal(t, 2*time.Minute, cfg.Correlation.IncidentGap)
	// untouched keys keep their defaults
	assert.Equal(t, 5*time.Minute, cfg.Correlation.RecentWindow)
}

func TestLoad_HandlerLists(t *testing.T) {
	path := writeConfig(t, `
handlers:
  allowlist:
    - "AA:BB:CC:DD:EE:FF"
    - HomeNet
  safe_zones:
    - lat: 52.52
      lon: 13.405
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"AA:BB:CC:DD:EE:FF", "HomeNet"}, cfg.Handlers.Allowlist)
	require.Len(t, cfg.Handlers.SafeZones, 1)
	assert.Equal(t, SafeZone{Latitude: 52.52, Longitude: 13.405}, cfg.Handlers.SafeZones[0])
	assert.Equal(t, 0.0005, cfg.Handlers.SafeZoneTolerance)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
database:
  path: from-file.db
`)
	t.Setenv("DETECTOR_DATABASE_PATH", "from-env.db")
	t.Setenv("DETECTOR_CORRELATION_INCIDENT_GAP", "90s")
	t.Setenv("DETECTOR_ENGINE_RECENT_DETECTIONS", "64")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env.db", cfg.Database.Path)
	assert.Equal(t, 90*time.Second, cfg.Correlation.IncidentGap)
	assert.Equal(t, 64, cfg.Engine.RecentDetections)
}

func TestLoad_PathFromEnv(t *testing.T) {
	path := writeConfig(t, `
metrics:
  addr: ":9100"
`)
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":9100", cfg.Metrics.Addr)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config file")
}

func TestLoad_InvalidValues(t *testing.T) {
	path := writeConfig(t, `
logging:
  format: xml
correlation:
  window: 0s
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.format")
	assert.Contains(t, err.Error(), "correlation.window")
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"DETECTOR_LOGGING_LEVEL", "logging.level"},
		{"DETECTOR_ENGINE_CROSS_PROTOCOL_WINDOW", "engine.cross_protocol_window"},
		{"DETECTOR_CONFIG", ""},
		{"DETECTOR_LOGGING", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, envTransformFunc(tt.in), tt.in)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"empty database path", func(c *Config) { c.Database.Path = "" }, "database.path"},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"metrics path", func(c *Config) { c.Metrics.Addr = ":9100"; c.Metrics.Path = "metrics" }, "metrics.path"},
		{"zero recent buffer", func(c *Config) { c.Engine.RecentDetections = 0 }, "engine.recent_detections"},
		{"bad safe zone", func(c *Config) { c.Handlers.SafeZones = []SafeZone{{Latitude: 91}} }, "safe_zones[0]"},
		{"zero history", func(c *Config) { c.Handlers.HistoryKeys = 0 }, "handlers.history_keys"},
		{"bad metrics address", func(c *Config) { c.Metrics.Addr = "not an address" }, "metrics.addr failed hostname_port"},
		{"metrics address port only", func(c *Config) { c.Metrics.Addr = ":9100" }, ""},
		{"bad safe zone longitude", func(c *Config) { c.Handlers.SafeZones = []SafeZone{{Longitude: 181}} }, "safe_zones[0].lon"},
		{"negative tolerance", func(c *Config) { c.Correlation.LocationTolerance = -1 }, "location_tolerance"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
