package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err, "a missing config file falls back to defaults")

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "Logs", cfg.Watcher.LogDirectory)
	assert.Equal(t, 100*time.Millisecond, cfg.Watcher.PollInterval)
	assert.True(t, cfg.Server.WebSocket.Enabled)
	assert.Equal(t, "127.0.0.1:8089", cfg.Server.WebSocket.Address)
	assert.Equal(t, "/events", cfg.Server.WebSocket.Path)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, int32(4), cfg.Database.MaxConns)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
logging:
  level: debug
  format: json
watcher:
  log_directory: /games/logs
  poll_interval: 250ms
server:
  websocket:
    enabled: false
database:
  enabled: true
  url: postgres://localhost/tracker
  max_conns: 8
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "/games/logs", cfg.Watcher.LogDirectory)
	assert.Equal(t, 250*time.Millisecond, cfg.Watcher.PollInterval)
	assert.False(t, cfg.Server.WebSocket.Enabled)
	// Unset keys keep their defaults.
	assert.Equal(t, "/events", cfg.Server.WebSocket.Path)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, "postgres://localhost/tracker", cfg.Database.URL)
	assert.Equal(t, int32(8), cfg.Database.MaxConns)
}

func TestLoadBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging: ["), 0o644))

	_, err := Load(path)
	assert.Error(t, err, "a present but malformed file must fail loudly")
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("TRACKER_LOGGING_LEVEL", "warn")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
}
