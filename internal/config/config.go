// Package config loads the tracker configuration from a YAML file with
// environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the root configuration.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging"`
	Watcher  WatcherConfig  `mapstructure:"watcher"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// WatcherConfig controls the log-file watcher.
type WatcherConfig struct {
	// LogDirectory is the client's Logs directory containing Power.log.
	LogDirectory string        `mapstructure:"log_directory"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
}

// ServerConfig controls the outbound event surface.
type ServerConfig struct {
	WebSocket WebSocketConfig `mapstructure:"websocket"`
}

// WebSocketConfig configures the event broadcast endpoint.
type WebSocketConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
	Path    string `mapstructure:"path"`
}

// DatabaseConfig configures optional match-outcome persistence.
type DatabaseConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	URL      string `mapstructure:"url"`
	MaxConns int32  `mapstructure:"max_conns"`
}

// Load reads the configuration file at path. A missing file is not an
// error; defaults and TRACKER_* environment variables apply either way.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("watcher.log_directory", "Logs")
	v.SetDefault("watcher.poll_interval", 100*time.Millisecond)
	v.SetDefault("server.websocket.enabled", true)
	v.SetDefault("server.websocket.address", "127.0.0.1:8089")
	v.SetDefault("server.websocket.path", "/events")
	v.SetDefault("database.enabled", false)
	v.SetDefault("database.max_conns", 4)

	v.SetEnvPrefix("TRACKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// A present-but-broken file should fail loudly; a missing one falls
	// back to defaults.
	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}
