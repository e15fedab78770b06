package main

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the serve command configuration, loadable from a YAML file and
// overridable by flags.
type Config struct {
	// Addr is the listen address.
	Addr string `yaml:"addr"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// MetricsNamespace is the Prometheus namespace for host metrics.
	MetricsNamespace string `yaml:"metrics_namespace"`
}

// defaultConfig returns the built-in defaults.
func defaultConfig() Config {
	return Config{
		Addr:             ":8080",
		LogLevel:         "info",
		MetricsNamespace: "loom",
	}
}

// loadConfig reads a YAML config file over the defaults. An empty path
// returns the defaults unchanged.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// logger builds a slog logger at the configured level.
func (c Config) logger() (*slog.Logger, error) {
	var level slog.Level
	switch c.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info", "":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level %q", c.LogLevel)
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})), nil
}
