// Package config loads the optional YAML configuration file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the resolved service configuration. Every field has a default;
// the file itself is optional.
type Config struct {
	Listen       string
	CacheTTL     time.Duration
	FetchTimeout time.Duration
}

// fileConfig mirrors the YAML file. Durations are strings ("30m", "15s")
// parsed with time.ParseDuration.
type fileConfig struct {
	Listen       string `yaml:"listen"`
	CacheTTL     string `yaml:"cache_ttl"`
	FetchTimeout string `yaml:"fetch_timeout"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Listen:       ":5000",
		CacheTTL:     30 * time.Minute,
		FetchTimeout: 15 * time.Second,
	}
}

// Load reads the config file at path, applying defaults for any missing
// field. A missing file is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	if fc.Listen != "" {
		cfg.Listen = fc.Listen
	}
	if fc.CacheTTL != "" {
		d, err := time.ParseDuration(fc.CacheTTL)
		if err != nil {
			return cfg, fmt.Errorf("invalid cache_ttl: %w", err)
		}
		cfg.CacheTTL = d
	}
	if fc.FetchTimeout != "" {
		d, err := time.ParseDuration(fc.FetchTimeout)
		if err != nil {
			return cfg, fmt.Errorf("invalid fetch_timeout: %w", err)
		}
		cfg.FetchTimeout = d
	}

	return cfg, nil
}
