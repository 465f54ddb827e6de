package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPaths []string // .hcl / .toml files or directories
	Inputs      []string // JSON or YAML record lists
	Summary     string   // run only this summary; empty runs all

	LogFormat string
	LogLevel  string
	Workers   int
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.ConfigPaths) == 0 {
		return nil, errors.New("ConfigPaths is a required configuration field and cannot be empty")
	}
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("Workers must be at least 1, got %d", cfg.Workers)
	}
	if _, ok := logLevels[cfg.LogLevel]; !ok && cfg.LogLevel != "" {
		return nil, fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}
	return &cfg, nil
}
