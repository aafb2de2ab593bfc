// SPDX-License-Identifier: MIT

// Package config loads the webrank YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/webrank/pagerank"
)

// DefaultWebFile is the connectivity file read when nothing else is configured.
const DefaultWebFile = "web.txt"

// ErrInvalid reports a configuration value outside its allowed range.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full set of run settings.
type Config struct {
	WebFile   string      `yaml:"web_file"`
	LogLevel  string      `yaml:"log_level"`
	HistoryDB string      `yaml:"history_db"` // empty disables history
	Power     PowerConfig `yaml:"power"`
}

// PowerConfig tunes the power method.
type PowerConfig struct {
	MaxIterations int  `yaml:"max_iterations"`
	ConserveMass  bool `yaml:"conserve_mass"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		WebFile:  DefaultWebFile,
		LogLevel: zerolog.LevelInfoValue,
		Power: PowerConfig{
			MaxIterations: pagerank.DefaultMaxIterations,
		},
	}
}

// Load reads path on top of Default and validates the result.
// Keys missing from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if c.WebFile == "" {
		return fmt.Errorf("web_file is empty: %w", ErrInvalid)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Power.MaxIterations < 1 {
		return fmt.Errorf("power.max_iterations %d < 1: %w", c.Power.MaxIterations, ErrInvalid)
	}

	return nil
}

// Level parses LogLevel; an empty value means info.
func (c Config) Level() (zerolog.Level, error) {
	if c.LogLevel == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log_level %q: %w", c.LogLevel, ErrInvalid)
	}

	return lvl, nil
}

// EngineOptions maps the power settings to pagerank options.
func (c Config) EngineOptions() []pagerank.Option {
	opts := []pagerank.Option{pagerank.WithMaxIterations(c.Power.MaxIterations)}
	if c.Power.ConserveMass {
		opts = append(opts, pagerank.WithMassConservingTeleport())
	}

	return opts
}
