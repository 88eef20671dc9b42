// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads haul-calc settings from a YAML file with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/someonegg/minealloc"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Allocation AllocationConfig `yaml:"allocation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type AllocationConfig struct {
	Strategy    string  `yaml:"strategy"`    // greedy, proportional
	Sensitivity float64 `yaml:"sensitivity"` // grade band width, 0 disables
	Tolerance   float64 `yaml:"tolerance"`   // grade points, 0 disables
}

type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

func DefaultConfig() *Config {
	return &Config{
		Allocation: AllocationConfig{
			Strategy: string(minealloc.StrategyGreedy),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
// Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("MINEALLOC_STRATEGY"); v != "" {
		c.Allocation.Strategy = v
	}
	if v := os.Getenv("MINEALLOC_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("MINEALLOC_TOLERANCE"); v != "" {
		tol, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid MINEALLOC_TOLERANCE %q: %w", v, err)
		}
		c.Allocation.Tolerance = tol
	}
	return nil
}

func (c *Config) Validate() error {
	if _, err := minealloc.ParseStrategy(c.Allocation.Strategy); err != nil {
		return fmt.Errorf("allocation.strategy: %w", err)
	}
	if c.Allocation.Sensitivity < 0 || c.Allocation.Sensitivity > 100 {
		return fmt.Errorf("allocation.sensitivity %v outside [0,100]", c.Allocation.Sensitivity)
	}
	if c.Allocation.Tolerance < 0 || c.Allocation.Tolerance > 100 {
		return fmt.Errorf("allocation.tolerance %v outside [0,100]", c.Allocation.Tolerance)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q unknown", c.Logging.Level)
	}
	return nil
}
