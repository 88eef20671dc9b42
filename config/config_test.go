// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/someonegg/minealloc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Setenv("MINEALLOC_STRATEGY", "")
	t.Setenv("MINEALLOC_LOG_LEVEL", "")
	t.Setenv("MINEALLOC_TOLERANCE", "")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "greedy", cfg.Allocation.Strategy)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "nested", "minealloc.yaml")

	cfg := DefaultConfig()
	cfg.Allocation.Strategy = string(minealloc.StrategyProportional)
	cfg.Allocation.Tolerance = 0.5
	cfg.Logging.Development = true

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "minealloc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("allocation:\n  sensitivity: 2.5\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2.5, cfg.Allocation.Sensitivity)
	assert.Equal(t, "greedy", cfg.Allocation.Strategy)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_BadYAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "minealloc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("allocation: [oops"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("Strategy and level", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MINEALLOC_STRATEGY", "proportional")
		t.Setenv("MINEALLOC_LOG_LEVEL", "debug")

		cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "proportional", cfg.Allocation.Strategy)
		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("Tolerance", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MINEALLOC_TOLERANCE", "1.25")

		cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
		require.NoError(t, err)
		assert.Equal(t, 1.25, cfg.Allocation.Tolerance)
	})

	t.Run("Bad tolerance", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MINEALLOC_TOLERANCE", "lots")

		_, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
		assert.Error(t, err)
	})
}

func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"UnknownStrategy", func(c *Config) { c.Allocation.Strategy = "random" }},
		{"NegativeSensitivity", func(c *Config) { c.Allocation.Sensitivity = -1 }},
		{"ToleranceOver100", func(c *Config) { c.Allocation.Tolerance = 101 }},
		{"UnknownLevel", func(c *Config) { c.Logging.Level = "loud" }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := DefaultConfig()
			c.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
