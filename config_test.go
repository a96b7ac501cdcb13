// SPDX-License-Identifier: Apache-2.0
// Copyright 2020,2021 Marcus Soll
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	  http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
width: 20
height: 15
heading: left
base_interval: 2s
seed: 7
`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Width)
	assert.Equal(t, 15, cfg.Height)
	assert.Equal(t, "left", cfg.Heading)
	assert.Equal(t, 2*time.Second, cfg.BaseInterval)
	assert.Equal(t, int64(7), cfg.Seed)

	// Untouched keys keep their defaults
	def := DefaultConfig()
	assert.Equal(t, def.InitialLength, cfg.InitialLength)
	assert.Equal(t, def.MaxSpeed, cfg.MaxSpeed)
	assert.Equal(t, def.MinInterval, cfg.MinInterval)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)

	_, err = loadConfig(writeConfig(t, "width: [1, 2"))
	assert.Error(t, err)

	_, err = loadConfig(writeConfig(t, "width: wide"))
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
		valid  bool
	}{
		{"smallest field", func(c *Config) { c.Width, c.Height, c.InitialLength = 2, 2, 1 }, true},
		{"narrow", func(c *Config) { c.Width = 1 }, false},
		{"too high", func(c *Config) { c.Height = FieldMaxSize + 1 }, false},
		{"no snake", func(c *Config) { c.InitialLength = 0 }, false},
		{"longest snake", func(c *Config) { c.Width, c.Height, c.InitialLength = 5, 8, 3 }, true},
		{"snake too long", func(c *Config) { c.Width, c.Height, c.InitialLength = 5, 8, 4 }, false},
		{"fixed heading", func(c *Config) { c.Heading = "down" }, true},
		{"unknown heading", func(c *Config) { c.Heading = "north" }, false},
		{"start above max", func(c *Config) { c.StartSpeed = c.MaxSpeed + 1 }, false},
		{"start zero", func(c *Config) { c.StartSpeed = 0 }, false},
		{"max zero", func(c *Config) { c.MaxSpeed = 0 }, false},
		{"min interval zero", func(c *Config) { c.MinInterval = 0 }, false},
		{"min above base", func(c *Config) { c.MinInterval = 2 * c.BaseInterval }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, ErrInvalidConfig), "unexpected error %v", err)
		})
	}
}

func TestConfigLongestSnakeFits(t *testing.T) {
	for size := FieldMinSize; size < 12; size++ {
		cfg := DefaultConfig()
		cfg.Width, cfg.Height = size, size
		cfg.InitialLength = cfg.maxInitialLength()
		require.NoError(t, cfg.Validate())
		for _, d := range Directions {
			assert.NotPanics(t, func() {
				NewSnake(Point{X: uint16(size / 2), Y: uint16(size / 2)}, cfg.InitialLength, d)
			}, "size %d heading %s", size, d)
		}
	}
}

func TestConfigApplyEnv(t *testing.T) {
	env := map[string]string{"SNAKE_WIDTH": "30"}
	cfg := DefaultConfig()
	require.NoError(t, cfg.applyEnv(func(k string) string { return env[k] }))
	assert.Equal(t, 30, cfg.Width)
	assert.Equal(t, DefaultConfig().Height, cfg.Height)

	env["SNAKE_HEIGHT"] = "tall"
	err := cfg.applyEnv(func(k string) string { return env[k] })
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}
