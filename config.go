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
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	// FieldMaxSize contains the maximum size of the field (both width and height).
	FieldMaxSize = 200
	// FieldMinSize contains the minimum size of the field (both width and height).
	FieldMinSize = 2
	// HeadingRandom selects a random initial heading.
	HeadingRandom = "random"
)

// ErrInvalidConfig is wrapped by all validation errors.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all settings of a session.
type Config struct {
	Width         int           `yaml:"width"`
	Height        int           `yaml:"height"`
	InitialLength int           `yaml:"initial_length"`
	Heading       string        `yaml:"heading"`
	StartSpeed    int           `yaml:"start_speed"`
	MaxSpeed      int           `yaml:"max_speed"`
	BaseInterval  time.Duration `yaml:"base_interval"`
	MinInterval   time.Duration `yaml:"min_interval"`
	Seed          int64         `yaml:"seed"` // 0 uses the current time
}

// DefaultConfig returns the settings used when nothing else is specified.
func DefaultConfig() Config {
	return Config{
		Width:         10,
		Height:        10,
		InitialLength: 3,
		Heading:       HeadingRandom,
		StartSpeed:    10,
		MaxSpeed:      20,
		BaseInterval:  1 * time.Second,
		MinInterval:   50 * time.Millisecond,
	}
}

// loadConfig reads a YAML file on top of the defaults.
// Keys missing from the file keep their default value.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	file, err := os.Open(path)
	if err != nil {
		return Config{}, errors.WithMessage(err, "open config")
	}
	defer func() {
		_ = file.Close()
	}()
	if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
		return Config{}, errors.WithMessage(err, "decode config")
	}
	return cfg, nil
}

// applyEnv replaces the field size with SNAKE_WIDTH and SNAKE_HEIGHT if they are set.
func (c *Config) applyEnv(getenv func(string) string) error {
	for _, v := range []struct {
		name  string
		field *int
	}{
		{"SNAKE_WIDTH", &c.Width},
		{"SNAKE_HEIGHT", &c.Height},
	} {
		env := getenv(v.name)
		if env == "" {
			continue
		}
		i, err := strconv.Atoi(env)
		if err != nil {
			return errors.WithMessagef(ErrInvalidConfig, "%s: %s", v.name, err)
		}
		fmt.Printf("Using %s from env: %d\n", v.name, i)
		*v.field = i
	}
	return nil
}

// Validate checks that a session can be started with c.
func (c Config) Validate() error {
	if c.Width < FieldMinSize || c.Width > FieldMaxSize {
		return errors.WithMessagef(ErrInvalidConfig, "width must be in [%d, %d] (is %d)", FieldMinSize, FieldMaxSize, c.Width)
	}
	if c.Height < FieldMinSize || c.Height > FieldMaxSize {
		return errors.WithMessagef(ErrInvalidConfig, "height must be in [%d, %d] (is %d)", FieldMinSize, FieldMaxSize, c.Height)
	}
	if limit := c.maxInitialLength(); c.InitialLength < 1 || c.InitialLength > limit {
		return errors.WithMessagef(ErrInvalidConfig, "initial length must be in [1, %d] (is %d)", limit, c.InitialLength)
	}
	if c.Heading != HeadingRandom && !Direction(c.Heading).Valid() {
		return errors.WithMessagef(ErrInvalidConfig, "unknown heading %q", c.Heading)
	}
	if c.MaxSpeed < 1 {
		return errors.WithMessagef(ErrInvalidConfig, "max speed must be positive (is %d)", c.MaxSpeed)
	}
	if c.StartSpeed < 1 || c.StartSpeed > c.MaxSpeed {
		return errors.WithMessagef(ErrInvalidConfig, "start speed must be in [1, %d] (is %d)", c.MaxSpeed, c.StartSpeed)
	}
	if c.MinInterval <= 0 || c.MinInterval > c.BaseInterval {
		return errors.WithMessagef(ErrInvalidConfig, "min interval must be in (0, %s] (is %s)", c.BaseInterval, c.MinInterval)
	}
	return nil
}

// maxInitialLength is the longest snake which fits behind a centred head in every heading.
func (c Config) maxInitialLength() int {
	m := c.Width
	if c.Height < m {
		m = c.Height
	}
	return (m + 1) / 2
}
