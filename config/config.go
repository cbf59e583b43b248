// Copyright (c) 2025, The Navis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the settings that control seeding, logging and
// sampling from a TOML or YAML file and the environment.
package config

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/mingminQ/navis-ros/base/errors"
	"github.com/mingminQ/navis-ros/base/iox/tomlx"
	"github.com/mingminQ/navis-ros/base/iox/yamlx"
	"github.com/mingminQ/navis-ros/base/logx"
	"github.com/mingminQ/navis-ros/base/randx"
)

// ErrUnknownFormat is returned by [Open] for files that are neither TOML nor YAML.
var ErrUnknownFormat = errors.New("config: unknown file format")

// Config holds the settings shared by the navis tools.
type Config struct {

	// GlobalSeed is the initial seed of the process-wide seed dispatcher.
	// Zero leaves the time-based default in place.
	GlobalSeed uint64 `toml:"global_seed" yaml:"global_seed" env:"NAVIS_GLOBAL_SEED"`

	// LogLevel is the minimum level of log messages to show,
	// such as "debug", "info", "warn" or "error".
	LogLevel string `toml:"log_level" yaml:"log_level" env:"NAVIS_LOG_LEVEL"`

	// Samples is the number of values to draw.
	Samples int `toml:"samples" yaml:"samples" env:"NAVIS_SAMPLES"`

	// Bins is the number of histogram bins.
	Bins int `toml:"bins" yaml:"bins" env:"NAVIS_BINS"`

	// Bias focuses folded gaussian draws around the upper bound.
	Bias float64 `toml:"bias" yaml:"bias" env:"NAVIS_BIAS"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		LogLevel: "warn",
		Samples:  10000,
		Bins:     20,
		Bias:     1,
	}
}

// Open reads cfg from the given file, choosing the format from its
// extension: .toml, or .yaml / .yml. Fields absent from the file keep
// their current values.
func Open(cfg *Config, file string) error {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".toml":
		return tomlx.Open(cfg, file)
	case ".yaml", ".yml":
		return yamlx.Open(cfg, file)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, file)
	}
}

// Save writes cfg to the given file, choosing the format from its
// extension as [Open] does.
func Save(cfg *Config, file string) error {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".toml":
		return tomlx.Save(cfg, file)
	case ".yaml", ".yml":
		return yamlx.Save(cfg, file)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, file)
	}
}

// Write writes cfg to w in the given format, "toml" or "yaml".
func Write(cfg *Config, w io.Writer, format string) error {
	switch strings.ToLower(format) {
	case "toml":
		return tomlx.Write(cfg, w)
	case "yaml", "yml":
		return yamlx.Write(cfg, w)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// ParseEnv overrides the fields of cfg that have a corresponding
// NAVIS_* environment variable set.
func ParseEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Read returns the default configuration, overridden by the given file
// if it is non-empty and then by the environment. It does not validate
// the result, so that callers can apply further overrides first.
func Read(file string) (Config, error) {
	cfg := Default()
	if file != "" {
		if err := Open(&cfg, file); err != nil {
			return cfg, err
		}
	}
	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Load is [Read] followed by [Config.Validate].
func Load(file string) (Config, error) {
	cfg, err := Read(file)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Validate returns an error describing every invalid field.
func (c *Config) Validate() error {
	var errs []error
	if _, err := logx.LevelFromString(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.Samples <= 0 {
		errs = append(errs, fmt.Errorf("config: samples must be positive, got %d", c.Samples))
	}
	if c.Bins <= 0 {
		errs = append(errs, fmt.Errorf("config: bins must be positive, got %d", c.Bins))
	}
	if err := randx.CheckBias(c.Bias); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Apply sets [logx.UserLevel] from LogLevel and, if GlobalSeed is
// non-zero, the global seed. It must run before any auto-seeded
// randomizer is created for the seed to take effect.
func (c *Config) Apply() error {
	l, err := logx.LevelFromString(c.LogLevel)
	if err != nil {
		return err
	}
	logx.UserLevel = l
	if c.GlobalSeed != 0 {
		randx.SetGlobalSeed(c.GlobalSeed)
	}
	return nil
}
