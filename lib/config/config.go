// Copyright 2026 The Droneplay Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/droneplay/droneplay/lib/mantra"
	"github.com/droneplay/droneplay/lib/sudoers"
)

// EnvironmentVariable names the variable holding the config file path.
const EnvironmentVariable = "DRONEPLAY_CONFIG"

// Config is the droneplay configuration.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	// Default: info
	LogLevel string `yaml:"log_level"`

	// Mantra configures mantra directories.
	Mantra MantraConfig `yaml:"mantra"`

	// Cage configures policy writes.
	Cage CageConfig `yaml:"cage"`
}

// MantraConfig configures mantra directories.
type MantraConfig struct {
	// Root is the parent of every per-user mantra directory. The
	// --path flag of the mantra commands overrides it.
	// Default: /var/lib/droneplay-mantra/
	Root string `yaml:"root"`
}

// CageConfig configures the cage commands. The policy directory itself
// is fixed at /etc/sudoers.d and deliberately absent here.
type CageConfig struct {
	// DefaultExecutable is what "cage lock" restricts a user to when
	// --path is not given.
	// Default: /usr/local/bin/droneplay
	DefaultExecutable string `yaml:"default_executable"`
}

// Default returns the built-in configuration. It is complete on its
// own; a config file only overrides it.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Mantra: MantraConfig{
			Root: mantra.DefaultRoot,
		},
		Cage: CageConfig{
			DefaultExecutable: sudoers.DefaultExecutable,
		},
	}
}

// Load loads the file named by DRONEPLAY_CONFIG, or returns [Default]
// when the variable is unset or empty.
func Load() (*Config, error) {
	path := os.Getenv(EnvironmentVariable)
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from path over the defaults, expands
// ${VAR} references in path fields, and validates the result.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}

	cfg.expandVariables()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// loadFile decodes a single file into c. Unknown keys are errors so a
// misspelled key does not silently fall back to a default.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables() {
	c.Mantra.Root = expandVars(c.Mantra.Root)
	c.Cage.DefaultExecutable = expandVars(c.Cage.DefaultExecutable)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars expands ${VAR} and ${VAR:-default} patterns from the
// process environment.
func expandVars(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}
		if value := os.Getenv(parts[1]); value != "" {
			return value
		}
		if len(parts) >= 3 {
			return parts[2]
		}
		return ""
	})
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if _, err := parseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}

	if c.Mantra.Root == "" {
		errs = append(errs, fmt.Errorf("mantra.root is required"))
	} else if !filepath.IsAbs(c.Mantra.Root) {
		errs = append(errs, fmt.Errorf("mantra.root must be absolute, got %q", c.Mantra.Root))
	}

	if c.Cage.DefaultExecutable == "" {
		errs = append(errs, fmt.Errorf("cage.default_executable is required"))
	} else if !filepath.IsAbs(c.Cage.DefaultExecutable) {
		errs = append(errs, fmt.Errorf("cage.default_executable must be absolute, got %q", c.Cage.DefaultExecutable))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Level returns LogLevel as a slog level. Validate has already
// rejected anything unparseable; Level falls back to info regardless.
func (c *Config) Level() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(name string) (slog.Level, error) {
	switch name {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("log_level must be one of debug, info, warn, error; got %q", name)
}
