// Copyright 2026 The Droneplay Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for droneplay.
//
// Configuration is optional. When the DRONEPLAY_CONFIG environment
// variable names a file, [Load] reads it over the built-in defaults;
// otherwise [Default] is used as is. There is no search path and no
// ~/.config discovery, and no other environment variable overrides a
// value. Command-line flags override config values.
//
// Variable expansion is performed on path fields after loading:
// ${VAR} and ${VAR:-default} patterns are expanded from the process
// environment.
//
// The policy directory (/etc/sudoers.d) is not configurable.
package config
