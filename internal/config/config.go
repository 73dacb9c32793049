// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for hearth.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.hearth/config.toml
//   - ~/.hearth/config.json
//   - Built-in defaults
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/hearth-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete hearth configuration.
type Config struct {
	// Version of the config schema
	Version string `toml:"version" json:"version"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`

	// Paths configuration
	Paths PathsConfig `toml:"paths" json:"paths"`
}

// UIConfig contains presentation settings.
type UIConfig struct {
	// RailWidth is the fixed width of the navigation rail in columns.
	// Clamped to [MinRailWidth, MaxRailWidth] during validation.
	RailWidth int `toml:"rail_width" json:"rail_width"`

	// ShowHome toggles the Home entry at the top of the rail.
	ShowHome bool `toml:"show_home" json:"show_home"`

	// ColorEnabled disables all color output when false (same effect as
	// the --no-color flag).
	ColorEnabled bool `toml:"color_enabled" json:"color_enabled"`
}

// PathsConfig contains file locations.
type PathsConfig struct {
	// Roster is the club roster file. Empty means ~/.hearth/roster.toml.
	Roster string `toml:"roster" json:"roster"`

	// StateDB is the read-state database. Empty means ~/.hearth/state.db.
	StateDB string `toml:"state_db" json:"state_db"`
}

// Rail width bounds. Narrower than MinRailWidth leaves no room for a label
// next to the glyph and badges; wider than MaxRailWidth starves the content
// region on an 80-column terminal.
const (
	MinRailWidth     = 16
	MaxRailWidth     = 48
	DefaultRailWidth = 28
)

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version: "1",
		UI: UIConfig{
			RailWidth:    DefaultRailWidth,
			ShowHome:     true,
			ColorEnabled: true,
		},
		Paths: PathsConfig{},
	}
}

// BaseDir returns the hearth configuration directory (~/.hearth).
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".hearth"), nil
}

// RosterPath resolves the roster file location.
func (c *Config) RosterPath() (string, error) {
	if c.Paths.Roster != "" {
		return c.Paths.Roster, nil
	}
	base, err := BaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "roster.toml"), nil
}

// StateDBPath resolves the read-state database location.
func (c *Config) StateDBPath() (string, error) {
	if c.Paths.StateDB != "" {
		return c.Paths.StateDB, nil
	}
	base, err := BaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "state.db"), nil
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads configuration from the default locations, applies environment
// overrides, and validates the result. A missing config file is not an
// error; defaults apply.
func Load() (*Config, error) {
	base, err := BaseDir()
	if err != nil {
		return nil, err
	}
	return LoadFrom(base)
}

// LoadFrom reads configuration from a specific directory. TOML takes
// precedence over JSON when both exist.
func LoadFrom(dir string) (*Config, error) {
	cfg := Default()

	tomlPath := filepath.Join(dir, "config.toml")
	jsonPath := filepath.Join(dir, "config.json")

	switch {
	case fileExists(tomlPath):
		if _, err := toml.DecodeFile(tomlPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", tomlPath, err)
		}
	case fileExists(jsonPath):
		data, err := os.ReadFile(jsonPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", jsonPath, err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", jsonPath, err)
		}
	}

	cfg.applyEnvOverrides()
	cfg.Validate()
	return cfg, nil
}

// applyEnvOverrides applies HEARTH_* environment variables on top of file
// values. Malformed values are ignored rather than fatal.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("HEARTH_ROSTER"); v != "" {
		c.Paths.Roster = v
	}
	if v := os.Getenv("HEARTH_STATE_DB"); v != "" {
		c.Paths.StateDB = v
	}
	if v := os.Getenv("HEARTH_RAIL_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.UI.RailWidth = n
		}
	}
	if v := os.Getenv("HEARTH_SHOW_HOME"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.UI.ShowHome = b
		}
	}
	if v := os.Getenv("HEARTH_NO_COLOR"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.UI.ColorEnabled = !b
		}
	}
}

// Validate clamps out-of-range values to their bounds. It never fails:
// a usable configuration always comes out.
func (c *Config) Validate() {
	if c.UI.RailWidth < MinRailWidth {
		c.UI.RailWidth = MinRailWidth
	}
	if c.UI.RailWidth > MaxRailWidth {
		c.UI.RailWidth = MaxRailWidth
	}
	if c.Version == "" {
		c.Version = "1"
	}
}

// =============================================================================
// SAVING
// =============================================================================

// Save writes the configuration as TOML to the given directory atomically.
func (c *Config) Save(dir string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	path := filepath.Join(dir, "config.toml")
	if err := util.AtomicWriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Summary returns the resolved settings as display lines for the settings
// pane.
func (c *Config) Summary() []string {
	roster, _ := c.RosterPath()
	stateDB, _ := c.StateDBPath()
	return []string{
		"rail_width = " + strconv.Itoa(c.UI.RailWidth),
		"show_home = " + strconv.FormatBool(c.UI.ShowHome),
		"color_enabled = " + strconv.FormatBool(c.UI.ColorEnabled),
		"roster = " + roster,
		"state_db = " + stateDB,
	}
}

// fileExists reports whether a path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
