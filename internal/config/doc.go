// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package config provides unified configuration loading and management for hearth.

Configuration is resolved in three layers, later layers winning:

 1. Built-in defaults (Default)
 2. ~/.hearth/config.toml, or config.json when no TOML file exists
 3. HEARTH_* environment variables (HEARTH_ROSTER, HEARTH_STATE_DB,
    HEARTH_RAIL_WIDTH, HEARTH_SHOW_HOME, HEARTH_NO_COLOR)

Validation clamps rather than rejects: a malformed or out-of-range value
degrades to its nearest bound so startup never fails on configuration alone.
Saving always writes TOML, atomically.
*/
package config
