// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package storage persists read state and UI state across sessions.

The store is a single SQLite database (~/.hearth/state.db by default) with
two tables: read_state holds per-club unread and mention counters, and
ui_state holds small key/value pairs such as the last selection. At startup
the shell overlays stored counters onto the roster; selecting a club zeroes
its counters via MarkRead so badges do not reappear on the next launch.

The driver is modernc.org/sqlite, a pure Go build that keeps the binary
free of cgo.
*/
package storage
