// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package roster loads the club roster that feeds the navigation rail.

The roster is a TOML file (~/.hearth/roster.toml by default) listing clubs
in display order. Load (roster.go) reads it permissively: a missing file is
an empty roster, and questionable entries (duplicate ids, empty names) are
passed through for the UI's documented fallback handling rather than
rejected.

Watcher (watcher.go) keeps the running program in sync with the file. It
watches the containing directory via fsnotify, debounces save bursts, and
exposes the change stream as a Bubble Tea command: WaitCmd blocks until the
next change, re-reads the roster, and delivers a ReloadedMsg for the shell
to swap in.
*/
package roster
