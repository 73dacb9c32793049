// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package util provides utility functions for the hearth TUI application.

# String Utilities (string.go)

Rune- and width-aware helpers for terminal rendering:
  - TruncateRunes() - Truncate by character count with ellipsis
  - TruncateWidth() - Truncate by display width (CJK-aware, via go-runewidth)
  - StringWidth() / PadRight() - Display-width measurement and padding
  - Initials() - Derive a fallback glyph from a display name ("Dev Collective" -> "DC")
  - RuneLen() - Character count for UTF-8 strings

# File Utilities (atomic.go)

AtomicWriteFile() writes a file atomically with fsync, so a crash leaves
either the old file or the complete new file, never a partial write. Used by
the config package when persisting settings.
*/
package util
