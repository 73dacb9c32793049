// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the hearth TUI application.
package util

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// UNICODE: Rune-aware truncation preserves multi-byte characters.
// Display-width functions use go-runewidth so CJK and fullwidth characters
// count as 2 columns, matching what the terminal actually renders.

// TruncateRunes truncates a string to a maximum number of runes (characters).
// This is safe for UTF-8 strings as it counts characters, not bytes.
// If the string is truncated, "..." is appended.
func TruncateRunes(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	if maxRunes <= 3 {
		return string(runes[:maxRunes])
	}
	return string(runes[:maxRunes-3]) + "..."
}

// TruncateWidth truncates a string to a maximum display width in terminal
// columns. Double-width characters (CJK) take 2 columns. If the string is
// truncated, "..." is appended when there is room for it.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// StringWidth returns the display width of a string in terminal columns.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// PadRight pads a string with spaces to the given display width.
// Strings already at or beyond the width are returned unchanged.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// Initials derives a short fallback glyph from a display name.
//
// The result is the first letter of the first whitespace-separated token,
// concatenated with the first letter of the second token if one exists,
// uppercased: "Dev Collective" -> "DC", "Homebrew" -> "H". Tokens beyond the
// second are ignored. Empty or whitespace-only names yield "?".
func Initials(name string) string {
	tokens := strings.Fields(name)
	if len(tokens) == 0 {
		return "?"
	}

	var b strings.Builder
	for i, tok := range tokens {
		if i >= 2 {
			break
		}
		r := []rune(tok)[0]
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// RuneLen returns the number of runes (characters) in a string.
// This is safer than len() for UTF-8 strings.
func RuneLen(s string) int {
	return len([]rune(s))
}
