// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for hearth TUI.

# Colors (colors.go)

A small adaptive palette: every color is a lipgloss.AdaptiveColor pair so the
UI reads correctly on both light and dark terminals without configuration.
ParseAccent converts per-club accent tokens ("#FF7F50") into terminal colors,
degrading to a neutral tile background on malformed input.

# Theme (theme.go)

Theme bundles the configured lipgloss styles for the rail, the content
region, and the status bar. Components take a *Theme at construction:

	theme := styles.NewTheme()
	rail := components.NewNavigationRail(theme)

Terminal capability (color profile, dark background) is detected once in
NewTheme via termenv.
*/
package styles
