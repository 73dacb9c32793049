// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for hearth TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// ==========================================================================
	// RAIL STYLES
	// ==========================================================================

	Rail             lipgloss.Style
	RailEntry        lipgloss.Style
	RailEntrySelected lipgloss.Style
	RailEntryFocused lipgloss.Style
	RailGlyph        lipgloss.Style
	RailBadge        lipgloss.Style
	RailMention      lipgloss.Style
	RailAction       lipgloss.Style
	RailDivider      lipgloss.Style

	// ==========================================================================
	// CONTENT REGION STYLES
	// ==========================================================================

	Content       lipgloss.Style
	ContentTitle  lipgloss.Style
	ContentMeta   lipgloss.Style
	ContentBody   lipgloss.Style
	ContentEmpty  lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	// Detect terminal capabilities
	colorProfile := termenv.ColorProfile()
	hasTrueColor := colorProfile == termenv.TrueColor
	isDark := termenv.HasDarkBackground()

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: hasTrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// Rail container: fixed-width vertical strip with a right border
	t.Rail = lipgloss.NewStyle().
		Background(SurfaceDim).
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(Overlay)

	// Rail entries
	t.RailEntry = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Padding(0, 1)
	t.RailEntrySelected = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(SelectionBg).
		Bold(true).
		Padding(0, 1)
	t.RailEntryFocused = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Padding(0, 1).
		Underline(true)

	// Glyph tile, badge, and mention indicator
	t.RailGlyph = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(DefaultGlyphBg).
		Bold(true)
	t.RailBadge = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Amber).
		Bold(true)
	t.RailMention = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	// Create / settings actions
	t.RailAction = lipgloss.NewStyle().
		Foreground(Emerald).
		Padding(0, 1)
	t.RailDivider = lipgloss.NewStyle().
		Foreground(Overlay)

	// Content region
	t.Content = lipgloss.NewStyle().Padding(0, 2)
	t.ContentTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)
	t.ContentMeta = lipgloss.NewStyle().
		Foreground(TextMuted)
	t.ContentBody = lipgloss.NewStyle().
		Foreground(TextPrimary)
	t.ContentEmpty = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true).
		Align(lipgloss.Center)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)
	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)
	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)
}

// GlyphStyle returns the glyph tile style for a club accent token.
// An empty or malformed token keeps the default tile background.
func (t *Theme) GlyphStyle(accent string) lipgloss.Style {
	if accent == "" {
		return t.RailGlyph
	}
	return t.RailGlyph.Background(ParseAccent(accent))
}
