// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides reusable UI components for the TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/hearth-tui/internal/model"
	"github.com/jeranaias/hearth-tui/internal/ui/styles"
	"github.com/jeranaias/hearth-tui/internal/util"
)

// =============================================================================
// RAIL ENTRIES
// =============================================================================

// EntryKind identifies what a rail entry activates.
type EntryKind int

const (
	// EntryHome is the Home destination at the top of the rail.
	EntryHome EntryKind = iota
	// EntryClub is one club destination.
	EntryClub
	// EntryCreate is the "create a club" action.
	EntryCreate
	// EntrySettings is the settings action.
	EntrySettings
)

// Entry is one activatable row of the rail.
type Entry struct {
	Kind EntryKind

	// ID is the club id for EntryClub entries; empty otherwise.
	ID string

	// Label is the accessible label: "Home", the club's name, or the
	// action name. It appears verbatim in the rendered row.
	Label string

	// Club holds the summary for EntryClub entries.
	Club model.ClubSummary
}

// =============================================================================
// NAVIGATION RAIL COMPONENT
// =============================================================================

// NavigationRail renders a fixed-width vertical list of destinations: an
// optional Home entry, one entry per club in input order, then the create
// and settings actions.
//
// The rail is fully controlled: it never mutates the club list or the
// selection. User activation is reported through the callback slots and the
// owner commits (or ignores) the change. The only state the rail keeps is
// its cursor, which is focus position, not selection.
type NavigationRail struct {
	theme *styles.Theme

	// Inputs, owned by the shell
	clubs    model.ClubList
	selected string
	showHome bool

	// Dimensions
	width  int
	height int

	// Cursor is the focused row index into Entries()
	cursor int

	// Callback slots. Nil callbacks are ignored.
	OnSelect   func(id string)
	OnCreate   func()
	OnSettings func()
}

// DefaultRailWidth is the rail width used before the shell applies config.
const DefaultRailWidth = 28

// NewNavigationRail creates a new rail component.
func NewNavigationRail(theme *styles.Theme) *NavigationRail {
	return &NavigationRail{
		theme:    theme,
		showHome: true,
		width:    DefaultRailWidth,
	}
}

// =============================================================================
// CONFIGURATION
// =============================================================================

// SetClubs replaces the club list the rail renders. The rail keeps only the
// read-only view; duplicate ids are the owner's responsibility.
func (r *NavigationRail) SetClubs(clubs model.ClubList) {
	r.clubs = clubs
	r.clampCursor()
}

// SetSelected sets the current selection: a club id, or model.Home.
// Ids absent from the club list are accepted; no entry renders selected.
func (r *NavigationRail) SetSelected(id string) {
	r.selected = id
}

// Selected returns the current selection input.
func (r *NavigationRail) Selected() string {
	return r.selected
}

// SetShowHome toggles the Home entry.
func (r *NavigationRail) SetShowHome(show bool) {
	r.showHome = show
	r.clampCursor()
}

// SetSize sets the component dimensions.
func (r *NavigationRail) SetSize(width, height int) {
	r.width = width
	r.height = height
}

// =============================================================================
// ENTRIES
// =============================================================================

// Entries returns the activatable rows in display order.
func (r *NavigationRail) Entries() []Entry {
	entries := make([]Entry, 0, len(r.clubs)+3)

	if r.showHome {
		entries = append(entries, Entry{Kind: EntryHome, Label: "Home"})
	}
	for _, c := range r.clubs {
		entries = append(entries, Entry{Kind: EntryClub, ID: c.ID, Label: c.Name, Club: c})
	}
	entries = append(entries,
		Entry{Kind: EntryCreate, Label: "Create a club"},
		Entry{Kind: EntrySettings, Label: "Settings"},
	)
	return entries
}

// isSelected reports whether an entry is visually marked selected: the Home
// entry iff the selection means home, a club entry iff the ids match.
// Actions are never marked.
func (r *NavigationRail) isSelected(e Entry) bool {
	switch e.Kind {
	case EntryHome:
		return model.IsHome(r.selected)
	case EntryClub:
		return e.ID == r.selected
	default:
		return false
	}
}

// =============================================================================
// CURSOR AND ACTIVATION
// =============================================================================

// CursorUp moves the focus one row up, stopping at the top.
func (r *NavigationRail) CursorUp() {
	if r.cursor > 0 {
		r.cursor--
	}
}

// CursorDown moves the focus one row down, stopping at the bottom.
func (r *NavigationRail) CursorDown() {
	if r.cursor < len(r.Entries())-1 {
		r.cursor++
	}
}

// Cursor returns the focused row index.
func (r *NavigationRail) Cursor() int {
	return r.cursor
}

// FocusSelected moves the cursor onto the entry matching the current
// selection, if one exists.
func (r *NavigationRail) FocusSelected() {
	for i, e := range r.Entries() {
		if r.isSelected(e) {
			r.cursor = i
			return
		}
	}
}

// Activate fires the callback for the focused entry: OnSelect with the club
// id (model.Home for the Home entry), or OnCreate/OnSettings for the
// actions. Exactly one callback fires per activation; nil slots are ignored.
func (r *NavigationRail) Activate() {
	entries := r.Entries()
	if r.cursor < 0 || r.cursor >= len(entries) {
		return
	}

	switch e := entries[r.cursor]; e.Kind {
	case EntryHome:
		if r.OnSelect != nil {
			r.OnSelect(model.Home)
		}
	case EntryClub:
		if r.OnSelect != nil {
			r.OnSelect(e.ID)
		}
	case EntryCreate:
		if r.OnCreate != nil {
			r.OnCreate()
		}
	case EntrySettings:
		if r.OnSettings != nil {
			r.OnSettings()
		}
	}
}

// ClickRow activates the entry rendered on the given view row, if any.
// Mouse clicks and keyboard activation share the same path: the cursor moves
// to the clicked entry and Activate fires its callback. Clicks on the
// divider or past the last row are ignored.
func (r *NavigationRail) ClickRow(row int) {
	entries := r.Entries()
	hasDivider := len(entries) > 2
	totalRows := len(entries)
	if hasDivider {
		totalRows++
	}

	// Mirror the window offset applied by visibleRows
	if r.height > 0 && totalRows > r.height {
		start := r.cursor - r.height + 1
		if start < 0 {
			start = 0
		}
		if start+r.height > totalRows {
			start = totalRows - r.height
		}
		row += start
	}

	idx := row
	if hasDivider {
		dividerRow := len(entries) - 2
		if row == dividerRow {
			return
		}
		if row > dividerRow {
			idx = row - 1
		}
	}
	if idx < 0 || idx >= len(entries) {
		return
	}

	r.cursor = idx
	r.Activate()
}

// clampCursor keeps the cursor on a real row after the entry count changes.
func (r *NavigationRail) clampCursor() {
	if n := len(r.Entries()); r.cursor >= n {
		r.cursor = n - 1
	}
	if r.cursor < 0 {
		r.cursor = 0
	}
}

// =============================================================================
// RENDERING
// =============================================================================

// View renders the rail.
func (r *NavigationRail) View() string {
	entries := r.Entries()

	rows := make([]string, 0, len(entries)+1)
	clubsSeen := false
	for i, e := range entries {
		// Divider between the destination list and the actions
		if e.Kind == EntryCreate && clubsSeen {
			rows = append(rows, r.renderDivider())
		}
		if e.Kind == EntryClub || e.Kind == EntryHome {
			clubsSeen = true
		}
		rows = append(rows, r.renderEntry(e, i == r.cursor))
	}

	rows = r.visibleRows(rows)

	rail := r.theme.Rail
	if r.height > 0 {
		rail = rail.Height(r.height)
	}
	return rail.Width(r.width).Render(strings.Join(rows, "\n"))
}

// renderEntry renders a single rail row.
//
// Layout: selection marker, glyph tile, label, then badges right-aligned.
// The label is the entry's accessible name, truncated to fit but otherwise
// verbatim.
func (r *NavigationRail) renderEntry(e Entry, focused bool) string {
	selected := r.isSelected(e)

	marker := "  "
	if selected {
		marker = "> "
	}

	glyph := r.renderGlyph(e)
	badges := r.renderBadges(e)

	// Room left for the label: total width minus marker, glyph cell,
	// separating space, badges, and the entry style's side padding.
	labelWidth := r.width - lipgloss.Width(marker) - lipgloss.Width(glyph) - 1 - lipgloss.Width(badges) - 2
	if labelWidth < 1 {
		labelWidth = 1
	}
	label := util.PadRight(util.TruncateWidth(e.Label, labelWidth), labelWidth)

	row := marker + glyph + " " + label + badges

	style := r.theme.RailEntry
	switch {
	case selected:
		style = r.theme.RailEntrySelected
	case focused:
		style = r.theme.RailEntryFocused
	}
	if e.Kind == EntryCreate || e.Kind == EntrySettings {
		if !focused {
			style = r.theme.RailAction
		}
	}
	return style.Render(row)
}

// renderGlyph renders the icon cell: the club's icon glyph when present,
// otherwise the fallback glyph derived from its name on the accent
// background. Home and the actions use fixed glyphs.
func (r *NavigationRail) renderGlyph(e Entry) string {
	switch e.Kind {
	case EntryHome:
		return r.theme.RailGlyph.Render(util.PadRight("~", 2))
	case EntryCreate:
		return r.theme.RailGlyph.Render(util.PadRight("+", 2))
	case EntrySettings:
		return r.theme.RailGlyph.Render(util.PadRight("*", 2))
	}

	if e.Club.Icon != "" {
		return r.theme.RailGlyph.Render(util.PadRight(util.TruncateWidth(e.Club.Icon, 2), 2))
	}
	glyph := util.PadRight(util.TruncateWidth(e.Club.FallbackGlyph(), 2), 2)
	return r.theme.GlyphStyle(e.Club.AccentColor).Render(glyph)
}

// renderBadges renders the mention indicator and the unread badge for club
// entries. The two are independent; both may show at once.
func (r *NavigationRail) renderBadges(e Entry) string {
	if e.Kind != EntryClub {
		return ""
	}

	var b strings.Builder
	if e.Club.HasMention() {
		b.WriteString(r.theme.RailMention.Render("@"))
	}
	if label := e.Club.BadgeLabel(); label != "" {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(r.theme.RailBadge.Render(label))
	}
	if b.Len() == 0 {
		return ""
	}
	return " " + b.String()
}

// renderDivider renders the separator between destinations and actions.
func (r *NavigationRail) renderDivider() string {
	w := r.width - 2
	if w < 1 {
		w = 1
	}
	return r.theme.RailDivider.Render(" " + strings.Repeat("-", w))
}

// visibleRows windows the rows around the cursor when the rail is taller
// than the terminal.
func (r *NavigationRail) visibleRows(rows []string) []string {
	if r.height <= 0 || len(rows) <= r.height {
		return rows
	}

	// Keep the cursor row in view. The divider row shifts indexes by at
	// most one; windowing on the cursor index is close enough for focus
	// visibility.
	start := r.cursor - r.height + 1
	if start < 0 {
		start = 0
	}
	end := start + r.height
	if end > len(rows) {
		end = len(rows)
		start = end - r.height
	}
	return rows[start:end]
}
