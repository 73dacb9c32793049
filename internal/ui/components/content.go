// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides reusable UI components for the TUI.
package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/hearth-tui/internal/model"
	"github.com/jeranaias/hearth-tui/internal/ui/styles"
)

// =============================================================================
// CONTENT PANE COMPONENT
// =============================================================================

// Content renders the region beside the rail for whatever destination is
// currently active: the home dashboard, a club, the settings pane, or a
// placeholder when the selection points at a club that is not in the roster.
type Content struct {
	theme  *styles.Theme
	width  int
	height int

	// markdown renderer for club welcome text; rebuilt on resize
	renderer *glamour.TermRenderer
}

// NewContent creates a new content pane.
func NewContent(theme *styles.Theme) *Content {
	return &Content{theme: theme}
}

// SetSize sets the component dimensions and invalidates the markdown
// renderer so word wrap follows the new width.
func (c *Content) SetSize(width, height int) {
	if width != c.width {
		c.renderer = nil
	}
	c.width = width
	c.height = height
}

// =============================================================================
// DESTINATION VIEWS
// =============================================================================

// ViewHome renders the home dashboard: roster totals and a hint.
func (c *Content) ViewHome(clubs model.ClubList) string {
	var b strings.Builder
	b.WriteString(c.theme.ContentTitle.Render("Home"))
	b.WriteString("\n\n")

	if len(clubs) == 0 {
		b.WriteString(c.theme.ContentEmpty.Width(c.innerWidth()).Render("No clubs yet. Press + to create one."))
		return c.frame(b.String())
	}

	b.WriteString(c.theme.ContentMeta.Render(
		strconv.Itoa(len(clubs)) + " clubs, " +
			strconv.Itoa(clubs.TotalUnread()) + " unread, " +
			strconv.Itoa(clubs.TotalMentions()) + " mentions"))
	b.WriteString("\n\n")

	for _, club := range clubs {
		line := club.Name
		if label := club.BadgeLabel(); label != "" {
			line += "  " + c.theme.RailBadge.Render(label)
		}
		if club.HasMention() {
			line += "  " + c.theme.RailMention.Render("@")
		}
		b.WriteString(c.theme.ContentBody.Render(line))
		b.WriteString("\n")
	}
	return c.frame(b.String())
}

// ViewClub renders the active club: header, counters, and its welcome
// markdown when present.
func (c *Content) ViewClub(club model.ClubSummary) string {
	var b strings.Builder
	b.WriteString(c.theme.ContentTitle.Render(club.Name))
	b.WriteString("\n")

	meta := "id " + club.ID
	if club.HasUnread() {
		meta += ", " + club.BadgeLabel() + " unread"
	}
	if club.HasMention() {
		meta += ", mentioned"
	}
	b.WriteString(c.theme.ContentMeta.Render(meta))
	b.WriteString("\n\n")

	if club.Welcome != "" {
		b.WriteString(c.renderMarkdown(club.Welcome))
	} else {
		b.WriteString(c.theme.ContentEmpty.Width(c.innerWidth()).Render("Nothing here yet."))
	}
	return c.frame(b.String())
}

// ViewMissing renders the placeholder for a selected id that is not in the
// roster. Selection is a permissive write, so this state is reachable and
// deliberate, not an error.
func (c *Content) ViewMissing(id string) string {
	var b strings.Builder
	b.WriteString(c.theme.ContentTitle.Render("Unknown club"))
	b.WriteString("\n\n")
	b.WriteString(c.theme.ContentEmpty.Width(c.innerWidth()).Render("\"" + id + "\" is not in your roster."))
	return c.frame(b.String())
}

// ViewSettings renders the settings pane with the resolved configuration.
func (c *Content) ViewSettings(lines []string) string {
	var b strings.Builder
	b.WriteString(c.theme.ContentTitle.Render("Settings"))
	b.WriteString("\n\n")
	for _, line := range lines {
		b.WriteString(c.theme.ContentBody.Render(line))
		b.WriteString("\n")
	}
	return c.frame(b.String())
}

// =============================================================================
// HELPERS
// =============================================================================

// renderMarkdown renders welcome markdown with glamour, falling back to the
// raw text if rendering fails. Inputs stay total: a bad document degrades,
// it does not error out of the render path.
func (c *Content) renderMarkdown(md string) string {
	if c.renderer == nil {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(c.innerWidth()),
		)
		if err != nil {
			return c.theme.ContentBody.Render(md)
		}
		c.renderer = r
	}

	out, err := c.renderer.Render(md)
	if err != nil {
		return c.theme.ContentBody.Render(md)
	}
	return out
}

// innerWidth is the usable width inside the content padding.
func (c *Content) innerWidth() int {
	w := c.width - 4
	if w < 10 {
		w = 10
	}
	return w
}

// frame wraps a destination view in the content container.
func (c *Content) frame(body string) string {
	style := c.theme.Content.Width(c.width)
	if c.height > 0 {
		style = style.Height(c.height)
	}
	return style.Render(body)
}
