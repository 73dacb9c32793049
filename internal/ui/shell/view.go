// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/hearth-tui/internal/model"
)

// View renders the full screen: rail and content side by side, status bar
// below.
func (m *Model) View() string {
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.rail.View(), m.contentView())
	return body + "\n" + m.statusBar()
}

// contentView picks the destination view for the content region.
func (m *Model) contentView() string {
	if m.showSettings {
		return m.content.ViewSettings(m.cfg.Summary())
	}
	if model.IsHome(m.selected) {
		return m.content.ViewHome(m.clubs)
	}
	if club, ok := m.clubs.Get(m.selected); ok {
		return m.content.ViewClub(club)
	}
	return m.content.ViewMissing(m.selected)
}

// statusBar renders the shortcut hints, or the last error when one is
// pending.
func (m *Model) statusBar() string {
	if m.lastErr != "" {
		return m.theme.StatusBar.Width(m.width).Render(m.lastErr)
	}

	hints := []string{
		m.theme.ShortcutKey.Render("↑/↓") + m.theme.ShortcutDesc.Render(" move"),
		m.theme.ShortcutKey.Render("enter") + m.theme.ShortcutDesc.Render(" open"),
	}
	if m.cfg.UI.ShowHome {
		hints = append(hints, m.theme.ShortcutKey.Render("g")+m.theme.ShortcutDesc.Render(" home"))
	}
	hints = append(hints, m.theme.ShortcutKey.Render("q")+m.theme.ShortcutDesc.Render(" quit"))

	return m.theme.StatusBar.Width(m.width).Render(strings.Join(hints, "  "))
}
