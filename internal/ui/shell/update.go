// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/hearth-tui/internal/model"
	"github.com/jeranaias/hearth-tui/internal/roster"
)

// statusBarHeight is the single row reserved below the panes.
const statusBarHeight = 1

// Update handles incoming messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case roster.ReloadedMsg:
		return m.handleReload(msg)
	}

	return m, nil
}

// handleKey routes key presses.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.lastErr = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.rail.CursorUp()

	case key.Matches(msg, m.keys.Down):
		m.rail.CursorDown()

	case key.Matches(msg, m.keys.Activate):
		m.rail.Activate()

	case key.Matches(msg, m.keys.Home):
		if m.cfg.UI.ShowHome {
			m.handleSelect(model.Home)
			m.rail.FocusSelected()
		}
	}

	return m, nil
}

// handleMouse routes left clicks inside the rail to the clicked entry.
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.X >= m.cfg.UI.RailWidth {
		return m, nil
	}
	m.lastErr = ""
	m.rail.ClickRow(msg.Y)
	return m, nil
}

// handleReload swaps in a re-read roster. The selection is kept as-is even
// when its club vanished from the file: selection is state the user set, and
// the content region already knows how to render a missing club.
func (m *Model) handleReload(msg roster.ReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.lastErr = "roster reload failed: " + msg.Err.Error()
	} else {
		clubs := msg.Clubs
		if m.store != nil {
			if overlaid, err := m.store.Overlay(clubs); err == nil {
				clubs = overlaid
			}
		}
		m.clubs = clubs
		m.rail.SetClubs(m.clubs)
	}

	// Keep the watch loop running
	if m.watcher != nil {
		return m, m.watcher.WaitCmd()
	}
	return m, nil
}

// layout pushes the current terminal size into the components.
func (m *Model) layout() {
	railWidth := m.cfg.UI.RailWidth
	paneHeight := m.height - statusBarHeight
	if paneHeight < 1 {
		paneHeight = 1
	}

	m.rail.SetSize(railWidth, paneHeight)
	// The rail draws a one-column right border
	m.content.SetSize(m.width-railWidth-1, paneHeight)
}
