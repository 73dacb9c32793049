// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package shell owns application state and wires the components together.
package shell

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jeranaias/hearth-tui/internal/config"
	"github.com/jeranaias/hearth-tui/internal/model"
	"github.com/jeranaias/hearth-tui/internal/roster"
	"github.com/jeranaias/hearth-tui/internal/storage"
	"github.com/jeranaias/hearth-tui/internal/ui/components"
	"github.com/jeranaias/hearth-tui/internal/ui/styles"
)

// =============================================================================
// SHELL MODEL
// =============================================================================

// Model is the top-level Bubble Tea model. It is the single owner of the
// club list and the current selection; the rail and content components only
// render what the shell hands them.
type Model struct {
	cfg   *config.Config
	theme *styles.Theme
	keys  KeyMap

	rail    *components.NavigationRail
	content *components.Content

	// Optional collaborators. Either may be nil: the shell runs without
	// persistence or live reload in tests and degraded environments.
	store   *storage.Store
	watcher *roster.Watcher

	// Canonical navigation state
	clubs    model.ClubList
	selected string

	// showSettings overlays the settings pane on the content region without
	// touching the selection.
	showSettings bool

	width  int
	height int

	// lastErr is surfaced on the status bar; cleared by the next key press.
	lastErr string
}

// New creates the shell, wires the rail callbacks, and restores persisted
// state when a store is present.
func New(cfg *config.Config, theme *styles.Theme, clubs model.ClubList, store *storage.Store, watcher *roster.Watcher) *Model {
	m := &Model{
		cfg:     cfg,
		theme:   theme,
		keys:    DefaultKeyMap(),
		rail:    components.NewNavigationRail(theme),
		content: components.NewContent(theme),
		store:   store,
		watcher: watcher,
		clubs:   clubs,
	}

	if store != nil {
		if overlaid, err := store.Overlay(clubs); err == nil {
			m.clubs = overlaid
		}
	}

	m.selected = m.restoreSelection()

	m.rail.OnSelect = m.handleSelect
	m.rail.OnCreate = m.handleCreate
	m.rail.OnSettings = m.handleSettings
	m.rail.SetShowHome(cfg.UI.ShowHome)
	m.rail.SetClubs(m.clubs)
	m.rail.SetSelected(m.selected)
	m.rail.FocusSelected()
	return m
}

// restoreSelection picks the startup selection: the persisted one when it
// still resolves against the roster, otherwise the default.
func (m *Model) restoreSelection() string {
	if m.store != nil {
		if id, ok, err := m.store.LastSelection(); err == nil && ok {
			if model.IsHome(id) || m.clubs.Contains(id) {
				return id
			}
		}
	}
	return model.DefaultSelection(m.clubs)
}

// Selected returns the current selection (a club id, or model.Home).
func (m *Model) Selected() string {
	return m.selected
}

// Clubs returns the current club list.
func (m *Model) Clubs() model.ClubList {
	return m.clubs
}

// Init starts the roster watch loop when a watcher is attached.
func (m *Model) Init() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return m.watcher.WaitCmd()
}

// =============================================================================
// CALLBACK HANDLERS
// =============================================================================

// handleSelect commits a selection. The write is permissive: any id is
// accepted, including ids absent from the roster; rendering handles the
// mismatch. Selecting a club that exists consumes its badges.
func (m *Model) handleSelect(id string) {
	m.selected = id
	m.showSettings = false
	m.rail.SetSelected(id)

	if i := m.clubs.IndexOf(id); i >= 0 {
		m.clubs[i].UnreadCount = 0
		m.clubs[i].MentionCount = 0
		m.rail.SetClubs(m.clubs)
		if m.store != nil {
			if err := m.store.MarkRead(id); err != nil {
				m.lastErr = err.Error()
			}
		}
	}

	if m.store != nil {
		if err := m.store.SaveSelection(id); err != nil {
			m.lastErr = err.Error()
		}
	}
}

// handleCreate appends a fresh club and selects it. There is no backend to
// create against, so the club is local: a generated id and a placeholder
// name the user can edit in the roster file.
func (m *Model) handleCreate() {
	club := model.ClubSummary{
		ID:   uuid.NewString(),
		Name: "New Club " + strconv.Itoa(len(m.clubs)+1),
	}
	m.clubs = append(m.clubs, club)
	m.rail.SetClubs(m.clubs)
	m.handleSelect(club.ID)
	m.rail.FocusSelected()
}

// handleSettings opens the settings pane. The selection is untouched;
// closing settings (by selecting anything) returns to it.
func (m *Model) handleSettings() {
	m.showSettings = true
}
