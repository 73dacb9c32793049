// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/hearth-tui/internal/config"
	"github.com/jeranaias/hearth-tui/internal/model"
	"github.com/jeranaias/hearth-tui/internal/roster"
	"github.com/jeranaias/hearth-tui/internal/storage"
	"github.com/jeranaias/hearth-tui/internal/ui/styles"
)

func testClubs() model.ClubList {
	return model.ClubList{
		{ID: "homebrew", Name: "Homebrew Guild", UnreadCount: 3},
		{ID: "devs", Name: "Dev Collective", MentionCount: 1},
	}
}

func newTestShell(clubs model.ClubList, store *storage.Store) *Model {
	m := New(config.Default(), styles.NewTheme(), clubs, store, nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	s, err := storage.Open(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// =============================================================================
// STARTUP TESTS
// =============================================================================

func TestNewSelectsFirstClub(t *testing.T) {
	m := newTestShell(testClubs(), nil)
	if m.Selected() != "homebrew" {
		t.Errorf("Selected() = %q, want %q", m.Selected(), "homebrew")
	}
}

func TestNewWithEmptyRoster(t *testing.T) {
	m := newTestShell(model.ClubList{}, nil)
	if !model.IsHome(m.Selected()) {
		t.Errorf("Selected() = %q, want home sentinel", m.Selected())
	}
	if !strings.Contains(m.View(), "No clubs yet") {
		t.Error("View() missing empty-roster hint")
	}
}

func TestNewRestoresPersistedSelection(t *testing.T) {
	store := newTestStore(t)
	if err := store.SaveSelection("devs"); err != nil {
		t.Fatalf("SaveSelection() error: %v", err)
	}

	m := newTestShell(testClubs(), store)
	if m.Selected() != "devs" {
		t.Errorf("Selected() = %q, want %q", m.Selected(), "devs")
	}
}

func TestNewIgnoresStaleSelection(t *testing.T) {
	store := newTestStore(t)
	if err := store.SaveSelection("vanished"); err != nil {
		t.Fatalf("SaveSelection() error: %v", err)
	}

	// The persisted id no longer resolves, so startup falls back to the
	// default rather than opening on a placeholder.
	m := newTestShell(testClubs(), store)
	if m.Selected() != "homebrew" {
		t.Errorf("Selected() = %q, want %q", m.Selected(), "homebrew")
	}
}

func TestNewOverlaysStoredCounters(t *testing.T) {
	store := newTestStore(t)
	if err := store.SetCounts("devs", 120, 0); err != nil {
		t.Fatalf("SetCounts() error: %v", err)
	}

	m := newTestShell(testClubs(), store)
	clubs := m.Clubs()
	if clubs[1].UnreadCount != 120 {
		t.Errorf("Clubs()[1].UnreadCount = %d, want 120", clubs[1].UnreadCount)
	}
	if !strings.Contains(m.View(), "99+") {
		t.Error("View() missing capped badge for overlaid counter")
	}
}

// =============================================================================
// SELECTION TESTS
// =============================================================================

func TestHandleSelectAcceptsUnknownID(t *testing.T) {
	m := newTestShell(testClubs(), nil)

	m.handleSelect("ghost")

	if m.Selected() != "ghost" {
		t.Errorf("Selected() = %q, want %q", m.Selected(), "ghost")
	}
	if !strings.Contains(m.View(), "is not in your roster") {
		t.Error("View() missing placeholder for unknown selection")
	}
}

func TestHandleSelectClearsCounters(t *testing.T) {
	store := newTestStore(t)
	if err := store.SetCounts("homebrew", 7, 2); err != nil {
		t.Fatalf("SetCounts() error: %v", err)
	}

	m := newTestShell(testClubs(), store)
	m.handleSelect("homebrew")

	if got := m.Clubs()[0]; got.UnreadCount != 0 || got.MentionCount != 0 {
		t.Errorf("counters = %d/%d after select, want 0/0", got.UnreadCount, got.MentionCount)
	}

	// The zeroed counters are persisted, not just in memory
	states, err := store.All()
	if err != nil {
		t.Fatalf("All() error: %v", err)
	}
	if rs := states["homebrew"]; rs.Unread != 0 || rs.Mentions != 0 {
		t.Errorf("stored counters = %d/%d, want 0/0", rs.Unread, rs.Mentions)
	}
}

func TestHandleSelectPersistsSelection(t *testing.T) {
	store := newTestStore(t)
	m := newTestShell(testClubs(), store)

	m.handleSelect("devs")

	id, ok, err := store.LastSelection()
	if err != nil || !ok {
		t.Fatalf("LastSelection() = %v, %v, %v", id, ok, err)
	}
	if id != "devs" {
		t.Errorf("LastSelection() = %q, want %q", id, "devs")
	}
}

// =============================================================================
// CREATE AND SETTINGS TESTS
// =============================================================================

func TestHandleCreateAppendsAndSelects(t *testing.T) {
	m := newTestShell(testClubs(), nil)

	m.handleCreate()

	clubs := m.Clubs()
	if len(clubs) != 3 {
		t.Fatalf("Clubs() has %d entries after create, want 3", len(clubs))
	}
	created := clubs[2]
	if created.ID == "" {
		t.Error("created club has empty id")
	}
	if m.Selected() != created.ID {
		t.Errorf("Selected() = %q, want created id %q", m.Selected(), created.ID)
	}
	if !strings.Contains(m.View(), created.Name) {
		t.Error("View() missing created club name")
	}
}

func TestSettingsPaneKeepsSelection(t *testing.T) {
	m := newTestShell(testClubs(), nil)
	m.handleSelect("devs")

	m.handleSettings()
	if !strings.Contains(m.View(), "Settings") || !strings.Contains(m.View(), "rail_width") {
		t.Error("View() missing settings pane")
	}
	if m.Selected() != "devs" {
		t.Errorf("Selected() = %q after opening settings, want %q", m.Selected(), "devs")
	}

	// Selecting anything closes the pane
	m.handleSelect("devs")
	if strings.Contains(m.View(), "rail_width") {
		t.Error("settings pane still open after selection")
	}
}

// =============================================================================
// KEYBOARD TESTS
// =============================================================================

func TestKeyboardSelectionRoundTrip(t *testing.T) {
	m := newTestShell(testClubs(), nil)

	// Cursor starts on the selected first club (rail row 1, after Home).
	// Move down to the second club and activate it.
	m.Update(keyRune('j'))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.Selected() != "devs" {
		t.Errorf("Selected() = %q after j+enter, want %q", m.Selected(), "devs")
	}

	// Back up to the first club and return via space
	m.Update(keyRune('k'))
	m.Update(keyRune(' '))

	if m.Selected() != "homebrew" {
		t.Errorf("Selected() = %q after k+space, want %q", m.Selected(), "homebrew")
	}

	view := m.View()
	if !strings.Contains(view, "> ") {
		t.Error("View() missing selection marker")
	}
}

func TestHomeShortcut(t *testing.T) {
	m := newTestShell(testClubs(), nil)

	m.Update(keyRune('g'))

	if !model.IsHome(m.Selected()) {
		t.Errorf("Selected() = %q after g, want home sentinel", m.Selected())
	}
	if !strings.Contains(m.View(), "2 clubs") {
		t.Error("View() missing home dashboard")
	}
}

func TestMouseClickSelectsClub(t *testing.T) {
	m := newTestShell(testClubs(), nil)

	// Row 2 of the rail is the second club (after Home and the first club)
	m.Update(tea.MouseMsg{
		X:      2,
		Y:      2,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})

	if m.Selected() != "devs" {
		t.Errorf("Selected() = %q after click, want %q", m.Selected(), "devs")
	}

	// Clicks outside the rail are ignored
	m.Update(tea.MouseMsg{
		X:      60,
		Y:      1,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	if m.Selected() != "devs" {
		t.Errorf("Selected() = %q after content click, want %q", m.Selected(), "devs")
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestShell(testClubs(), nil)

	_, cmd := m.Update(keyRune('q'))
	if cmd == nil {
		t.Fatal("Update(q) returned nil cmd, want quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Update(q) cmd did not produce tea.QuitMsg")
	}
}

// =============================================================================
// ROSTER RELOAD TESTS
// =============================================================================

func TestReloadSwapsClubsKeepsSelection(t *testing.T) {
	m := newTestShell(testClubs(), nil)
	m.handleSelect("devs")

	m.Update(roster.ReloadedMsg{Clubs: model.ClubList{
		{ID: "devs", Name: "Dev Collective (renamed)"},
	}})

	if m.Selected() != "devs" {
		t.Errorf("Selected() = %q after reload, want %q", m.Selected(), "devs")
	}
	if !strings.Contains(m.View(), "renamed") {
		t.Error("View() missing reloaded club name")
	}
}

func TestReloadRemovedSelectionRendersMissing(t *testing.T) {
	m := newTestShell(testClubs(), nil)
	m.handleSelect("devs")

	m.Update(roster.ReloadedMsg{Clubs: model.ClubList{
		{ID: "homebrew", Name: "Homebrew Guild"},
	}})

	// Selection survives the reload even though its club vanished
	if m.Selected() != "devs" {
		t.Errorf("Selected() = %q, want %q", m.Selected(), "devs")
	}
	if !strings.Contains(m.View(), "is not in your roster") {
		t.Error("View() missing placeholder for removed club")
	}
}

func TestReloadErrorKeepsClubs(t *testing.T) {
	m := newTestShell(testClubs(), nil)

	m.Update(roster.ReloadedMsg{Err: errFake})

	if len(m.Clubs()) != 2 {
		t.Errorf("Clubs() has %d entries after failed reload, want 2", len(m.Clubs()))
	}
	if !strings.Contains(m.View(), "roster reload failed") {
		t.Error("View() missing reload error on status bar")
	}
}

type fakeErr struct{}

func (fakeErr) Error() string { return "boom" }

var errFake = fakeErr{}
