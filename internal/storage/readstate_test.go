// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jeranaias/hearth-tui/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// =============================================================================
// READ STATE TESTS
// =============================================================================

func TestSetCountsAndAll(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.SetCounts("homebrew", 12, 0))
	require.NoError(t, s.SetCounts("devs", 3, 1))

	states, err := s.All()
	require.NoError(t, err)
	require.Len(t, states, 2)
	require.Equal(t, 12, states["homebrew"].Unread)
	require.Equal(t, 0, states["homebrew"].Mentions)
	require.Equal(t, 3, states["devs"].Unread)
	require.Equal(t, 1, states["devs"].Mentions)
}

func TestSetCountsClampsNegative(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.SetCounts("devs", -5, -1))

	states, err := s.All()
	require.NoError(t, err)
	require.Equal(t, 0, states["devs"].Unread)
	require.Equal(t, 0, states["devs"].Mentions)
}

func TestMarkReadZeroesCounters(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.SetCounts("homebrew", 120, 2))
	require.NoError(t, s.MarkRead("homebrew"))

	states, err := s.All()
	require.NoError(t, err)
	require.Equal(t, 0, states["homebrew"].Unread)
	require.Equal(t, 0, states["homebrew"].Mentions)
}

func TestOverlay(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.SetCounts("devs", 7, 2))
	require.NoError(t, s.SetCounts("gone", 99, 0))

	roster := model.ClubList{
		{ID: "homebrew", Name: "Homebrew Guild", UnreadCount: 4},
		{ID: "devs", Name: "Dev Collective"},
	}

	out, err := s.Overlay(roster)
	require.NoError(t, err)
	require.Len(t, out, 2)

	// No stored state: file values survive
	require.Equal(t, 4, out[0].UnreadCount)
	// Stored state wins
	require.Equal(t, 7, out[1].UnreadCount)
	require.Equal(t, 2, out[1].MentionCount)
	// Input list untouched
	require.Equal(t, 0, roster[1].UnreadCount)
}

// =============================================================================
// SELECTION TESTS
// =============================================================================

func TestSelectionRoundTrip(t *testing.T) {
	s := openTestStore(t)

	_, ok, err := s.LastSelection()
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.SaveSelection("devs"))
	id, ok, err := s.LastSelection()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "devs", id)

	// Home sentinel persists like any other value
	require.NoError(t, s.SaveSelection(model.Home))
	id, ok, err = s.LastSelection()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, model.Home, id)
}

func TestClosedStore(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Close())

	_, err := s.All()
	require.ErrorIs(t, err, ErrClosed)
	require.ErrorIs(t, s.MarkRead("x"), ErrClosed)
	require.ErrorIs(t, s.SaveSelection("x"), ErrClosed)
}
