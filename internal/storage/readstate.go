// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides read-state persistence for hearth TUI.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/jeranaias/hearth-tui/internal/model"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrClosed is returned for operations on a closed store.
	ErrClosed = errors.New("read-state store is closed")
)

// =============================================================================
// READ STATE
// =============================================================================

// ReadState holds the persisted counters for one club. It follows the
// watermark pattern: the client does not track individual messages, only
// how many remain unseen for each club and when that last changed.
type ReadState struct {
	ClubID    string
	Unread    int
	Mentions  int
	UpdatedAt time.Time
}

// =============================================================================
// STORE
// =============================================================================

// Store persists read state and UI state in a local SQLite database.
type Store struct {
	db     *sql.DB
	mu     sync.Mutex
	closed bool
}

const schema = `
CREATE TABLE IF NOT EXISTS read_state (
	club_id    TEXT PRIMARY KEY,
	unread     INTEGER NOT NULL DEFAULT 0,
	mentions   INTEGER NOT NULL DEFAULT 0,
	updated_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS ui_state (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

const selectionKey = "selection"

// Open opens (creating if necessary) the store at the given path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open state database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

// =============================================================================
// READ STATE OPERATIONS
// =============================================================================

// All returns the persisted read state keyed by club id.
func (s *Store) All() (map[string]ReadState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}

	rows, err := s.db.Query("SELECT club_id, unread, mentions, updated_at FROM read_state")
	if err != nil {
		return nil, fmt.Errorf("failed to query read state: %w", err)
	}
	defer rows.Close()

	states := make(map[string]ReadState)
	for rows.Next() {
		var rs ReadState
		var ts int64
		if err := rows.Scan(&rs.ClubID, &rs.Unread, &rs.Mentions, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan read state: %w", err)
		}
		rs.UpdatedAt = time.Unix(ts, 0)
		states[rs.ClubID] = rs
	}
	return states, rows.Err()
}

// SetCounts upserts the counters for a club. This is the ingest path for
// whatever feeds the client (sync, import, tests).
func (s *Store) SetCounts(clubID string, unread, mentions int) error {
	if unread < 0 {
		unread = 0
	}
	if mentions < 0 {
		mentions = 0
	}
	return s.upsert(clubID, unread, mentions)
}

// MarkRead zeroes the counters for a club. Called when the user selects
// the club: opening a destination consumes its badges.
func (s *Store) MarkRead(clubID string) error {
	return s.upsert(clubID, 0, 0)
}

func (s *Store) upsert(clubID string, unread, mentions int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	_, err := s.db.Exec(`
		INSERT INTO read_state (club_id, unread, mentions, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(club_id) DO UPDATE SET
			unread = excluded.unread,
			mentions = excluded.mentions,
			updated_at = excluded.updated_at`,
		clubID, unread, mentions, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to upsert read state: %w", err)
	}
	return nil
}

// Overlay applies persisted counters onto a roster list, returning a new
// list. Roster entries without stored state keep their file values; stored
// state for clubs no longer in the roster is ignored.
func (s *Store) Overlay(clubs model.ClubList) (model.ClubList, error) {
	states, err := s.All()
	if err != nil {
		return nil, err
	}

	out := make(model.ClubList, len(clubs))
	copy(out, clubs)
	for i, c := range out {
		if rs, ok := states[c.ID]; ok {
			out[i].UnreadCount = rs.Unread
			out[i].MentionCount = rs.Mentions
		}
	}
	return out, nil
}

// =============================================================================
// SELECTION PERSISTENCE
// =============================================================================

// SaveSelection persists the current selection (a club id, or the home
// sentinel).
func (s *Store) SaveSelection(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	_, err := s.db.Exec(`
		INSERT INTO ui_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		selectionKey, id)
	if err != nil {
		return fmt.Errorf("failed to save selection: %w", err)
	}
	return nil
}

// LastSelection returns the persisted selection and whether one was stored.
func (s *Store) LastSelection() (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return "", false, ErrClosed
	}

	var value string
	err := s.db.QueryRow("SELECT value FROM ui_state WHERE key = ?", selectionKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to load selection: %w", err)
	}
	return value, true, nil
}
