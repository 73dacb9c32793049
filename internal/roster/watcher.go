// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package roster loads the club roster that feeds the navigation rail.
package roster

import (
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/jeranaias/hearth-tui/internal/model"
)

// =============================================================================
// RELOAD MESSAGE
// =============================================================================

// ReloadedMsg is delivered into the program when the roster file changed on
// disk and was re-read.
type ReloadedMsg struct {
	Clubs model.ClubList
	Err   error
}

// =============================================================================
// ROSTER WATCHER
// =============================================================================

// Watcher watches the roster file for changes. It watches the containing
// directory rather than the file itself because editors typically replace
// the file via rename, which drops a watch on the file's inode.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	debounce time.Duration

	changes chan struct{}
	done    chan struct{}
}

// DefaultDebounce coalesces bursts of write events from a single save.
const DefaultDebounce = 250 * time.Millisecond

// NewWatcher creates a watcher for the roster file at path.
func NewWatcher(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:     path,
		watcher:  fsw,
		debounce: DefaultDebounce,
		changes:  make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	return w, nil
}

// Start begins watching. Events for other files in the directory are
// filtered out; bursts are debounced into a single change notification.
func (w *Watcher) Start() error {
	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return err
	}
	go w.processEvents()
	return nil
}

// Close stops watching and releases resources.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

// processEvents translates raw fsnotify events into debounced change
// notifications on w.changes.
func (w *Watcher) processEvents() {
	var timer *time.Timer
	fire := func() {
		select {
		case w.changes <- struct{}{}:
		default: // A notification is already pending
		}
	}

	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, fire)
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; the roster just stops
			// live-reloading until restart.
		}
	}
}

// WaitCmd returns a command that blocks until the next roster change, then
// re-reads the file and delivers a ReloadedMsg. The shell re-issues the
// command after each message to keep the watch loop running.
func (w *Watcher) WaitCmd() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-w.done:
			return nil
		case <-w.changes:
		}
		clubs, err := Load(w.path)
		return ReloadedMsg{Clubs: clubs, Err: err}
	}
}
