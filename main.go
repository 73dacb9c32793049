// hearth TUI - A terminal client for club communities.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/jeranaias/hearth-tui/internal/config"
	"github.com/jeranaias/hearth-tui/internal/roster"
	"github.com/jeranaias/hearth-tui/internal/storage"
	"github.com/jeranaias/hearth-tui/internal/ui/shell"
	"github.com/jeranaias/hearth-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	var (
		rosterFlag  = flag.String("roster", "", "path to the roster file (overrides config)")
		noColor     = flag.Bool("no-color", false, "disable color output")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("hearth %s (%s, built %s)\n", Version, GitCommit, BuildDate)
		return
	}

	// Load configuration at startup
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *rosterFlag != "" {
		cfg.Paths.Roster = *rosterFlag
	}
	if *noColor {
		cfg.UI.ColorEnabled = false
	}
	if !cfg.UI.ColorEnabled {
		forcePlainOutput()
	}

	theme := styles.NewTheme()

	rosterPath, err := cfg.RosterPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	clubs, err := roster.Load(rosterPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading roster: %v\n", err)
		os.Exit(1)
	}

	// Read-state store is optional: a failure degrades to a session without
	// persistence rather than blocking startup.
	var store *storage.Store
	if dbPath, err := cfg.StateDBPath(); err == nil {
		if s, err := storage.Open(dbPath); err == nil {
			store = s
			defer store.Close()
		} else {
			fmt.Fprintf(os.Stderr, "Warning: read state unavailable: %v\n", err)
		}
	}

	// Live roster reload is optional for the same reason.
	var watcher *roster.Watcher
	if w, err := roster.NewWatcher(rosterPath); err == nil {
		if err := w.Start(); err == nil {
			watcher = w
			defer watcher.Close()
		} else {
			w.Close()
		}
	}

	m := shell.New(cfg, theme, clubs, store, watcher)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running hearth: %v\n", err)
		os.Exit(1)
	}
}

// forcePlainOutput pins termenv to the ASCII profile so every style renders
// without color or attributes.
func forcePlainOutput() {
	os.Setenv("NO_COLOR", "1")
	termenv.SetDefaultOutput(termenv.NewOutput(os.Stdout, termenv.WithProfile(termenv.Ascii)))
}
