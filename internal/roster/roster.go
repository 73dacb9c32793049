// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package roster loads the club roster that feeds the navigation rail.
package roster

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/hearth-tui/internal/model"
)

// =============================================================================
// ROSTER FILE FORMAT
// =============================================================================

// File is the on-disk roster document.
//
//	[[clubs]]
//	id = "homebrew"
//	name = "Homebrew Guild"
//	icon = "🍺"
//	accent_color = "#FF7F50"
//	welcome = "Grain, hops, and patience."
type File struct {
	Clubs []model.ClubSummary `toml:"clubs"`
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the roster file at path. A missing file yields an empty
// roster, not an error: first launch has no roster yet.
//
// Entries are taken as-is, in file order. Duplicate or empty ids are the
// roster author's responsibility; the UI treats them permissively rather
// than rejecting the file.
func Load(path string) (model.ClubList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.ClubList{}, nil
		}
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse roster: %w", err)
	}
	return model.ClubList(f.Clubs), nil
}
