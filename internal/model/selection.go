// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for clubs and navigation state.
package model

// =============================================================================
// SELECTION
// =============================================================================

// Home is the selection sentinel meaning the Home destination is active
// (no club selected).
const Home = ""

// IsHome reports whether a selection value means the Home destination.
func IsHome(id string) bool {
	return id == Home
}

// DefaultSelection returns the initial selection for a club list: the first
// club's id when the list is non-empty, otherwise Home.
func DefaultSelection(clubs ClubList) string {
	if len(clubs) > 0 {
		return clubs[0].ID
	}
	return Home
}
