// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for clubs and navigation state.
package model

import (
	"github.com/jeranaias/hearth-tui/internal/util"
)

// =============================================================================
// CLUB SUMMARY TYPE
// =============================================================================

// ClubSummary describes one community ("club") as a selectable destination
// in the navigation rail. It is a plain value: the rail receives a read-only
// view per render and never mutates it.
type ClubSummary struct {
	// ID is an opaque stable identifier, unique within the owning collection.
	// Uniqueness is the owner's responsibility; the rail does not enforce it.
	ID string `toml:"id" json:"id"`

	// Name is the display label. Non-empty expected; it also derives the
	// fallback glyph when no icon is set.
	Name string `toml:"name" json:"name"`

	// Icon is an optional terminal glyph (typically an emoji) shown for the
	// club. Empty means the fallback glyph derived from Name is used.
	Icon string `toml:"icon" json:"icon"`

	// UnreadCount is the number of unseen messages. Zero means no badge.
	UnreadCount int `toml:"unread_count" json:"unread_count"`

	// MentionCount is the number of direct mentions. Zero means no
	// mention indicator. Independent of UnreadCount.
	MentionCount int `toml:"mention_count" json:"mention_count"`

	// AccentColor is an optional hex color token ("#FF7F50") used for the
	// fallback glyph's background.
	AccentColor string `toml:"accent_color" json:"accent_color"`

	// Welcome is optional markdown shown in the content region when the
	// club is active.
	Welcome string `toml:"welcome" json:"welcome"`
}

// FallbackGlyph returns the short text shown in place of a missing icon:
// first letter of the first name token plus the first letter of the second
// token if one exists, uppercased. Empty or whitespace-only names yield "?".
func (c ClubSummary) FallbackGlyph() string {
	return util.Initials(c.Name)
}

// HasUnread reports whether the unread badge should be shown.
func (c ClubSummary) HasUnread() bool {
	return c.UnreadCount > 0
}

// HasMention reports whether the mention indicator should be shown.
// Mentions and unreads never suppress each other.
func (c ClubSummary) HasMention() bool {
	return c.MentionCount > 0
}

// BadgeLabel returns the unread badge text: empty when there is nothing
// unread, the literal count up to 99, and "99+" above that.
func (c ClubSummary) BadgeLabel() string {
	if c.UnreadCount <= 0 {
		return ""
	}
	if c.UnreadCount > 99 {
		return "99+"
	}
	return itoa(c.UnreadCount)
}

// itoa converts a small positive count to a string without pulling fmt into
// the render path.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}

// =============================================================================
// CLUB LIST
// =============================================================================

// ClubList is an ordered collection of clubs. Order is display order,
// top to bottom in the rail. The list is owned exclusively by the shell.
type ClubList []ClubSummary

// IndexOf returns the position of the club with the given id, or -1.
func (l ClubList) IndexOf(id string) int {
	for i, c := range l {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// Contains reports whether a club with the given id is in the list.
func (l ClubList) Contains(id string) bool {
	return l.IndexOf(id) >= 0
}

// Get returns the club with the given id and whether it was found.
func (l ClubList) Get(id string) (ClubSummary, bool) {
	if i := l.IndexOf(id); i >= 0 {
		return l[i], true
	}
	return ClubSummary{}, false
}

// TotalUnread sums the unread counters across the list.
func (l ClubList) TotalUnread() int {
	total := 0
	for _, c := range l {
		total += c.UnreadCount
	}
	return total
}

// TotalMentions sums the mention counters across the list.
func (l ClubList) TotalMentions() int {
	total := 0
	for _, c := range l {
		total += c.MentionCount
	}
	return total
}
