// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package model contains the data structures for clubs and navigation state.

# Core Types

ClubSummary (club.go) describes one community as a selectable destination:
identity, display name, optional icon glyph, unread/mention counters, and an
optional accent color. Derived presentation (fallback glyph, badge label) is
a pure function of the individual summary, never of its position in a list.

ClubList (club.go) is the ordered collection the shell owns. Order is display
order. The navigation rail receives a read-only view per render.

# Selection

Selection is a single string value: a club id, or the Home sentinel (empty
string) meaning the Home destination. DefaultSelection (selection.go) picks
the first club when one exists.

All types here are plain values with no I/O and no locking; persistence lives
in the storage package and loading in the roster package.
*/
package model
