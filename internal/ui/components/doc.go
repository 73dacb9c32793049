// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides reusable UI components for the hearth TUI.

# NavigationRail (rail.go)

The fixed-width vertical navigation strip: an optional Home entry, one entry
per club in input order, then the create and settings actions. The rail is a
fully controlled component - it renders the inputs the shell passes down and
reports activation intents through callback slots (OnSelect, OnCreate,
OnSettings) without ever mutating the club list or the selection itself. Its
only internal state is the keyboard cursor, which is focus position, not
selection.

Each club row shows the club's icon glyph or a fallback derived from its
name, an unread badge capped at "99+", and an independent mention indicator.
All optional inputs degrade to documented fallbacks; rail rendering never
fails.

# Content (content.go)

The region beside the rail. Renders whichever destination is active: the
home dashboard, a club (with glamour-rendered welcome markdown), the
settings pane, or a placeholder when the committed selection is not in the
roster.

# Theme Integration

Components accept a *styles.Theme at construction and expose SetSize plus a
View() string:

	theme := styles.NewTheme()
	rail := components.NewNavigationRail(theme)
	rail.SetSize(28, 40)
	view := rail.View()
*/
package components
