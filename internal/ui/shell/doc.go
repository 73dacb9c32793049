// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package shell is the top-level Bubble Tea model for hearth.

The shell is the single owner of navigation state: the club list and the
current selection (a club id, or model.Home). The rail and content
components are controlled; they render the state the shell hands them and
report activation back through callbacks. The shell commits selection
writes permissively, so an id that is not in the roster is accepted and the
content region renders a placeholder for it.

Side effects hang off the selection commit: selecting a club zeroes its
unread and mention counters (in memory and in the read-state store) and the
selection itself is persisted for the next launch. Roster file changes
arrive as roster.ReloadedMsg from the watcher and are swapped in without
disturbing the selection.
*/
package shell
