/*
Package tui implements the terminal interface.

# Architecture

The TUI follows the Bubble Tea Model-Update-View pattern:
  - Model: file rows, filter, viewer modal, status line
  - Update: key, mouse and result messages
  - View: list, help overlay or viewer, plus the status bar

Fetches never run on the update loop. Copy, view and preload are tea.Cmd
functions that call the delivery helper and report back with copyDoneMsg,
viewLoadedMsg and preloadDoneMsg.

# Viewer Modal

The viewer is a two-state machine (closed, open):
  - A successful view opens it and records the Active Selection
  - The close key, Escape, or a left click outside the box closes it
  - Closing an already closed viewer does nothing
  - While open, list navigation is locked and keys scroll the modal

A failed view leaves the modal closed and shows the error.

# Status Line

setStatus replaces the message immediately and schedules clearStatusMsg
after three seconds. Timers are not tracked, so an older timer clears a
newer message early.

# Key Files

  - model.go: Model, Update, View, messages
  - commands.go: preload, copy and view commands
  - keys.go: key dispatch per mode
  - viewer.go: modal state, geometry, mouse handling
  - list.go: fuzzy filter and list scrolling
  - render.go: styles, list and status bar
  - help.go: help overlay built from the keybinding registry
*/
package tui
