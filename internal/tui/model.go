package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/studiowebux/docpeek/internal/content"
	"github.com/studiowebux/docpeek/internal/delivery"
	"github.com/studiowebux/docpeek/internal/keybinds"
	"github.com/studiowebux/docpeek/internal/types"
)

// Mode represents the current TUI mode under the viewer modal
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeHelp
)

// Model represents the TUI state
type Model struct {
	// Core state
	ctx      context.Context
	helper   *delivery.Helper
	keybinds *keybinds.Registry
	log      *zap.Logger
	source   string
	mode     Mode

	// File list
	allRows  []types.FileInfo // Unfiltered rows, one per discovered file
	rows     []types.FileInfo // Rows matching the filter
	index    int              // Selected row in rows
	offset   int              // Scroll offset for the list
	filter   textinput.Model
	preload  bool // True while a preload pass runs
	attempts int  // Number of preload passes started

	// Viewer modal
	viewer   viewerState
	helpView viewport.Model

	// UI state
	width      int
	height     int
	statusMsg  string
	statusKind types.StatusKind
}

// Init starts pre-loading every discovered file
func (m *Model) Init() tea.Cmd {
	return m.preloadCmd()
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKeyPress(msg)

	case tea.MouseMsg:
		// Background list scrolling is locked while the viewer is open
		if m.viewer.IsOpen() {
			m.handleViewerMouse(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewerSize()
		m.updateHelpSize()
		m.helper.Renderers().SetWidth(m.contentWidth())
		if m.viewer.IsOpen() {
			m.rerenderViewer()
		}
		m.clampScroll()

	case preloadDoneMsg:
		m.preload = false
		m.applyPreload(msg.report)
		cmd = m.preloadStatus(msg.report)

	case copyDoneMsg:
		m.refreshCached()
		if msg.err != nil {
			cmd = m.setStatus(errorText(msg.err), types.StatusError)
		} else {
			cmd = m.setStatus(msg.message, types.StatusSuccess)
		}

	case viewLoadedMsg:
		m.refreshCached()
		if msg.err != nil {
			cmd = m.setStatus(errorText(msg.err), types.StatusError)
		} else {
			m.openViewer(msg.selection, msg.body)
		}

	case clearStatusMsg:
		m.statusMsg = ""
	}

	return m, cmd
}

// View renders the TUI
func (m *Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var body string
	switch {
	case m.viewer.IsOpen():
		body = m.renderViewer()
	case m.mode == ModeHelp:
		body = m.renderHelp()
	default:
		body = m.renderList()
	}

	return body + "\n" + m.renderStatusBar()
}

// Custom message types
type preloadDoneMsg struct {
	report content.PreloadReport
}

type copyDoneMsg struct {
	file    types.FileID
	message string
	err     error
}

type viewLoadedMsg struct {
	selection *types.Selection
	body      string
	err       error
}

type clearStatusMsg struct{}

// setStatus shows a message and schedules its removal. The clear is not
// tied to this message: an earlier timer also clears a later message.
func (m *Model) setStatus(msg string, kind types.StatusKind) tea.Cmd {
	m.statusMsg = msg
	m.statusKind = kind
	return tea.Tick(StatusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// errorText formats a failure for the status line
func errorText(err error) string {
	return "Error: " + err.Error()
}
