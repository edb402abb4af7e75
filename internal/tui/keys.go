package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/docpeek/internal/keybinds"
	"github.com/studiowebux/docpeek/internal/types"
)

// handleKeyPress routes keys to the viewer when it is open, otherwise to
// the current mode
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	if m.viewer.IsOpen() {
		return m.handleViewerKeys(msg)
	}

	switch m.mode {
	case ModeSearch:
		return m.handleSearchKeys(msg)
	case ModeHelp:
		return m.handleHelpKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles the file list
func (m *Model) handleNormalKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok, partial := m.keybinds.MatchMultiKey(keybinds.ContextNormal, msg.String())
	if partial || !ok {
		return nil
	}

	switch action {
	case keybinds.ActionQuit, keybinds.ActionQuitForce:
		return tea.Quit

	case keybinds.ActionNavigateUp:
		m.moveSelection(-1)
	case keybinds.ActionNavigateDown:
		m.moveSelection(1)
	case keybinds.ActionPageUp:
		m.moveSelection(-m.listHeight())
	case keybinds.ActionPageDown:
		m.moveSelection(m.listHeight())
	case keybinds.ActionHalfPageUp:
		m.moveSelection(-m.listHeight() / 2)
	case keybinds.ActionHalfPageDown:
		m.moveSelection(m.listHeight() / 2)
	case keybinds.ActionGoToTop:
		m.moveSelection(-len(m.rows))
	case keybinds.ActionGoToBottom:
		m.moveSelection(len(m.rows))

	case keybinds.ActionCopy:
		return m.activate(types.ControlCopy)
	case keybinds.ActionView:
		return m.activate(types.ControlView)

	case keybinds.ActionOpenSearch:
		m.mode = ModeSearch
		return m.filter.Focus()
	case keybinds.ActionClearFilter:
		if m.filter.Value() != "" {
			m.filter.SetValue("")
			m.applyFilter()
		}
	case keybinds.ActionReload:
		if m.preload {
			return nil
		}
		cmd := m.preloadCmd()
		if cmd == nil {
			return nil
		}
		return tea.Batch(m.setStatus(fmt.Sprintf("Reloading %d files...", len(m.allRows)), types.StatusSuccess), cmd)
	case keybinds.ActionOpenHelp:
		m.mode = ModeHelp
		m.updateHelpSize()
		m.helpView.SetContent(m.helpContent())
		m.helpView.GotoTop()
	}

	return nil
}

// activate runs the selected row's control of the given kind
func (m *Model) activate(kind types.ControlKind) tea.Cmd {
	row, ok := m.selected()
	if !ok {
		return nil
	}
	if !row.Has(kind) {
		return m.setStatus(fmt.Sprintf("%s has no %s control", row.File, kind), types.StatusError)
	}

	if kind == types.ControlCopy {
		return m.copyCmd(row.File)
	}
	return m.viewCmd(row.File)
}

// handleSearchKeys feeds the filter input
func (m *Model) handleSearchKeys(msg tea.KeyMsg) tea.Cmd {
	if action, ok := m.keybinds.Match(keybinds.ContextSearch, msg.String()); ok {
		switch action {
		case keybinds.ActionQuitForce:
			return tea.Quit
		case keybinds.ActionTextSubmit:
			m.mode = ModeNormal
			m.filter.Blur()
			return nil
		case keybinds.ActionTextCancel:
			m.mode = ModeNormal
			m.filter.Blur()
			m.filter.SetValue("")
			m.applyFilter()
			return nil
		}
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return cmd
}

// handleHelpKeys scrolls or closes the help overlay
func (m *Model) handleHelpKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextHelp, msg.String())
	if !ok {
		// Arrow keys still scroll
		m.helpView, _ = m.helpView.Update(msg)
		return nil
	}

	switch action {
	case keybinds.ActionQuitForce:
		return tea.Quit
	case keybinds.ActionCloseModal:
		m.mode = ModeNormal
	}
	return nil
}
