package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/studiowebux/docpeek/internal/keybinds"
	"github.com/studiowebux/docpeek/internal/render"
	"github.com/studiowebux/docpeek/internal/types"
)

// ModalState is the viewer modal state
type ModalState int

const (
	ModalClosed ModalState = iota
	ModalOpen
)

func (s ModalState) String() string {
	if s == ModalOpen {
		return "open"
	}
	return "closed"
}

// viewerState holds the modal and the Active Selection it shows
type viewerState struct {
	state     ModalState
	selection *types.Selection
	view      viewport.Model
}

func newViewerState() viewerState {
	return viewerState{view: viewport.New(80, 20)}
}

// Open records the selection and shows the rendered body from the top
func (v *viewerState) Open(sel *types.Selection, body string) {
	v.selection = sel
	v.state = ModalOpen
	v.view.SetContent(body)
	v.view.GotoTop()
}

// Close hides the modal. It reports whether anything changed, so a second
// close is a no-op. The selection stays for copy current.
func (v *viewerState) Close() bool {
	if v.state == ModalClosed {
		return false
	}
	v.state = ModalClosed
	return true
}

// IsOpen reports whether the modal is shown
func (v *viewerState) IsOpen() bool {
	return v.state == ModalOpen
}

// rect is a screen area in cells
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// bodyHeight is the screen height above the status bar
func (m *Model) bodyHeight() int {
	return max(0, m.height-StatusBarLines)
}

// viewerSize returns the lipgloss Width/Height of the modal box (padding
// included, border excluded)
func (m *Model) viewerSize() (int, int) {
	return max(0, m.width-ViewerWidthMargin), max(0, m.bodyHeight()-ViewerHeightMargin)
}

// viewerBounds is the drawn modal box, border included
func (m *Model) viewerBounds() rect {
	w, h := m.viewerSize()
	outerW, outerH := w+ModalBorderWidth, h+ModalBorderWidth
	return rect{
		x: (m.width - outerW) / 2,
		y: (m.bodyHeight() - outerH) / 2,
		w: outerW,
		h: outerH,
	}
}

// contentWidth is the usable text width inside the modal
func (m *Model) contentWidth() int {
	w, _ := m.viewerSize()
	return max(1, w-ModalPaddingH)
}

// updateViewerSize fits the viewport to the modal
func (m *Model) updateViewerSize() {
	_, h := m.viewerSize()
	m.viewer.view.Width = m.contentWidth()
	m.viewer.view.Height = max(1, h-ModalPaddingV-ModalOverheadLines)
}

// openViewer shows a loaded selection
func (m *Model) openViewer(sel *types.Selection, body string) {
	m.updateViewerSize()
	m.viewer.Open(sel, body)
	m.keybinds.ClearMultiKeyState(keybinds.ContextNormal)
}

// closeViewer returns to the list and restores its scrolling
func (m *Model) closeViewer() {
	if m.viewer.Close() {
		m.keybinds.ClearMultiKeyState(keybinds.ContextViewer)
	}
}

// rerenderViewer formats the selection again after a resize
func (m *Model) rerenderViewer() {
	if m.viewer.selection.Empty() {
		return
	}
	body, err := m.helper.Render(m.viewer.selection)
	if err != nil {
		return
	}
	offset := m.viewer.view.YOffset
	m.viewer.view.SetContent(body)
	m.viewer.view.SetYOffset(offset)
}

// handleViewerKeys handles keys while the modal is open. List navigation
// never reaches the list here.
func (m *Model) handleViewerKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok, partial := m.keybinds.MatchMultiKey(keybinds.ContextViewer, msg.String())
	if partial || !ok {
		return nil
	}

	switch action {
	case keybinds.ActionQuitForce:
		return tea.Quit
	case keybinds.ActionCloseModal:
		m.closeViewer()
	case keybinds.ActionCopyCurrent:
		return m.copyCurrentCmd()
	case keybinds.ActionNavigateUp:
		m.viewer.view.ScrollUp(1)
	case keybinds.ActionNavigateDown:
		m.viewer.view.ScrollDown(1)
	case keybinds.ActionPageUp:
		m.viewer.view.PageUp()
	case keybinds.ActionPageDown:
		m.viewer.view.PageDown()
	case keybinds.ActionHalfPageUp:
		m.viewer.view.HalfViewUp()
	case keybinds.ActionHalfPageDown:
		m.viewer.view.HalfViewDown()
	case keybinds.ActionGoToTop:
		m.viewer.view.GotoTop()
	case keybinds.ActionGoToBottom:
		m.viewer.view.GotoBottom()
	}
	return nil
}

// handleViewerMouse closes the modal on a click outside its box and
// scrolls it with the wheel
func (m *Model) handleViewerMouse(msg tea.MouseMsg) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.viewer.view.ScrollUp(MouseWheelScrollRows)
	case tea.MouseButtonWheelDown:
		m.viewer.view.ScrollDown(MouseWheelScrollRows)
	case tea.MouseButtonLeft:
		if msg.Action == tea.MouseActionPress && !m.viewerBounds().contains(msg.X, msg.Y) {
			m.closeViewer()
		}
	}
}

// renderViewer renders the modal over the body area
func (m *Model) renderViewer() string {
	sel := m.viewer.selection
	w, h := m.viewerSize()

	badge := styleBadgeCode.Render("code · " + render.LanguageOf(sel.File, sel.Content))
	if sel.Mode == types.ModeTheory {
		badge = styleBadgeTheory.Render("theory")
	}
	title := styleTitle.Render(sel.File) + " " + badge

	footer := styleSubtle.Render(fmt.Sprintf("%s: scroll | %s: copy | %s: close | %d%%",
		m.keybinds.GetBindingString(keybinds.ContextViewer, keybinds.ActionNavigateDown),
		m.keybinds.GetBindingString(keybinds.ContextViewer, keybinds.ActionCopyCurrent),
		m.keybinds.GetBindingString(keybinds.ContextViewer, keybinds.ActionCloseModal),
		int(m.viewer.view.ScrollPercent()*100),
	))

	content := title + "\n\n" + m.viewer.view.View() + "\n\n" + footer

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBlue).
		Width(w).
		Height(h).
		MaxHeight(h + ModalBorderWidth).
		Padding(1, 2).
		Render(content)

	return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, box)
}
