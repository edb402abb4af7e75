package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/docpeek/internal/types"
)

// openFile views a file and feeds the result back
func openFile(t *testing.T, m *Model, file types.FileID) {
	t.Helper()
	selectFile(t, m, file)
	run(t, m, press(t, m, "enter"))
}

func TestView_OpensModalWithClassification(t *testing.T) {
	tests := []struct {
		file  types.FileID
		mode  types.DisplayMode
		badge string
	}{
		{"algo_theory.md", types.ModeTheory, "theory"},
		{"parser.rs", types.ModeCode, "code · Rust"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			m, _ := CreateTestModel(t)
			openFile(t, m, tt.file)

			AssertModelField(t, "viewer state", m.viewer.state, ModalOpen)
			AssertModelField(t, "selection", m.viewer.selection.File, tt.file)
			AssertModelField(t, "mode", m.viewer.selection.Mode, tt.mode)

			view := m.View()
			if !strings.Contains(view, tt.file) {
				t.Error("modal title should show the file")
			}
			if !strings.Contains(view, tt.badge) {
				t.Errorf("modal title should show %q", tt.badge)
			}
		})
	}
}

func TestView_FailureKeepsModalClosed(t *testing.T) {
	m, _ := CreateTestModel(t)
	openFile(t, m, "missing.txt")

	AssertModelField(t, "viewer state", m.viewer.state, ModalClosed)
	AssertModelField(t, "statusKind", m.statusKind, types.StatusError)
	if !strings.Contains(m.statusMsg, "missing.txt") {
		t.Errorf("statusMsg = %q", m.statusMsg)
	}
}

func TestViewer_EscapeCloses(t *testing.T) {
	m, _ := CreateTestModel(t)
	openFile(t, m, "parser.rs")

	press(t, m, "esc")
	AssertModelField(t, "viewer state", m.viewer.state, ModalClosed)
}

func TestViewer_CloseKeys(t *testing.T) {
	for _, key := range []string{"q", "x"} {
		t.Run(key, func(t *testing.T) {
			m, _ := CreateTestModel(t)
			openFile(t, m, "parser.rs")

			if cmd := press(t, m, key); cmd != nil {
				t.Error("closing the viewer must not quit")
			}
			AssertModelField(t, "viewer state", m.viewer.state, ModalClosed)
		})
	}
}

func TestViewer_EscapeWhenClosedIsNoop(t *testing.T) {
	m, _ := CreateTestModel(t)
	index := m.index

	cmd := press(t, m, "esc")

	if cmd != nil {
		t.Error("expected no command")
	}
	AssertModelField(t, "viewer state", m.viewer.state, ModalClosed)
	AssertModelField(t, "mode", m.mode, ModeNormal)
	AssertModelField(t, "index", m.index, index)
	AssertModelField(t, "statusMsg", m.statusMsg, "")
}

func TestViewer_CloseIsIdempotent(t *testing.T) {
	v := newViewerState()
	v.Open(&types.Selection{File: "a.go"}, "body")

	if !v.Close() {
		t.Error("first close should change state")
	}
	if v.Close() {
		t.Error("second close should be a no-op")
	}
	if v.selection.Empty() {
		t.Error("selection should survive closing")
	}
}

func TestViewer_ClickOutsideCloses(t *testing.T) {
	m, _ := CreateTestModel(t)
	openFile(t, m, "parser.rs")

	bounds := m.viewerBounds()
	inside := tea.MouseMsg{X: bounds.x + 1, Y: bounds.y + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m.Update(inside)
	AssertModelField(t, "after inside click", m.viewer.state, ModalOpen)

	outside := tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m.Update(outside)
	AssertModelField(t, "after outside click", m.viewer.state, ModalClosed)
}

func TestViewer_Bounds(t *testing.T) {
	m, _ := CreateTestModel(t)

	got := m.viewerBounds()
	want := rect{x: 2, y: 1, w: 96, h: 37}
	if got != want {
		t.Errorf("viewerBounds() = %+v, want %+v", got, want)
	}
}

func TestViewer_LocksListScrolling(t *testing.T) {
	m, _ := CreateTestModel(t)
	openFile(t, m, "algo_theory.md")
	index := m.index

	press(t, m, "j")
	press(t, m, "G")
	m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})

	AssertModelField(t, "list index", m.index, index)

	press(t, m, "esc")
	press(t, m, "j")
	if m.index == index {
		t.Error("list scrolling should be restored after closing")
	}
}

func TestViewer_CopyCurrent(t *testing.T) {
	m, cb := CreateTestModel(t)
	openFile(t, m, "notes_theory.txt")

	run(t, m, press(t, m, "c"))

	AssertModelField(t, "statusMsg", m.statusMsg, `Content of "notes_theory.txt" copied to clipboard!`)
	if writes := cb.Writes(); len(writes) != 1 || writes[0] != "Hello" {
		t.Errorf("clipboard writes = %v", writes)
	}
	AssertModelField(t, "viewer stays open", m.viewer.state, ModalOpen)
}

func TestViewer_CopyCurrentWithoutSelection(t *testing.T) {
	m, _ := CreateTestModel(t)
	if cmd := m.copyCurrentCmd(); cmd != nil {
		t.Error("copy current without a viewed file should do nothing")
	}
}
