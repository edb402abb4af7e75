package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/docpeek/internal/types"
)

func TestNew_InitializesDefaultMode(t *testing.T) {
	m, _ := CreateTestModel(t)

	AssertModelField(t, "mode", m.mode, ModeNormal)
	AssertModelField(t, "viewer state", m.viewer.state, ModalClosed)
	AssertModelField(t, "rows", len(m.rows), 5)
	AssertModelField(t, "statusMsg", m.statusMsg, "")
}

func TestInit_PreloadsEveryFile(t *testing.T) {
	m, _ := CreateTestModel(t)

	cmd := m.Init()
	AssertModelField(t, "preload running", m.preload, true)
	run(t, m, cmd)

	AssertModelField(t, "preload running", m.preload, false)
	AssertModelField(t, "cache size", m.helper.Content().Cache().Len(), 4)

	for _, r := range m.allRows {
		if r.File == "missing.txt" {
			if r.Cached || r.LoadErr != "not found" {
				t.Errorf("missing.txt should be marked not found, got %+v", r)
			}
			continue
		}
		if !r.Cached {
			t.Errorf("%s should be cached", r.File)
		}
	}

	if m.statusKind != types.StatusError || !strings.Contains(m.statusMsg, "1 failed") {
		t.Errorf("status = %q (%s)", m.statusMsg, m.statusKind)
	}
}

func TestCopy_ShowsSuccessAndWritesOnce(t *testing.T) {
	m, cb := CreateTestModel(t)
	selectFile(t, m, "notes_theory.txt")

	next := run(t, m, press(t, m, "c"))

	AssertModelField(t, "statusMsg", m.statusMsg, `Content of "notes_theory.txt" copied to clipboard!`)
	AssertModelField(t, "statusKind", m.statusKind, types.StatusSuccess)
	if next == nil {
		t.Error("expected a clear timer")
	}
	if writes := cb.Writes(); len(writes) != 1 || writes[0] != "Hello" {
		t.Errorf("clipboard writes = %v", writes)
	}
}

func TestCopy_MissingFileShowsError(t *testing.T) {
	m, cb := CreateTestModel(t)
	selectFile(t, m, "missing.txt")

	run(t, m, press(t, m, "c"))

	AssertModelField(t, "statusKind", m.statusKind, types.StatusError)
	if !strings.HasPrefix(m.statusMsg, "Error: ") || !strings.Contains(m.statusMsg, "missing.txt") {
		t.Errorf("statusMsg = %q", m.statusMsg)
	}
	if len(cb.Writes()) != 0 {
		t.Error("clipboard must be untouched")
	}
}

func TestActivate_MissingControl(t *testing.T) {
	m, cb := CreateTestModel(t)
	selectFile(t, m, "viewonly.go")

	cmd := press(t, m, "c")

	if cmd == nil {
		t.Fatal("expected a status timer")
	}
	AssertModelField(t, "statusKind", m.statusKind, types.StatusError)
	if len(cb.Writes()) != 0 {
		t.Error("clipboard must be untouched")
	}
}

func TestStatus_EarlierTimerClearsLaterMessage(t *testing.T) {
	m, _ := CreateTestModel(t)

	m.setStatus("first", types.StatusSuccess)
	m.setStatus("second", types.StatusError)
	AssertModelField(t, "statusMsg", m.statusMsg, "second")

	// The first timer fires while the second message is showing
	m.Update(clearStatusMsg{})
	AssertModelField(t, "statusMsg", m.statusMsg, "")
}

func TestFilter_FuzzyMatchesAndClears(t *testing.T) {
	m, _ := CreateTestModel(t)

	press(t, m, "/")
	AssertModelField(t, "mode", m.mode, ModeSearch)

	for _, r := range "prs" {
		press(t, m, string(r))
	}
	if len(m.rows) != 1 || m.rows[0].File != "parser.rs" {
		t.Fatalf("filtered rows = %+v", m.rows)
	}

	press(t, m, "enter")
	AssertModelField(t, "mode", m.mode, ModeNormal)
	AssertModelField(t, "rows kept", len(m.rows), 1)

	press(t, m, "esc")
	AssertModelField(t, "rows restored", len(m.rows), 5)
}

func TestFilter_CancelRestoresRows(t *testing.T) {
	m, _ := CreateTestModel(t)

	press(t, m, "/")
	press(t, m, "z")
	press(t, m, "esc")

	AssertModelField(t, "mode", m.mode, ModeNormal)
	AssertModelField(t, "filter", m.filter.Value(), "")
	AssertModelField(t, "rows", len(m.rows), 5)
}

func TestNavigation_ClampsToList(t *testing.T) {
	m, _ := CreateTestModel(t)

	press(t, m, "k")
	AssertModelField(t, "index after up at top", m.index, 0)

	press(t, m, "G")
	AssertModelField(t, "index at bottom", m.index, 4)

	press(t, m, "j")
	AssertModelField(t, "index after down at bottom", m.index, 4)

	press(t, m, "g")
	press(t, m, "g")
	AssertModelField(t, "index after gg", m.index, 0)
}

func TestHelp_OpensAndCloses(t *testing.T) {
	m, _ := CreateTestModel(t)

	press(t, m, "?")
	AssertModelField(t, "mode", m.mode, ModeHelp)
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Error("help overlay not rendered")
	}

	press(t, m, "esc")
	AssertModelField(t, "mode", m.mode, ModeNormal)
}

func TestQuit(t *testing.T) {
	m, _ := CreateTestModel(t)

	cmd := press(t, m, "q")
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit from the list")
	}
}

func TestView_RendersListAndStatusBar(t *testing.T) {
	m, _ := CreateTestModel(t)

	out := m.View()
	for _, want := range []string{"docpeek", "algo_theory.md", "parser.rs", "5 files, 0 cached"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
