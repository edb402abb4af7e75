package tui

import (
	"context"
	"sync"
	"testing"
	"testing/fstest"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/docpeek/internal/content"
	"github.com/studiowebux/docpeek/internal/delivery"
	"github.com/studiowebux/docpeek/internal/fetcher"
	"github.com/studiowebux/docpeek/internal/keybinds"
	"github.com/studiowebux/docpeek/internal/render"
	"github.com/studiowebux/docpeek/internal/types"
)

// recordingClipboard keeps every write for assertions
type recordingClipboard struct {
	mu     sync.Mutex
	writes []string
}

func (c *recordingClipboard) WriteAll(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.writes = append(c.writes, text)
	return nil
}

func (c *recordingClipboard) Writes() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.writes...)
}

// testFiles are served by the model created with CreateTestModel.
// missing.txt is listed by a control but absent from the source.
var testFiles = fstest.MapFS{
	"algo_theory.md":   {Data: []byte("## Big O\n- **constant** time")},
	"notes_theory.txt": {Data: []byte("Hello")},
	"parser.rs":        {Data: []byte("fn parse() {}")},
	"viewonly.go":      {Data: []byte("package viewonly")},
}

func testControls() []types.Control {
	var controls []types.Control
	for _, f := range []types.FileID{"algo_theory.md", "notes_theory.txt", "parser.rs", "missing.txt"} {
		controls = append(controls,
			types.Control{Kind: types.ControlCopy, File: f},
			types.Control{Kind: types.ControlView, File: f},
		)
	}
	return append(controls, types.Control{Kind: types.ControlView, File: "viewonly.go"})
}

// CreateTestModel creates a Model over an in-memory source with a
// recording clipboard and plain renderers
func CreateTestModel(t *testing.T) (*Model, *recordingClipboard) {
	t.Helper()

	mgr := content.NewManager(nil, fetcher.NewDir(testFiles), nil)
	cb := &recordingClipboard{}
	set := &render.Set{Theory: render.NewPlainFallbackRenderer(), Code: render.PlainTextRenderer{}}

	m := New(Options{
		Context:  context.Background(),
		Helper:   delivery.NewHelper(mgr, cb, set, nil),
		Keybinds: keybinds.NewDefaultRegistry(),
		Source:   "testdata",
		Controls: testControls(),
	})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	return m, cb
}

// keyMsg builds a key press from its string form
func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

// press sends a key and runs the command it returns once, feeding the
// resulting message back. Timer commands must not be passed here.
func press(t *testing.T, m *Model, key string) tea.Cmd {
	t.Helper()
	_, cmd := m.Update(keyMsg(key))
	return cmd
}

// run executes a command and feeds its message to the model, returning
// the follow-up command
func run(t *testing.T, m *Model, cmd tea.Cmd) tea.Cmd {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	_, next := m.Update(cmd())
	return next
}

// selectFile moves the highlight to a file
func selectFile(t *testing.T, m *Model, file types.FileID) {
	t.Helper()
	for i, r := range m.rows {
		if r.File == file {
			m.index = i
			return
		}
	}
	t.Fatalf("file %q not in the list", file)
}

// AssertModelField is a generic helper for checking model field values
func AssertModelField[T comparable](t *testing.T, fieldName string, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", fieldName, got, want)
	}
}
