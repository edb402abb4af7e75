package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/studiowebux/docpeek/internal/types"
)

type recordingRenderer struct {
	name  string
	calls []string
}

func (r *recordingRenderer) Name() string { return r.name }

func (r *recordingRenderer) Render(content string) (string, error) {
	r.calls = append(r.calls, content)
	return r.name + ":" + content, nil
}

func TestSet_FormatRoutesByName(t *testing.T) {
	theory := &recordingRenderer{name: "theory"}
	code := &recordingRenderer{name: "code"}
	set := &Set{Theory: theory, Code: code}

	tests := []struct {
		file types.FileID
		want string
	}{
		{"algo_theory.md", "theory:body"},
		{"parser.rs", "code:body"},
		{"notes_theory.txt", "theory:body"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			got, err := set.Format(tt.file, "body")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.file, got, tt.want)
			}
		})
	}

	if len(theory.calls) != 2 || len(code.calls) != 1 {
		t.Errorf("unexpected call counts: theory=%d code=%d", len(theory.calls), len(code.calls))
	}
}

func TestSelect_Fallbacks(t *testing.T) {
	tests := []struct {
		name       string
		opts       Options
		wantTheory string
		wantCode   string
	}{
		{"all enabled", Options{Markdown: true, Highlight: true, MarkdownStyle: "dark", CodeStyle: "monokai"}, "markdown", "highlight"},
		{"all disabled", Options{}, "plain-fallback", "plain"},
		{"unknown markdown style", Options{Markdown: true, MarkdownStyle: "no-such-style"}, "plain-fallback", "plain"},
		{"unknown code style", Options{Highlight: true, CodeStyle: "no-such-style"}, "plain-fallback", "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := Select(tt.opts)
			if got := set.Theory.Name(); got != tt.wantTheory {
				t.Errorf("theory renderer = %q, want %q", got, tt.wantTheory)
			}
			if got := set.Code.Name(); got != tt.wantCode {
				t.Errorf("code renderer = %q, want %q", got, tt.wantCode)
			}
		})
	}
}

func TestPlainFallbackRenderer(t *testing.T) {
	r := NewPlainFallbackRenderer()
	out, err := r.Render("## Sorting\n### Merge sort\n**Stable** and fast\n- split\n- merge")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	plain := ansi.Strip(out)
	for _, want := range []string{"Sorting", "Merge sort", "Stable and fast", "• split", "• merge"} {
		if !strings.Contains(plain, want) {
			t.Errorf("output missing %q:\n%s", want, plain)
		}
	}
	for _, unwanted := range []string{"**", "## ", "- split"} {
		if strings.Contains(plain, unwanted) {
			t.Errorf("output still contains %q:\n%s", unwanted, plain)
		}
	}
}

func TestPlainFallbackRenderer_LeavesOtherMarkdown(t *testing.T) {
	r := NewPlainFallbackRenderer()
	in := "# Title\n| a | b |\n  - nested"
	out, _ := r.Render(in)
	if ansi.Strip(out) != in {
		t.Errorf("unsupported syntax should pass through, got %q", out)
	}
}

func TestMarkdownRenderer(t *testing.T) {
	r, err := NewMarkdownRenderer("notty", 60)
	if err != nil {
		t.Fatalf("NewMarkdownRenderer failed: %v", err)
	}

	out, err := r.Render("# Graphs\n\nA **graph** is a set of vertices.")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	plain := ansi.Strip(out)
	if !strings.Contains(plain, "Graphs") || !strings.Contains(plain, "vertices") {
		t.Errorf("unexpected output:\n%s", plain)
	}

	r.SetWidth(100)
	if r.width != 100 {
		t.Errorf("width = %d, want 100", r.width)
	}
	r.SetWidth(0)
	if r.width != 100 {
		t.Errorf("zero width should be ignored, got %d", r.width)
	}
}

func TestNewMarkdownRenderer_UnknownStyle(t *testing.T) {
	if _, err := NewMarkdownRenderer("no-such-style", 80); err == nil {
		t.Error("expected error for unknown style")
	}
}

func TestHighlightingRenderer(t *testing.T) {
	r, err := NewHighlightingRenderer("monokai", TerminalFormatter)
	if err != nil {
		t.Fatalf("NewHighlightingRenderer failed: %v", err)
	}

	src := "fn main() {\n    println!(\"hi\");\n}\n"
	out, err := r.RenderFile("parser.rs", src)
	if err != nil {
		t.Fatalf("RenderFile failed: %v", err)
	}
	if out == src {
		t.Error("expected escape sequences in highlighted output")
	}
	if ansi.Strip(out) != src {
		t.Errorf("highlighting changed the text:\n%q", ansi.Strip(out))
	}
}

func TestNewHighlightingRenderer_Unknown(t *testing.T) {
	if _, err := NewHighlightingRenderer("no-such-style", TerminalFormatter); err == nil {
		t.Error("expected error for unknown style")
	}
	if _, err := NewHighlightingRenderer("monokai", "no-such-formatter"); err == nil {
		t.Error("expected error for unknown formatter")
	}
}

func TestLanguageOf(t *testing.T) {
	tests := map[string]string{
		"parser.rs": "Rust",
		"main.go":   "Go",
		"algo.py":   "Python",
	}
	for file, want := range tests {
		if got := LanguageOf(file, ""); got != want {
			t.Errorf("LanguageOf(%q) = %q, want %q", file, got, want)
		}
	}
}

func TestPlainTextRenderer(t *testing.T) {
	in := "let x = 1;\n"
	out, err := PlainTextRenderer{}.Render(in)
	if err != nil || out != in {
		t.Errorf("Render() = %q, %v; want input unchanged", out, err)
	}
}

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"a\r\nb":   "a\nb",
		"a\rb":     "a\nb",
		"\ufeffab": "ab",
		"plain":    "plain",
	}
	for in, want := range tests {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}
