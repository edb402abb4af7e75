// Package render formats file contents for display.
//
// Theory files are narrative text rendered as markdown; everything else is
// code shown in a fixed-width block with optional syntax highlighting.
// Which implementation serves each role is decided once by Select and is
// not re-checked per call.
package render

import (
	"strings"

	"github.com/studiowebux/docpeek/internal/types"
)

// Renderer turns raw file content into display text
type Renderer interface {
	Render(content string) (string, error)
	Name() string
}

// Resizer is implemented by renderers whose output depends on the width
type Resizer interface {
	SetWidth(width int)
}

// Set pairs the theory and code renderers chosen at startup
type Set struct {
	Theory Renderer
	Code   Renderer
}

// Options controls renderer selection
type Options struct {
	Markdown      bool
	Highlight     bool
	MarkdownStyle string
	CodeStyle     string
	Width         int
}

// Select picks the terminal renderers once, falling back when a capability
// is disabled or unavailable
func Select(opts Options) *Set {
	var theory Renderer = NewPlainFallbackRenderer()
	if opts.Markdown {
		if md, err := NewMarkdownRenderer(opts.MarkdownStyle, opts.Width); err == nil {
			theory = md
		}
	}

	var code Renderer = PlainTextRenderer{}
	if opts.Highlight {
		if hl, err := NewHighlightingRenderer(opts.CodeStyle, TerminalFormatter); err == nil {
			code = hl
		}
	}

	return &Set{Theory: theory, Code: code}
}

// For returns the renderer for a display mode
func (s *Set) For(mode types.DisplayMode) Renderer {
	if mode == types.ModeTheory {
		return s.Theory
	}
	return s.Code
}

// Format classifies the file and renders its content with the matching
// renderer. The content is not modified for the caller.
func (s *Set) Format(file types.FileID, content string) (string, error) {
	r := s.For(types.Classify(file))
	if named, ok := r.(fileAware); ok {
		return named.RenderFile(file, Normalize(content))
	}
	return r.Render(Normalize(content))
}

// SetWidth forwards a new width to renderers that wrap text
func (s *Set) SetWidth(width int) {
	for _, r := range []Renderer{s.Theory, s.Code} {
		if rs, ok := r.(Resizer); ok {
			rs.SetWidth(width)
		}
	}
}

// fileAware renderers use the identifier as a hint (lexer selection)
type fileAware interface {
	RenderFile(file types.FileID, content string) (string, error)
}

// Normalize converts line endings and drops a UTF-8 byte order mark
func Normalize(content string) string {
	content = strings.TrimPrefix(content, "\ufeff")
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return strings.ReplaceAll(content, "\r", "\n")
}
