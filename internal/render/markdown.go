package render

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// DefaultWidth is used until the terminal reports its size
const DefaultWidth = 80

// MarkdownRenderer renders theory files with glamour
type MarkdownRenderer struct {
	mu       sync.Mutex
	style    string
	width    int
	renderer *glamour.TermRenderer
}

// NewMarkdownRenderer builds a glamour renderer. It fails when the style
// is unknown, which makes the caller fall back to PlainFallbackRenderer.
func NewMarkdownRenderer(style string, width int) (*MarkdownRenderer, error) {
	if style == "" {
		style = "dark"
	}
	if width <= 0 {
		width = DefaultWidth
	}

	r, err := newTermRenderer(style, width)
	if err != nil {
		return nil, err
	}

	return &MarkdownRenderer{style: style, width: width, renderer: r}, nil
}

func newTermRenderer(style string, width int) (*glamour.TermRenderer, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return r, nil
}

// Name identifies the renderer
func (r *MarkdownRenderer) Name() string {
	return "markdown"
}

// SetWidth rebuilds the word wrapping for a new width
func (r *MarkdownRenderer) SetWidth(width int) {
	if width <= 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if width == r.width {
		return
	}
	if tr, err := newTermRenderer(r.style, width); err == nil {
		r.renderer = tr
		r.width = width
	}
}

// Render converts markdown to styled terminal text
func (r *MarkdownRenderer) Render(content string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.renderer.Render(content)
}

var (
	boldPattern   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	h2Pattern     = regexp.MustCompile(`(?m)^## (.*)$`)
	h3Pattern     = regexp.MustCompile(`(?m)^### (.*)$`)
	bulletPattern = regexp.MustCompile(`(?m)^- (.*)$`)
)

// PlainFallbackRenderer is the degraded theory formatter: bold, level 2
// and 3 headings and bullet items only. No nested lists, no tables.
type PlainFallbackRenderer struct {
	bold   lipgloss.Style
	h2     lipgloss.Style
	h3     lipgloss.Style
	bullet string
}

// NewPlainFallbackRenderer creates the fallback with the default styles
func NewPlainFallbackRenderer() *PlainFallbackRenderer {
	return &PlainFallbackRenderer{
		bold:   styleBold,
		h2:     styleHeading2,
		h3:     styleHeading3,
		bullet: "• ",
	}
}

// Name identifies the renderer
func (r *PlainFallbackRenderer) Name() string {
	return "plain-fallback"
}

// Render applies the substitutions in order: bold, headings, bullets
func (r *PlainFallbackRenderer) Render(content string) (string, error) {
	out := boldPattern.ReplaceAllStringFunc(content, func(m string) string {
		return r.bold.Render(boldPattern.FindStringSubmatch(m)[1])
	})
	out = h2Pattern.ReplaceAllStringFunc(out, func(m string) string {
		return r.h2.Render(h2Pattern.FindStringSubmatch(m)[1])
	})
	out = h3Pattern.ReplaceAllStringFunc(out, func(m string) string {
		return r.h3.Render(h3Pattern.FindStringSubmatch(m)[1])
	})
	out = bulletPattern.ReplaceAllString(out, r.bullet+"$1")
	return out, nil
}
