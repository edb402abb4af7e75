package render

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// HTMLMarkdownRenderer renders theory files to an HTML fragment
type HTMLMarkdownRenderer struct {
	md goldmark.Markdown
}

// NewHTMLMarkdownRenderer configures goldmark with GFM and fenced code
// highlighting in the given chroma style. Raw HTML in the source is not
// passed through.
func NewHTMLMarkdownRenderer(codeStyle string) *HTMLMarkdownRenderer {
	if codeStyle == "" {
		codeStyle = "monokai"
	}
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(codeStyle),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)
	return &HTMLMarkdownRenderer{md: md}
}

// Name identifies the renderer
func (r *HTMLMarkdownRenderer) Name() string {
	return "html-markdown"
}

// Render converts markdown to HTML
func (r *HTMLMarkdownRenderer) Render(content string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return buf.String(), nil
}

// NewHTMLCodeRenderer highlights code into a <pre> block with inline styles
func NewHTMLCodeRenderer(styleName string) (*HighlightingRenderer, error) {
	if styleName == "" {
		styleName = "monokai"
	}
	style, ok := styles.Registry[strings.ToLower(styleName)]
	if !ok {
		return nil, fmt.Errorf("unknown highlight style %q", styleName)
	}
	formatter := chromahtml.New(
		chromahtml.WithClasses(false),
		chromahtml.TabWidth(4),
	)
	return newHighlighter(style, formatter, "html-highlight"), nil
}

// HTMLFallbackRenderer is the minimal theory formatter for the browser
type HTMLFallbackRenderer struct{}

// Name identifies the renderer
func (HTMLFallbackRenderer) Name() string {
	return "html-fallback"
}

// Render escapes content then applies bold, headings, bullets and line
// breaks
func (HTMLFallbackRenderer) Render(content string) (string, error) {
	out := html.EscapeString(content)
	out = boldPattern.ReplaceAllString(out, "<strong>$1</strong>")
	out = h2Pattern.ReplaceAllString(out, "<h2>$1</h2>")
	out = h3Pattern.ReplaceAllString(out, "<h3>$1</h3>")
	out = bulletPattern.ReplaceAllString(out, "<li>$1</li>")
	out = strings.ReplaceAll(out, "\n", "<br>")
	return `<div class="theory-content">` + out + `</div>`, nil
}

// HTMLPlainRenderer escapes code into a <pre><code> block
type HTMLPlainRenderer struct{}

// Name identifies the renderer
func (HTMLPlainRenderer) Name() string {
	return "html-plain"
}

// Render wraps escaped content in a code block
func (HTMLPlainRenderer) Render(content string) (string, error) {
	return "<pre><code>" + html.EscapeString(content) + "</code></pre>", nil
}

// SelectHTML picks the browser renderers once, with the same fallbacks as
// Select
func SelectHTML(opts Options) *Set {
	var theory Renderer = HTMLFallbackRenderer{}
	if opts.Markdown {
		theory = NewHTMLMarkdownRenderer(opts.CodeStyle)
	}

	var code Renderer = HTMLPlainRenderer{}
	if opts.Highlight {
		if hl, err := NewHTMLCodeRenderer(opts.CodeStyle); err == nil {
			code = hl
		}
	}

	return &Set{Theory: theory, Code: code}
}
