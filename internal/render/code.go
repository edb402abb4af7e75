package render

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/studiowebux/docpeek/internal/types"
)

// Chroma formatter names
const (
	TerminalFormatter = "terminal256"
	HTMLFormatter     = "html"
)

// HighlightingRenderer colors source code with chroma
type HighlightingRenderer struct {
	style     *chroma.Style
	formatter chroma.Formatter
	name      string
}

// NewHighlightingRenderer fails when the style or formatter is not
// registered, so the caller can fall back to PlainTextRenderer
func NewHighlightingRenderer(styleName, formatterName string) (*HighlightingRenderer, error) {
	if styleName == "" {
		styleName = "monokai"
	}
	style, ok := styles.Registry[strings.ToLower(styleName)]
	if !ok {
		return nil, fmt.Errorf("unknown highlight style %q", styleName)
	}
	formatter, ok := formatters.Registry[formatterName]
	if !ok {
		return nil, fmt.Errorf("unknown highlight formatter %q", formatterName)
	}
	return newHighlighter(style, formatter, "highlight"), nil
}

func newHighlighter(style *chroma.Style, formatter chroma.Formatter, name string) *HighlightingRenderer {
	return &HighlightingRenderer{style: style, formatter: formatter, name: name}
}

// Name identifies the renderer
func (r *HighlightingRenderer) Name() string {
	return r.name
}

// Render highlights content, guessing the language from the text
func (r *HighlightingRenderer) Render(content string) (string, error) {
	return r.RenderFile("", content)
}

// RenderFile highlights content, picking the lexer from the file name first
func (r *HighlightingRenderer) RenderFile(file types.FileID, content string) (string, error) {
	lexer := pickLexer(file, content)

	iterator, err := lexer.Tokenise(nil, content)
	if err != nil {
		return "", fmt.Errorf("failed to tokenise %s: %w", file, err)
	}

	var b strings.Builder
	if err := r.formatter.Format(&b, r.style, iterator); err != nil {
		return "", fmt.Errorf("failed to highlight %s: %w", file, err)
	}
	return b.String(), nil
}

// pickLexer matches by file name, then by content, then plain text
func pickLexer(file types.FileID, content string) chroma.Lexer {
	var lexer chroma.Lexer
	if file != "" {
		lexer = lexers.Match(file)
	}
	if lexer == nil {
		lexer = lexers.Analyse(content)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}

// LanguageOf names the language chroma would use for a file
func LanguageOf(file types.FileID, content string) string {
	return pickLexer(file, content).Config().Name
}

// PlainTextRenderer shows code as-is
type PlainTextRenderer struct{}

// Name identifies the renderer
func (PlainTextRenderer) Name() string {
	return "plain"
}

// Render returns content unchanged
func (PlainTextRenderer) Render(content string) (string, error) {
	return content, nil
}
