package discovery

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/studiowebux/docpeek/internal/types"
)

// Class names that mark an element as a control
const (
	CopyClass = "copy-btn"
	ViewClass = "view-btn"

	fileAttr = "data-file"
)

// FromHTML returns one control per element that carries a copy-btn or
// view-btn class and a data-file attribute, in document order
func FromHTML(r io.Reader) ([]types.Control, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var controls []types.Control
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if c, ok := controlOf(n); ok {
				controls = append(controls, c)
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	return controls, nil
}

func controlOf(n *html.Node) (types.Control, bool) {
	var file string
	var kind types.ControlKind

	for _, attr := range n.Attr {
		switch attr.Key {
		case fileAttr:
			file = strings.TrimSpace(attr.Val)
		case "class":
			for _, class := range strings.Fields(attr.Val) {
				switch class {
				case CopyClass:
					kind = types.ControlCopy
				case ViewClass:
					kind = types.ControlView
				}
			}
		}
	}

	if file == "" || kind == "" {
		return types.Control{}, false
	}
	return types.Control{Kind: kind, File: file, Label: textOf(n)}, true
}

// textOf returns the element text with whitespace collapsed
func textOf(n *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			collect(child)
		}
	}
	collect(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
