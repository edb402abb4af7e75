// Package clip writes text to the clipboard.
package clip

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
	"github.com/studiowebux/docpeek/internal/config"
)

// Writer writes text to a clipboard
type Writer interface {
	WriteAll(text string) error
}

// System uses the platform clipboard (pbcopy, xclip, wl-copy, Windows API)
type System struct{}

// WriteAll copies text to the system clipboard
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard utility available")
	}
	return clipboard.WriteAll(text)
}

// OSC52 asks the terminal to set its clipboard through an escape sequence.
// Works over SSH where no system clipboard is reachable.
type OSC52 struct {
	Out io.Writer
}

// WriteAll emits the OSC 52 sequence for text
func (o OSC52) WriteAll(text string) error {
	out := o.Out
	if out == nil {
		out = os.Stderr
	}
	seq := osc52.New(text)
	if os.Getenv("TMUX") != "" {
		seq = seq.Tmux()
	} else if os.Getenv("STY") != "" {
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(out); err != nil {
		return fmt.Errorf("failed to write OSC 52 sequence: %w", err)
	}
	return nil
}

// New returns the writer for a configured clipboard method
func New(method string, out io.Writer) (Writer, error) {
	switch method {
	case "", config.ClipboardSystem:
		return System{}, nil
	case config.ClipboardOSC52:
		return OSC52{Out: out}, nil
	default:
		return nil, fmt.Errorf("unknown clipboard method %q", method)
	}
}
