package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/studiowebux/docpeek/internal/delivery"
	"github.com/studiowebux/docpeek/internal/discovery"
	"github.com/studiowebux/docpeek/internal/keybinds"
	"github.com/studiowebux/docpeek/internal/logger"
	"github.com/studiowebux/docpeek/internal/types"
)

// Options wires the TUI to the rest of the application
type Options struct {
	Context  context.Context
	Helper   *delivery.Helper
	Keybinds *keybinds.Registry
	Logger   *zap.Logger
	Source   string
	Controls []types.Control
}

// New creates a new TUI model
func New(opts Options) *Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	registry := opts.Keybinds
	if registry == nil {
		registry = keybinds.NewDefaultRegistry()
	}

	filter := textinput.New()
	filter.Prompt = "/ "
	filter.Placeholder = "filter files"

	m := &Model{
		ctx:      ctx,
		helper:   opts.Helper,
		keybinds: registry,
		log:      logger.OrNop(opts.Logger),
		source:   opts.Source,
		mode:     ModeNormal,
		allRows:  discovery.Rows(opts.Controls),
		filter:   filter,
		viewer:   newViewerState(),
		helpView: viewport.New(80, 20),
	}
	m.refreshCached()

	return m
}

// Run starts the TUI. Mouse cell motion is enabled so clicks outside the
// viewer can close it.
func Run(m *Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(m.ctx))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
