package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/studiowebux/docpeek/internal/content"
	"github.com/studiowebux/docpeek/internal/types"
)

// files lists every discovered file in discovery order
func (m *Model) files() []types.FileID {
	files := make([]types.FileID, 0, len(m.allRows))
	for _, r := range m.allRows {
		files = append(files, r.File)
	}
	return files
}

// preloadCmd fetches every file in the background
func (m *Model) preloadCmd() tea.Cmd {
	files := m.files()
	if len(files) == 0 {
		return nil
	}

	m.preload = true
	m.attempts++
	ctx, mgr := m.ctx, m.helper.Content()
	return func() tea.Msg {
		return preloadDoneMsg{report: mgr.Preload(ctx, files)}
	}
}

// copyCmd copies a file's raw text; the fetch runs off the UI loop
func (m *Model) copyCmd(file types.FileID) tea.Cmd {
	ctx, h := m.ctx, m.helper
	return func() tea.Msg {
		message, err := h.Copy(ctx, file)
		return copyDoneMsg{file: file, message: message, err: err}
	}
}

// copyCurrentCmd copies the selection being viewed. Nothing happens when
// no file has been viewed yet.
func (m *Model) copyCurrentCmd() tea.Cmd {
	sel, h := m.viewer.selection, m.helper
	if sel.Empty() {
		return nil
	}
	return func() tea.Msg {
		message, err := h.CopyCurrent(sel)
		return copyDoneMsg{file: sel.File, message: message, err: err}
	}
}

// viewCmd loads and formats a file for the viewer
func (m *Model) viewCmd(file types.FileID) tea.Cmd {
	ctx, h := m.ctx, m.helper
	return func() tea.Msg {
		sel, body, err := h.View(ctx, file)
		return viewLoadedMsg{selection: sel, body: body, err: err}
	}
}

// applyPreload records per-row results of a preload pass
func (m *Model) applyPreload(report content.PreloadReport) {
	for i := range m.allRows {
		row := &m.allRows[i]
		if err, failed := report.Failed[row.File]; failed {
			row.LoadErr = categorizeLoadError(err)
		} else {
			row.LoadErr = ""
		}
	}
	m.refreshCached()
	m.log.Info("Preload finished",
		zap.Int("loaded", len(report.Loaded)),
		zap.Int("failed", len(report.Failed)),
	)
}

// refreshCached syncs the cached marker of every row with the cache
func (m *Model) refreshCached() {
	cache := m.helper.Content().Cache()
	for i := range m.allRows {
		m.allRows[i].Cached = cache.Has(m.allRows[i].File)
		if m.allRows[i].Cached {
			m.allRows[i].LoadErr = ""
		}
	}
	m.applyFilter()
}

// preloadStatus reports a reload requested by the user. The first pass at
// startup is silent unless something failed.
func (m *Model) preloadStatus(report content.PreloadReport) tea.Cmd {
	failed := len(report.Failed)
	if failed == 0 && m.attempts <= 1 {
		return nil
	}

	text := fmt.Sprintf("Pre-loaded %d of %d files", len(report.Loaded), report.Total())
	if failed > 0 {
		return m.setStatus(fmt.Sprintf("%s (%d failed)", text, failed), types.StatusError)
	}
	return m.setStatus(text, types.StatusSuccess)
}
