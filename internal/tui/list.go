package tui

import (
	"github.com/sahilm/fuzzy"

	"github.com/studiowebux/docpeek/internal/types"
)

// rowSource adapts rows to fuzzy matching on file and label
type rowSource []types.FileInfo

func (r rowSource) String(i int) string {
	if r[i].Label == "" {
		return r[i].File
	}
	return r[i].File + " " + r[i].Label
}

func (r rowSource) Len() int {
	return len(r)
}

// applyFilter recomputes the visible rows, best matches first. The
// selection is kept on the same file when it is still visible.
func (m *Model) applyFilter() {
	current, hadSelection := m.selected()

	query := m.filter.Value()
	if query == "" {
		m.rows = m.allRows
	} else {
		matches := fuzzy.FindFrom(query, rowSource(m.allRows))
		m.rows = make([]types.FileInfo, 0, len(matches))
		for _, match := range matches {
			m.rows = append(m.rows, m.allRows[match.Index])
		}
	}

	m.index = 0
	if hadSelection {
		for i, r := range m.rows {
			if r.File == current.File {
				m.index = i
				break
			}
		}
	}
	m.clampScroll()
}

// selected returns the highlighted row
func (m *Model) selected() (types.FileInfo, bool) {
	if m.index < 0 || m.index >= len(m.rows) {
		return types.FileInfo{}, false
	}
	return m.rows[m.index], true
}

// listHeight is the number of visible rows
func (m *Model) listHeight() int {
	return max(1, m.bodyHeight()-ListHeaderLines)
}

// moveSelection moves the highlight by delta rows, clamped to the list
func (m *Model) moveSelection(delta int) {
	if len(m.rows) == 0 {
		return
	}
	m.index = min(max(m.index+delta, 0), len(m.rows)-1)
	m.clampScroll()
}

// clampScroll keeps the selection inside the visible window
func (m *Model) clampScroll() {
	if m.index >= len(m.rows) {
		m.index = max(0, len(m.rows)-1)
	}
	height := m.listHeight()
	if m.index < m.offset {
		m.offset = m.index
	}
	if m.index >= m.offset+height {
		m.offset = m.index - height + 1
	}
	m.offset = max(0, min(m.offset, max(0, len(m.rows)-height)))
}
