package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/studiowebux/docpeek/internal/keybinds"
	"github.com/studiowebux/docpeek/internal/types"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen   = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"} // Dark green / Bright green
	colorRed     = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff0000"} // Dark red / Bright red
	colorYellow  = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffff00"} // Dark goldenrod / Yellow
	colorBlue    = lipgloss.AdaptiveColor{Light: "#00008b", Dark: "#0000ff"} // Dark blue / Blue
	colorGray    = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"} // Dark gray / Light gray
	colorCyan    = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"} // Dark cyan / Cyan
	colorMagenta = lipgloss.AdaptiveColor{Light: "#8b008b", Dark: "#ff79c6"} // Dark magenta / Pink
)

// Style definitions
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	styleSelected = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"})

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorGreen)

	styleError = lipgloss.NewStyle().
			Foreground(colorRed)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorYellow)

	styleSubtle = lipgloss.NewStyle().
			Foreground(colorGray)

	styleBadgeTheory = lipgloss.NewStyle().
				Foreground(colorMagenta)

	styleBadgeCode = lipgloss.NewStyle().
			Foreground(colorBlue)
)

// renderList renders the file list with its title and filter line
func (m *Model) renderList() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("docpeek"))
	b.WriteString(" " + styleSubtle.Render(m.source))
	b.WriteString("\n")

	switch {
	case m.mode == ModeSearch:
		b.WriteString(m.filter.View())
	case m.filter.Value() != "":
		b.WriteString(styleWarning.Render(fmt.Sprintf("Filter: %s (%d of %d)", m.filter.Value(), len(m.rows), len(m.allRows))))
	}
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		if len(m.allRows) == 0 {
			b.WriteString(styleSubtle.Render("No files found"))
		} else {
			b.WriteString(styleSubtle.Render("No files match the filter"))
		}
		return lipgloss.NewStyle().Height(m.bodyHeight()).MaxHeight(m.bodyHeight()).Render(b.String())
	}

	end := min(len(m.rows), m.offset+m.listHeight())
	for i := m.offset; i < end; i++ {
		line := m.renderRow(m.rows[i])
		if i == m.index {
			line = styleSelected.Render(ansi.Strip(line))
		}
		b.WriteString(line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return lipgloss.NewStyle().Height(m.bodyHeight()).MaxHeight(m.bodyHeight()).Render(b.String())
}

// renderRow renders one file: load marker, mode badge, name and controls
func (m *Model) renderRow(row types.FileInfo) string {
	marker := styleSubtle.Render("○")
	switch {
	case row.Cached:
		marker = styleSuccess.Render("●")
	case row.LoadErr != "":
		marker = styleError.Render("✗")
	}

	badge := styleBadgeCode.Render("code  ")
	if row.Mode == types.ModeTheory {
		badge = styleBadgeTheory.Render("theory")
	}

	name := row.File
	if row.Label != "" && row.Label != row.File {
		name += styleSubtle.Render("  " + row.Label)
	}

	kinds := make([]string, 0, len(row.Kinds))
	for _, k := range row.Kinds {
		kinds = append(kinds, string(k))
	}
	controls := styleSubtle.Render("[" + strings.Join(kinds, "/") + "]")

	line := fmt.Sprintf(" %s %s  %s %s", marker, badge, name, controls)
	if row.LoadErr != "" && !row.Cached {
		line += styleError.Render("  " + row.LoadErr)
	}
	return ansi.Truncate(line, m.width, "…")
}

// renderStatusBar renders the bottom line: counts on the left, the status
// message or a hint on the right
func (m *Model) renderStatusBar() string {
	cached := 0
	for _, r := range m.allRows {
		if r.Cached {
			cached++
		}
	}
	left := fmt.Sprintf("%d files, %d cached", len(m.allRows), cached)
	if m.preload {
		left += " (loading)"
	}

	right := ""
	if m.statusMsg != "" {
		if m.statusKind == types.StatusError {
			right = styleError.Render(m.statusMsg)
		} else {
			right = styleSuccess.Render(m.statusMsg)
		}
	} else {
		right = styleSubtle.Render(fmt.Sprintf("%s: search | %s: help | %s: quit",
			m.keybinds.GetBindingString(keybinds.ContextNormal, keybinds.ActionOpenSearch),
			m.keybinds.GetBindingString(keybinds.ContextNormal, keybinds.ActionOpenHelp),
			m.keybinds.GetBindingString(keybinds.ContextNormal, keybinds.ActionQuit),
		))
	}

	// The message wins over the counters on narrow terminals
	room := m.width - lipgloss.Width(left) - 1
	if room < lipgloss.Width(right) {
		left = ""
		room = m.width
	}
	right = ansi.Truncate(right, room, "…")

	spacing := max(1, m.width-lipgloss.Width(left)-lipgloss.Width(right))
	return left + strings.Repeat(" ", spacing) + right
}
