package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/studiowebux/docpeek/internal/keybinds"
)

// updateHelpSize fits the help viewport to the overlay
func (m *Model) updateHelpSize() {
	m.helpView.Width = max(1, m.width-ModalWidthMarginNarrow-ModalPaddingH)
	m.helpView.Height = max(1, m.bodyHeight()-ModalHeightMarginMed-ModalPaddingV-ModalOverheadLines)
}

// helpContent lists the effective bindings grouped by context
func (m *Model) helpContent() string {
	var b strings.Builder

	sections := []struct {
		title   string
		context keybinds.Context
	}{
		{"File list", keybinds.ContextNormal},
		{"Viewer", keybinds.ContextViewer},
		{"Filter", keybinds.ContextSearch},
		{"Everywhere", keybinds.ContextGlobal},
	}

	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styleTitle.Render(s.title) + "\n")

		seen := make(map[keybinds.Action]bool)
		for _, binding := range m.keybinds.ListBindings(s.context) {
			if seen[binding.Action] {
				continue
			}
			seen[binding.Action] = true
			keys := strings.Join(m.keybinds.GetBinding(s.context, binding.Action), ", ")
			b.WriteString(fmt.Sprintf("  %-22s %s\n", keys, binding.Action.Description()))
		}
	}

	b.WriteString("\n" + styleSubtle.Render("Mouse: click outside the viewer to close it, wheel to scroll"))
	return b.String()
}

// renderHelp renders the help overlay
func (m *Model) renderHelp() string {
	title := styleTitle.Render("Keyboard Shortcuts")
	footer := styleSubtle.Render(fmt.Sprintf("↑/↓: scroll | %s: close",
		m.keybinds.GetBindingString(keybinds.ContextHelp, keybinds.ActionCloseModal)))

	fullContent := title + "\n\n" + m.helpView.View() + "\n\n" + footer

	helpView := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBlue).
		Width(m.width - ModalWidthMarginNarrow).
		Height(m.bodyHeight() - ModalHeightMarginMed).
		Padding(1, 2).
		Render(fullContent)

	return lipgloss.Place(
		m.width,
		m.bodyHeight(),
		lipgloss.Center,
		lipgloss.Center,
		helpView,
	)
}
