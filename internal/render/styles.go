package render

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan    = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"}
	colorMagenta = lipgloss.AdaptiveColor{Light: "#8b008b", Dark: "#ff79c6"}
)

var (
	styleBold = lipgloss.NewStyle().
			Bold(true)

	styleHeading2 = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(colorCyan)

	styleHeading3 = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorMagenta)
)
