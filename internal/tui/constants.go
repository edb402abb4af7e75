package tui

import "time"

// UI Layout Constants
// These constants define spacing, margins, and dimensions for the TUI layout

const (
	// Viewer modal margins around the bordered box. Both leave an even gap
	// so the centered box lands on whole cells and click hit-testing matches
	// what is drawn.
	ViewerWidthMargin  = 6 // m.width - 6
	ViewerHeightMargin = 4 // body height - 4

	// Help overlay margins
	ModalWidthMarginNarrow = 10 // m.width - 10
	ModalHeightMarginMed   = 4  // m.height - 4

	// Modal Content Calculations
	ModalBorderWidth     = 2 // Left + right (or top + bottom) border
	ModalPaddingH        = 4 // Padding(1, 2): left + right
	ModalPaddingV        = 2 // Padding(1, 2): top + bottom
	ModalOverheadLines   = 4 // Title + blank line + blank line + footer
	StatusBarLines       = 1 // Status bar below every view
	ListHeaderLines      = 3 // Title, filter line, blank line
	MouseWheelScrollRows = 3

	// StatusTimeout is how long a status message stays visible
	StatusTimeout = 3 * time.Second
)
