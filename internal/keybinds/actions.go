package keybinds

// Action represents a user action that can be triggered by a keybinding
type Action string

// Context represents the context in which keybindings are active
type Context string

const (
	// Contexts define where keybindings are active
	ContextGlobal Context = "global" // Available everywhere
	ContextNormal Context = "normal" // File list
	ContextViewer Context = "viewer" // Viewer modal
	ContextSearch Context = "search" // Filter input
	ContextHelp   Context = "help"   // Help overlay
)

// Contexts lists every context in display order
var Contexts = []Context{ContextGlobal, ContextNormal, ContextViewer, ContextSearch, ContextHelp}

const (
	// Global actions
	ActionQuit      Action = "quit"       // Quit application
	ActionQuitForce Action = "quit_force" // Force quit (ctrl+c)

	// Navigation actions
	ActionNavigateUp   Action = "navigate_up"    // Move up one item
	ActionNavigateDown Action = "navigate_down"  // Move down one item
	ActionPageUp       Action = "page_up"        // Move up one page
	ActionPageDown     Action = "page_down"      // Move down one page
	ActionHalfPageUp   Action = "half_page_up"   // Move up half page (ctrl+u)
	ActionHalfPageDown Action = "half_page_down" // Move down half page (ctrl+d)
	ActionGoToTop      Action = "go_to_top"      // Go to top
	ActionGoToBottom   Action = "go_to_bottom"   // Go to bottom

	// File actions
	ActionCopy        Action = "copy"         // Copy the selected file's raw text
	ActionView        Action = "view"         // Open the selected file in the viewer
	ActionCopyCurrent Action = "copy_current" // Copy the file shown in the viewer
	ActionReload      Action = "reload"       // Preload every file again

	// Modal actions
	ActionCloseModal Action = "close_modal" // Close current modal
	ActionOpenHelp   Action = "open_help"   // Show keybindings
	ActionOpenSearch Action = "open_search" // Start filtering the file list

	// Filter input actions
	ActionTextSubmit  Action = "text_submit"  // Keep the filter and return to the list
	ActionTextCancel  Action = "text_cancel"  // Drop the filter
	ActionClearFilter Action = "clear_filter" // Drop an applied filter from the list
)

// knownActions is used to reject typos in keybinds.json
var knownActions = map[Action]bool{
	ActionQuit:         true,
	ActionQuitForce:    true,
	ActionNavigateUp:   true,
	ActionNavigateDown: true,
	ActionPageUp:       true,
	ActionPageDown:     true,
	ActionHalfPageUp:   true,
	ActionHalfPageDown: true,
	ActionGoToTop:      true,
	ActionGoToBottom:   true,
	ActionCopy:         true,
	ActionView:         true,
	ActionCopyCurrent:  true,
	ActionReload:       true,
	ActionCloseModal:   true,
	ActionOpenHelp:     true,
	ActionOpenSearch:   true,
	ActionTextSubmit:   true,
	ActionTextCancel:   true,
	ActionClearFilter:  true,
}

// IsKnown reports whether an action is handled by the TUI
func (a Action) IsKnown() bool {
	return knownActions[a]
}

// Description returns a short human-readable label for the help overlay
func (a Action) Description() string {
	switch a {
	case ActionQuit:
		return "Quit"
	case ActionQuitForce:
		return "Force quit"
	case ActionNavigateUp:
		return "Move up"
	case ActionNavigateDown:
		return "Move down"
	case ActionPageUp:
		return "Page up"
	case ActionPageDown:
		return "Page down"
	case ActionHalfPageUp:
		return "Half page up"
	case ActionHalfPageDown:
		return "Half page down"
	case ActionGoToTop:
		return "Go to top"
	case ActionGoToBottom:
		return "Go to bottom"
	case ActionCopy:
		return "Copy file to clipboard"
	case ActionView:
		return "View file"
	case ActionCopyCurrent:
		return "Copy viewed file"
	case ActionReload:
		return "Reload all files"
	case ActionCloseModal:
		return "Close"
	case ActionOpenHelp:
		return "Help"
	case ActionOpenSearch:
		return "Filter files"
	case ActionTextSubmit:
		return "Apply filter"
	case ActionTextCancel:
		return "Cancel filter"
	case ActionClearFilter:
		return "Clear filter"
	default:
		return string(a)
	}
}
