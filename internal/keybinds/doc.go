/*
Package keybinds provides customizable keyboard binding management.

# Overview

Keys map to actions within a context. The TUI asks the registry which
action a key press means in its current context and falls back to the
global context when the specific one has no binding.

Contexts:
  - global: available everywhere (ctrl+c)
  - normal: the file list
  - viewer: the viewer modal
  - search: the filter input
  - help: the help overlay

# Components

Registry (registry.go):
  - Context-aware key matching with global fallback
  - Two-key sequences such as "gg", detected from the bound keys
  - Not safe for concurrent writes; register during initialization

Validator (validator.go):
  - Unknown actions are errors
  - Every modal must keep a close key
  - A single key that also starts a bound "gg" style sequence is dead
  - Rebinding ctrl+c and shadowing global keys are warnings

Defaults (defaults.go):
  - Used when no keybinds.json exists

# Configuration File Format

~/.docpeek/keybinds.json maps actions to comma-separated keys. Comments
are allowed. Listing an action replaces its default keys in that context.

	{
	  // vim users
	  "normal": {
	    "copy": "y",
	    "view": "enter,l"
	  },
	  "viewer": {
	    "close_modal": "esc,h"
	  }
	}

# Example Usage

	registry, err := keybinds.LoadOrDefault(config.KeybindsFile)
	if err != nil {
		return err
	}

	if action, ok := registry.Match(keybinds.ContextNormal, "c"); ok {
		// handle action
	}
*/
package keybinds
