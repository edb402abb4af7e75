package keybinds

import (
	"strings"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      ValidationError
		expected string
	}{
		{
			name:     "context wide",
			err:      ValidationError{Type: IssueUnreachable, Context: ContextViewer, Message: "no key bound to close_modal"},
			expected: "viewer: no key bound to close_modal (unreachable)",
		},
		{
			name:     "single key",
			err:      ValidationError{Type: IssueReserved, Context: ContextNormal, Key: "ctrl+c", Message: "bound to copy instead of quit_force"},
			expected: `normal "ctrl+c": bound to copy instead of quit_force (reserved)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestValidateRegistry_Defaults(t *testing.T) {
	result := NewValidator().ValidateRegistry(NewDefaultRegistry())
	if result.HasErrors() || result.HasWarnings() {
		t.Errorf("defaults should be clean:\n%s", result.String())
	}
	if result.String() != "keybindings ok\n" {
		t.Errorf("String() = %q", result.String())
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name         string
		config       *Config
		wantErrors   bool
		wantWarnings bool
	}{
		{
			name:   "rebinding copy",
			config: &Config{Normal: map[string]string{"copy": "y"}},
		},
		{
			name:       "viewer cannot be closed",
			config:     &Config{Viewer: map[string]string{"close_modal": ""}},
			wantErrors: true,
		},
		{
			name:       "unknown action",
			config:     &Config{Help: map[string]string{"launch": "l"}},
			wantErrors: true,
		},
		{
			name:         "single key hidden by sequence",
			config:       &Config{Viewer: map[string]string{"navigate_down": "g,j"}},
			wantWarnings: true,
		},
		{
			name:         "ctrl+c rebound",
			config:       &Config{Normal: map[string]string{"copy": "ctrl+c"}},
			wantWarnings: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewValidator().ValidateConfig(tt.config)
			if result.HasErrors() != tt.wantErrors {
				t.Errorf("HasErrors() = %v, want %v\n%s", result.HasErrors(), tt.wantErrors, result.String())
			}
			if result.HasWarnings() != tt.wantWarnings {
				t.Errorf("HasWarnings() = %v, want %v\n%s", result.HasWarnings(), tt.wantWarnings, result.String())
			}
		})
	}
}

func TestValidationResult_String(t *testing.T) {
	result := &ValidationResult{
		Errors:   []ValidationError{{Type: IssueInvalid, Context: ContextNormal, Key: "x", Message: "bad"}},
		Warnings: []ValidationError{{Type: IssueShadowed, Context: ContextHelp, Key: "q", Message: "meh"}},
	}
	s := result.String()
	for _, want := range []string{
		`error: normal "x": bad (invalid)`,
		`warning: help "q": meh (shadowed)`,
		"1 error(s), 1 warning(s)",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in %q", want, s)
		}
	}
}

func TestValidateKey(t *testing.T) {
	tests := map[string]bool{
		"":       true,
		"ctrl+":  true,
		"ctrl+x": false,
		"esc":    false,
		"?":      false,
	}
	for key, wantErr := range tests {
		if err := ValidateKey(key); (err != nil) != wantErr {
			t.Errorf("ValidateKey(%q) error = %v, wantErr %v", key, err, wantErr)
		}
	}
}
