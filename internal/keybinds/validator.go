package keybinds

import (
	"fmt"
	"sort"
	"strings"
)

// Issue kinds
const (
	IssueInvalid     = "invalid"     // unknown action or malformed key
	IssueUnreachable = "unreachable" // an action the user can no longer trigger
	IssueReserved    = "reserved"    // ctrl+c rebound
	IssueShadowed    = "shadowed"    // a context key hides a global one
)

// ValidationError is one problem found in a set of bindings
type ValidationError struct {
	Type    string
	Context Context
	Key     string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s: %s (%s)", e.Context, e.Message, e.Type)
	}
	return fmt.Sprintf("%s %q: %s (%s)", e.Context, e.Key, e.Message, e.Type)
}

// ValidationResult splits issues into errors, which make a keybinds.json
// unusable, and warnings
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

func (r *ValidationResult) HasErrors() bool   { return len(r.Errors) > 0 }
func (r *ValidationResult) HasWarnings() bool { return len(r.Warnings) > 0 }

func (r *ValidationResult) String() string {
	if !r.HasErrors() && !r.HasWarnings() {
		return "keybindings ok\n"
	}

	var sb strings.Builder
	for _, e := range r.Errors {
		fmt.Fprintf(&sb, "error: %s\n", e.Error())
	}
	for _, w := range r.Warnings {
		fmt.Fprintf(&sb, "warning: %s\n", w.Error())
	}
	fmt.Fprintf(&sb, "%d error(s), %d warning(s)\n", len(r.Errors), len(r.Warnings))
	return sb.String()
}

// rule inspects a registry and records what it finds
type rule func(r *Registry, result *ValidationResult)

// Validator runs the keybinding rules
type Validator struct {
	rules []rule
}

// NewValidator returns a validator with the docpeek rules:
//   - every bound action must exist
//   - the viewer, search and help overlays must keep a way out
//   - a single key hidden by a doubled sequence never fires
//   - ctrl+c should stay a force quit
//   - context keys hiding global ones are reported
func NewValidator() *Validator {
	return &Validator{rules: []rule{
		boundActionsKnown,
		escapable(map[Context]Action{
			ContextViewer: ActionCloseModal,
			ContextSearch: ActionTextCancel,
			ContextHelp:   ActionCloseModal,
		}),
		sequencePrefixes,
		reservedKey("ctrl+c", ActionQuitForce),
		globalShadowing,
	}}
}

// ValidateRegistry applies every rule to registry
func (v *Validator) ValidateRegistry(registry *Registry) *ValidationResult {
	result := &ValidationResult{}
	for _, check := range v.rules {
		check(registry, result)
	}
	sortIssues(result.Errors)
	sortIssues(result.Warnings)
	return result
}

// ValidateConfig validates config as it would be applied over the defaults
func (v *Validator) ValidateConfig(config *Config) *ValidationResult {
	registry := NewDefaultRegistry()
	if err := ApplyConfig(registry, config); err != nil {
		return &ValidationResult{Errors: []ValidationError{{Type: IssueInvalid, Message: err.Error()}}}
	}
	return v.ValidateRegistry(registry)
}

func boundActionsKnown(r *Registry, result *ValidationResult) {
	for ctx, km := range r.contexts {
		for key, action := range km {
			if !action.IsKnown() {
				result.Errors = append(result.Errors, ValidationError{
					Type: IssueInvalid, Context: ctx, Key: key,
					Message: fmt.Sprintf("unknown action %q", action),
				})
			}
		}
	}
}

func escapable(exits map[Context]Action) rule {
	return func(r *Registry, result *ValidationResult) {
		for ctx, action := range exits {
			if len(r.GetBinding(ctx, action)) == 0 {
				result.Errors = append(result.Errors, ValidationError{
					Type: IssueUnreachable, Context: ctx,
					Message: fmt.Sprintf("no key bound to %s", action),
				})
			}
		}
	}
}

// sequencePrefixes flags "g" bound next to "gg": MatchMultiKey always
// holds the first key, so the single binding is dead
func sequencePrefixes(r *Registry, result *ValidationResult) {
	for ctx, km := range r.contexts {
		for key, action := range km {
			if len(key) == 1 && r.startsSequence(ctx, key) {
				result.Warnings = append(result.Warnings, ValidationError{
					Type: IssueUnreachable, Context: ctx, Key: key,
					Message: fmt.Sprintf("%s never fires, %q waits for %q", action, key, key+key),
				})
			}
		}
	}
}

func reservedKey(key string, action Action) rule {
	return func(r *Registry, result *ValidationResult) {
		for ctx, km := range r.contexts {
			if bound, ok := km[key]; ok && bound != action {
				result.Warnings = append(result.Warnings, ValidationError{
					Type: IssueReserved, Context: ctx, Key: key,
					Message: fmt.Sprintf("bound to %s instead of %s", bound, action),
				})
			}
		}
	}
}

func globalShadowing(r *Registry, result *ValidationResult) {
	global := r.contexts[ContextGlobal]
	for ctx, km := range r.contexts {
		if ctx == ContextGlobal {
			continue
		}
		for key, action := range km {
			if g, ok := global[key]; ok && g != action {
				result.Warnings = append(result.Warnings, ValidationError{
					Type: IssueShadowed, Context: ctx, Key: key,
					Message: fmt.Sprintf("hides global %s with %s", g, action),
				})
			}
		}
	}
}

func sortIssues(issues []ValidationError) {
	sort.Slice(issues, func(i, j int) bool {
		if issues[i].Context != issues[j].Context {
			return issues[i].Context < issues[j].Context
		}
		return issues[i].Key < issues[j].Key
	})
}

// ValidateKey rejects empty keys and bare modifiers
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}
	for _, mod := range []string{"ctrl+", "alt+", "shift+", "super+"} {
		if key == mod {
			return fmt.Errorf("modifier without key: %s", key)
		}
	}
	return nil
}
