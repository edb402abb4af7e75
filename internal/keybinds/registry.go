package keybinds

import (
	"sort"
	"strings"
)

// Binding is one key bound to an action in a context
type Binding struct {
	Key     string
	Action  Action
	Context Context
}

// keymap holds the bindings of a single context
type keymap map[string]Action

// keysOf returns the sorted keys bound to action
func (km keymap) keysOf(action Action) []string {
	var keys []string
	for key, bound := range km {
		if bound == action {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// Registry resolves key presses to actions. Every context falls back to
// ContextGlobal.
type Registry struct {
	contexts map[Context]keymap

	// pending is the first key of a doubled sequence ("gg") per context
	pending map[Context]string
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{
		contexts: make(map[Context]keymap),
		pending:  make(map[Context]string),
	}
}

func (r *Registry) keymap(context Context) keymap {
	km, ok := r.contexts[context]
	if !ok {
		km = make(keymap)
		r.contexts[context] = km
	}
	return km
}

// Register binds key to action in context, replacing any previous action
func (r *Registry) Register(context Context, key string, action Action) {
	r.keymap(context)[key] = action
}

// RegisterMultiple binds every key in keys to action
func (r *Registry) RegisterMultiple(context Context, keys []string, action Action) {
	km := r.keymap(context)
	for _, key := range keys {
		km[key] = action
	}
}

// Unbind drops every key of action in context. Global keys are untouched.
func (r *Registry) Unbind(context Context, action Action) {
	km := r.contexts[context]
	for _, key := range km.keysOf(action) {
		delete(km, key)
	}
}

// Match looks key up in context, then in ContextGlobal
func (r *Registry) Match(context Context, key string) (Action, bool) {
	for _, ctx := range [...]Context{context, ContextGlobal} {
		if action, ok := r.contexts[ctx][key]; ok {
			return action, true
		}
	}
	return "", false
}

// MatchMultiKey is Match with doubled sequences. It returns the action,
// whether the key completed a binding, and whether the key is held as the
// first half of a sequence.
//
// A held key never fires on its own, even if it is bound: "g" waits for a
// second "g" while "gg" is bound.
func (r *Registry) MatchMultiKey(context Context, key string) (Action, bool, bool) {
	if first, held := r.pending[context]; held {
		delete(r.pending, context)
		action, ok := r.Match(context, first+key)
		return action, ok, false
	}

	if r.startsSequence(context, key) {
		r.pending[context] = key
		return "", false, true
	}

	action, ok := r.Match(context, key)
	return action, ok, false
}

// startsSequence reports whether key doubled is bound. Named keys like
// "up" never start a sequence.
func (r *Registry) startsSequence(context Context, key string) bool {
	if len(key) != 1 {
		return false
	}
	_, ok := r.Match(context, key+key)
	return ok
}

// ClearMultiKeyState forgets a held key, for example when a modal closes
func (r *Registry) ClearMultiKeyState(context Context) {
	delete(r.pending, context)
}

// GetBinding returns the sorted keys of action in context, or the global
// keys when the context has none
func (r *Registry) GetBinding(context Context, action Action) []string {
	if keys := r.contexts[context].keysOf(action); len(keys) > 0 {
		return keys
	}
	return r.contexts[ContextGlobal].keysOf(action)
}

// GetBindingString joins GetBinding for the help overlay and footers
func (r *Registry) GetBindingString(context Context, action Action) string {
	keys := r.GetBinding(context, action)
	if len(keys) == 0 {
		return "unbound"
	}
	return strings.Join(keys, ", ")
}

// ListBindings returns the bindings declared in context itself, ordered by
// action then key
func (r *Registry) ListBindings(context Context) []Binding {
	km := r.contexts[context]
	bindings := make([]Binding, 0, len(km))
	for key, action := range km {
		bindings = append(bindings, Binding{Key: key, Action: action, Context: context})
	}
	sort.Slice(bindings, func(i, j int) bool {
		if bindings[i].Action != bindings[j].Action {
			return bindings[i].Action < bindings[j].Action
		}
		return bindings[i].Key < bindings[j].Key
	})
	return bindings
}
