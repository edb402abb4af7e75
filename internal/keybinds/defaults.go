package keybinds

// NewDefaultRegistry creates a registry with all default keybindings
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	registerGlobalBindings(r)
	registerNormalModeBindings(r)
	registerViewerBindings(r)
	registerSearchBindings(r)
	registerHelpBindings(r)

	return r
}

// registerGlobalBindings sets up bindings available in all modes
func registerGlobalBindings(r *Registry) {
	r.Register(ContextGlobal, "ctrl+c", ActionQuitForce)
}

// registerNavigation binds the list/scroll keys shared by several contexts
func registerNavigation(r *Registry, ctx Context) {
	r.RegisterMultiple(ctx, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ctx, []string{"down", "j"}, ActionNavigateDown)
	r.Register(ctx, "pgup", ActionPageUp)
	r.Register(ctx, "pgdown", ActionPageDown)
	r.Register(ctx, "ctrl+u", ActionHalfPageUp)
	r.Register(ctx, "ctrl+d", ActionHalfPageDown)
	r.RegisterMultiple(ctx, []string{"gg", "home"}, ActionGoToTop)
	r.RegisterMultiple(ctx, []string{"G", "end"}, ActionGoToBottom)
}

// registerNormalModeBindings sets up the file list
func registerNormalModeBindings(r *Registry) {
	registerNavigation(r, ContextNormal)

	r.Register(ContextNormal, "q", ActionQuit)
	r.Register(ContextNormal, "c", ActionCopy)
	r.RegisterMultiple(ContextNormal, []string{"enter", "v"}, ActionView)
	r.Register(ContextNormal, "/", ActionOpenSearch)
	r.Register(ContextNormal, "esc", ActionClearFilter)
	r.Register(ContextNormal, "r", ActionReload)
	r.Register(ContextNormal, "?", ActionOpenHelp)
}

// registerViewerBindings sets up the viewer modal
func registerViewerBindings(r *Registry) {
	registerNavigation(r, ContextViewer)

	r.RegisterMultiple(ContextViewer, []string{"esc", "q", "x"}, ActionCloseModal)
	r.Register(ContextViewer, "c", ActionCopyCurrent)
}

// registerSearchBindings sets up the filter input
func registerSearchBindings(r *Registry) {
	r.Register(ContextSearch, "enter", ActionTextSubmit)
	r.Register(ContextSearch, "esc", ActionTextCancel)
}

// registerHelpBindings sets up the help overlay
func registerHelpBindings(r *Registry) {
	r.RegisterMultiple(ContextHelp, []string{"esc", "?", "q"}, ActionCloseModal)
}
