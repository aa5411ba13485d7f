package dock

// IdentityResolver maps window metadata to a stable application
// identity. ok is false when nothing at all could be derived; such
// windows are still tracked and degrade to anonymous slots.
type IdentityResolver interface {
	Resolve(info WindowInfo) (id AppID, ok bool)
}

// HandleForgetter is implemented by resolvers that cache results per
// window handle. The engine calls Forget when a handle dies or is
// recycled, so window managers that reuse handles resolve fresh.
// Resolvers without a cache simply do not implement it.
type HandleForgetter interface {
	Forget(h Handle)
}

// WindowController is the capability interface the engine drives in
// response to user actions. Implementations talk to the window manager
// and process launcher; the core never does either directly.
type WindowController interface {
	// Activate raises and focuses the window, unminimizing if needed.
	Activate(h Handle)
	// Minimize minimizes the window.
	Minimize(h Handle)
	// ActivateWorkspace switches the active workspace.
	ActivateWorkspace(ws WorkspaceID)
	// Launch starts a new instance of the application.
	Launch(id AppID) error
}

// NopController discards all commands. Useful for tests and for hosts
// that only consume snapshots.
type NopController struct{}

func (NopController) Activate(Handle) {}

func (NopController) Minimize(Handle) {}

func (NopController) ActivateWorkspace(WorkspaceID) {}

func (NopController) Launch(AppID) error { return nil }
