// Package dock implements the core reconciliation engine of the dock:
// it tracks live windows, joins them with the user's pinned application
// slots, and produces the ordered slot list the renderer consumes.
package dock

// Handle is an opaque identifier for an OS-level window. The window
// manager collaborator supplies it; the core never interprets it.
type Handle string

// WorkspaceID identifies a workspace. The panel host reports workspaces
// by name, so this is an opaque string rather than an index.
type WorkspaceID string

// AppID is the stable application identity shared by all windows of one
// application, normally a desktop-entry basename such as "firefox.desktop".
// Synthesized identities for windows without a desktop entry use the
// "wmclass://" prefix.
type AppID string

// Anonymous reports whether the identity was synthesized from window
// metadata rather than resolved to a real desktop entry.
func (id AppID) Anonymous() bool {
	return len(id) > 10 && id[:10] == "wmclass://"
}

// Window is the registry's record of one live top-level window.
// All fields are mutated only by WindowRegistry event handlers.
type Window struct {
	Handle    Handle
	Workspace WorkspaceID
	Identity  AppID // empty until the resolver assigns one
	Resolved  bool
	Urgent    bool
	Minimized bool
	Active    bool
	Z         int // z-order hint from the window manager

	// seq orders windows by arrival so grouped queries and unpinned
	// slots come out in first-seen order, not map iteration order.
	seq uint64
}

// PropertyChange carries the optional fields of a window property event.
// Nil pointers mean "unchanged".
type PropertyChange struct {
	Workspace *WorkspaceID
	Urgent    *bool
	Minimized *bool
	Active    *bool
	Z         *int
}
