package dock

// EventType identifies the source of an engine event.
type EventType int

const (
	// WindowOpened reports a new top-level window.
	WindowOpened EventType = iota
	// WindowClosed reports a destroyed window.
	WindowClosed
	// WindowChanged reports a window property change.
	WindowChanged
	// WorkspaceActivated reports the active workspace changing.
	WorkspaceActivated
)

func (t EventType) String() string {
	switch t {
	case WindowOpened:
		return "window-opened"
	case WindowClosed:
		return "window-closed"
	case WindowChanged:
		return "window-changed"
	case WorkspaceActivated:
		return "workspace-activated"
	}
	return "unknown"
}

// WindowInfo is the metadata the window manager supplies with a new
// window. The resolver turns it into an application identity.
type WindowInfo struct {
	Handle    Handle
	Workspace WorkspaceID
	// DesktopFile is the direct desktop-entry association when the
	// window manager knows it. Takes precedence over heuristics.
	DesktopFile string
	// Class is the window's WM_CLASS (or equivalent) string.
	Class string
	// PID of the owning process, 0 when unknown.
	PID int32
}

// Event is the universal packet processed by the engine. All window
// manager and workspace notifications are expressed as Events so hosts
// with threaded callbacks can funnel them through a single queue.
type Event struct {
	Type      EventType
	Info      WindowInfo     // WindowOpened
	Handle    Handle         // WindowClosed, WindowChanged
	Change    PropertyChange // WindowChanged
	Workspace WorkspaceID    // WorkspaceActivated
}
