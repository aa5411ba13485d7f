package dock

import (
	"sort"
)

// WindowRegistry is the raw truth source for live windows. It is fed by
// window-manager events, which the host must deliver serialized; every
// mutation completes synchronously before the next event is processed.
//
// Event handling is idempotent: closing an unknown handle is a no-op and
// re-opening a handle after a stale close creates a fresh entry.
type WindowRegistry struct {
	windows map[Handle]*Window
	nextSeq uint64
}

// NewWindowRegistry returns an empty registry.
func NewWindowRegistry() *WindowRegistry {
	return &WindowRegistry{windows: make(map[Handle]*Window)}
}

// OnWindowOpened records a new window on the given workspace. If the
// handle is already tracked the existing entry is replaced, treating the
// event as a re-open after a missed close.
func (r *WindowRegistry) OnWindowOpened(h Handle, ws WorkspaceID) *Window {
	w := &Window{Handle: h, Workspace: ws, seq: r.nextSeq}
	r.nextSeq++
	r.windows[h] = w
	return w
}

// OnWindowClosed removes the window. Unknown handles are ignored.
func (r *WindowRegistry) OnWindowClosed(h Handle) {
	delete(r.windows, h)
}

// OnWindowPropertyChanged applies a property event to a tracked window.
// Returns false if the handle is unknown (stale event, ignored).
func (r *WindowRegistry) OnWindowPropertyChanged(h Handle, change PropertyChange) bool {
	w, ok := r.windows[h]
	if !ok {
		return false
	}
	if change.Workspace != nil {
		w.Workspace = *change.Workspace
	}
	if change.Urgent != nil {
		w.Urgent = *change.Urgent
	}
	if change.Minimized != nil {
		w.Minimized = *change.Minimized
	}
	if change.Active != nil {
		w.Active = *change.Active
	}
	if change.Z != nil {
		w.Z = *change.Z
	}
	return true
}

// SetIdentity assigns the resolved application identity to a window.
// The identity is immutable once set; later calls with a different
// identity are ignored.
func (r *WindowRegistry) SetIdentity(h Handle, id AppID) {
	w, ok := r.windows[h]
	if !ok || w.Resolved {
		return
	}
	w.Identity = id
	w.Resolved = true
}

// Window returns the tracked window for a handle, or nil.
func (r *WindowRegistry) Window(h Handle) *Window {
	return r.windows[h]
}

// Len returns the number of tracked windows.
func (r *WindowRegistry) Len() int {
	return len(r.windows)
}

// Group is a set of windows sharing one application identity, ordered by
// arrival. FirstSeen is the sequence number of the oldest member and
// orders groups deterministically.
type Group struct {
	Identity  AppID
	Windows   []*Window
	FirstSeen uint64
}

// GroupFilter restricts which windows a grouped query returns.
type GroupFilter struct {
	// Workspace, when non-empty, limits results to windows on that
	// workspace.
	Workspace WorkspaceID
}

// GroupedByIdentity returns resolved windows grouped by identity, groups
// in first-seen order and windows within a group in arrival order.
// Unresolved windows are returned separately, one per window, so the
// reconciler can degrade them to anonymous slots.
func (r *WindowRegistry) GroupedByIdentity(filter GroupFilter) (groups []Group, unresolved []*Window) {
	byID := make(map[AppID]*Group)
	for _, w := range r.windows {
		if filter.Workspace != "" && w.Workspace != filter.Workspace {
			continue
		}
		if !w.Resolved {
			unresolved = append(unresolved, w)
			continue
		}
		g, ok := byID[w.Identity]
		if !ok {
			g = &Group{Identity: w.Identity, FirstSeen: w.seq}
			byID[w.Identity] = g
		}
		if w.seq < g.FirstSeen {
			g.FirstSeen = w.seq
		}
		g.Windows = append(g.Windows, w)
	}

	groups = make([]Group, 0, len(byID))
	for _, g := range byID {
		sort.Slice(g.Windows, func(i, j int) bool {
			return g.Windows[i].seq < g.Windows[j].seq
		})
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].FirstSeen < groups[j].FirstSeen
	})
	sort.Slice(unresolved, func(i, j int) bool {
		return unresolved[i].seq < unresolved[j].seq
	})
	return groups, unresolved
}
