package dock

// Slot is one visual unit of the dock: a pinned application (with or
// without windows) or a running unpinned one. Anonymous slots carry the
// windows whose identity could not be resolved, one slot per window.
type Slot struct {
	Identity  AppID
	Pinned    bool
	Anonymous bool

	// Windows holds the handles attached to this slot after workspace
	// filtering, in first-seen order.
	Windows []Handle

	Indicator IndicatorState
	// IndicatorCount is the number of distinct window indicators to
	// draw, capped at MaxDistinctIndicators.
	IndicatorCount int
	// WindowCount is the full attached window count, including windows
	// beyond the indicator cap.
	WindowCount int
}

// Snapshot is the reconciler's output: the ordered slot list plus the
// overflow count implied by dock-fixed-size. It is a pure function of
// the input state, so identical inputs yield identical snapshots.
type Snapshot struct {
	Slots []Slot
	// Overflow is how many trailing slots exceed the fixed dock size
	// and are the renderer's scroll region. Zero when unbounded.
	Overflow int
}

// ReconcileOptions carries the settings the reconciler's join depends on.
type ReconcileOptions struct {
	// AppsFromAllWorkspaces includes unpinned running apps from every
	// workspace; when false only apps with a window on the active
	// workspace get an unpinned slot.
	AppsFromAllWorkspaces bool
	// WindowsFromCurrentWorkspaceOnly restricts each slot's attached
	// window set (and therefore its indicators) to the active workspace.
	WindowsFromCurrentWorkspaceOnly bool
	// MultiIndicator enables per-window indicator distinction.
	MultiIndicator bool
	// DockFixedSize is the maximum slot count before overflow; -1 means
	// unbounded.
	DockFixedSize int
}

// Reconciler merges registry and store state into the ordered slot list.
type Reconciler struct {
	registry *WindowRegistry
	store    *PinnedConfigStore
}

// NewReconciler binds a reconciler to its inputs.
func NewReconciler(registry *WindowRegistry, store *PinnedConfigStore) *Reconciler {
	return &Reconciler{registry: registry, store: store}
}

// Recompute produces the dock snapshot for the given active workspace.
// Pinned slots lead in configuration order; unpinned slots follow in
// first-seen order. A slot is present iff it is pinned or has at least
// one window passing the visibility filter.
func (r *Reconciler) Recompute(active WorkspaceID, opts ReconcileOptions) Snapshot {
	groups, unresolved := r.registry.GroupedByIdentity(GroupFilter{})

	byIdentity := make(map[AppID]Group, len(groups))
	for _, g := range groups {
		byIdentity[g.Identity] = g
	}

	attach := func(g Group) []*Window {
		if !opts.WindowsFromCurrentWorkspaceOnly {
			return g.Windows
		}
		var out []*Window
		for _, w := range g.Windows {
			if w.Workspace == active {
				out = append(out, w)
			}
		}
		return out
	}

	var slots []Slot

	// Pinned slots first, in configuration order. They are shown even
	// with no windows at all.
	pinned := r.store.ActiveSlots()
	pinnedSet := make(map[AppID]struct{}, len(pinned))
	for _, id := range pinned {
		pinnedSet[id] = struct{}{}
		windows := attach(byIdentity[id])
		slots = append(slots, makeSlot(id, true, false, windows, opts.MultiIndicator))
	}

	// Unpinned slots for every remaining group with a visible window.
	for _, g := range groups {
		if _, isPinned := pinnedSet[g.Identity]; isPinned {
			continue
		}
		if !opts.AppsFromAllWorkspaces && !onWorkspace(g.Windows, active) {
			continue
		}
		windows := attach(g)
		if len(windows) == 0 {
			continue
		}
		slots = append(slots, makeSlot(g.Identity, false, false, windows, opts.MultiIndicator))
	}

	// Unresolved windows degrade to one anonymous slot each. They can
	// never match a pin, but they must not break the pipeline.
	for _, w := range unresolved {
		if !opts.AppsFromAllWorkspaces && w.Workspace != active {
			continue
		}
		if opts.WindowsFromCurrentWorkspaceOnly && w.Workspace != active {
			continue
		}
		slots = append(slots, makeSlot("", false, true, []*Window{w}, opts.MultiIndicator))
	}

	overflow := 0
	if opts.DockFixedSize >= 0 && len(slots) > opts.DockFixedSize {
		overflow = len(slots) - opts.DockFixedSize
	}
	return Snapshot{Slots: slots, Overflow: overflow}
}

func makeSlot(id AppID, pinned, anonymous bool, windows []*Window, multiInd bool) Slot {
	state, count := ComputeIndicator(windows, multiInd)
	slot := Slot{
		Identity:       id,
		Pinned:         pinned,
		Anonymous:      anonymous,
		Indicator:      state,
		IndicatorCount: count,
		WindowCount:    len(windows),
	}
	for _, w := range windows {
		slot.Windows = append(slot.Windows, w.Handle)
	}
	return slot
}

func onWorkspace(windows []*Window, ws WorkspaceID) bool {
	for _, w := range windows {
		if w.Workspace == ws {
			return true
		}
	}
	return false
}
