package settings

// Overrides contains CLI flag values that can override persisted
// settings for one run. Zero values mean the flag was not set.
type Overrides struct {
	// MultiInd enables per-window indicator distinction.
	MultiInd bool

	// AllWorkspaces forces apps-from-all-workspaces on.
	AllWorkspaces bool

	// CurrentWorkspaceOnly restricts indicators to the active workspace.
	CurrentWorkspaceOnly bool

	// PerWorkspacePins forces per-workspace configuration mode.
	PerWorkspacePins bool

	// DockFixedSize overrides the overflow threshold (0 means unset).
	DockFixedSize int

	// PopupDelay overrides the hover popup delay in ms (0 means unset).
	PopupDelay int
}

// Apply folds CLI flag overrides into the loaded settings, clamping as
// usual. The result is not written back to disk.
func Apply(o Overrides, s *Settings) {
	if o.MultiInd {
		s.MultiInd = true
	}
	if o.AllWorkspaces {
		s.AppsFromAllWorkspaces = true
	}
	if o.CurrentWorkspaceOnly {
		s.WinFromCurWorkspaceOnly = true
	}
	if o.PerWorkspacePins {
		s.PinnedAppsOnAllWorkspaces = false
	}
	if o.DockFixedSize != 0 {
		s.DockFixedSize = o.DockFixedSize
	}
	if o.PopupDelay != 0 {
		s.PopupDelay = o.PopupDelay
	}
	s.Normalize()
}
