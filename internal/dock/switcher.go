package dock

// SwitcherState is the WorkspaceConfigSwitcher's state machine state.
type SwitcherState int

const (
	// SwitcherIdle means no configuration switch is in progress.
	SwitcherIdle SwitcherState = iota
	// SwitcherSwitching means a configuration activation is being applied.
	SwitcherSwitching
)

// ConfigStrategy decides how workspace activation maps to pinned
// configurations. It is chosen once, at startup or when the
// pinned-apps-on-all-workspaces setting changes, so the rest of the
// engine carries no per-call mode conditionals.
type ConfigStrategy interface {
	// ConfigFor selects the configuration to activate for a workspace.
	// ok is false when the workspace change should not touch the store.
	ConfigFor(store *PinnedConfigStore, ws WorkspaceID) (cfg SavedConfig, ok bool)
}

// GlobalStrategy implements the single global configuration mode:
// workspace changes never alter the pinned set.
type GlobalStrategy struct{}

// ConfigFor always reports no switch.
func (GlobalStrategy) ConfigFor(*PinnedConfigStore, WorkspaceID) (SavedConfig, bool) {
	return SavedConfig{}, false
}

// PerWorkspaceStrategy activates the saved configuration owned by the
// new workspace, or the given default when none matches.
type PerWorkspaceStrategy struct {
	// Default is activated for workspaces with no saved configuration.
	// Its zero value yields an empty pinned set, which is the documented
	// fallback rather than an error.
	Default SavedConfig
}

// ConfigFor selects the matching or default configuration.
func (p PerWorkspaceStrategy) ConfigFor(store *PinnedConfigStore, ws WorkspaceID) (SavedConfig, bool) {
	if cfg, ok := store.ConfigForWorkspace(ws); ok {
		return cfg, true
	}
	return p.Default, true
}

// WorkspaceConfigSwitcher reacts to workspace-activated events by
// swapping the store's active configuration. Rapid workspace cycling is
// coalesced: events arriving while a switch is in progress only record
// the newest target, and intermediate targets are dropped so the dock
// never flickers through configurations nobody is looking at.
type WorkspaceConfigSwitcher struct {
	store    *PinnedConfigStore
	strategy ConfigStrategy

	state   SwitcherState
	current WorkspaceID
	pending *WorkspaceID

	// OnSwitch, when set, runs after each completed activation.
	OnSwitch func(ws WorkspaceID, cfg SavedConfig)
}

// NewWorkspaceConfigSwitcher returns an idle switcher bound to the store.
func NewWorkspaceConfigSwitcher(store *PinnedConfigStore, strategy ConfigStrategy) *WorkspaceConfigSwitcher {
	return &WorkspaceConfigSwitcher{store: store, strategy: strategy, state: SwitcherIdle}
}

// State returns the current state machine state. Because all events are
// processed serialized and to completion, outside observers only ever
// see SwitcherIdle; the Switching state is observable by callbacks
// triggered from within an activation.
func (s *WorkspaceConfigSwitcher) State() SwitcherState {
	return s.state
}

// ActiveWorkspace returns the most recently activated workspace.
func (s *WorkspaceConfigSwitcher) ActiveWorkspace() WorkspaceID {
	return s.current
}

// SetStrategy swaps the configuration strategy. Used when the
// pinned-apps-on-all-workspaces setting changes at runtime.
func (s *WorkspaceConfigSwitcher) SetStrategy(strategy ConfigStrategy) {
	s.strategy = strategy
}

// OnWorkspaceActivated handles a workspace-activated event. Returns
// whether the store's active configuration changed.
func (s *WorkspaceConfigSwitcher) OnWorkspaceActivated(ws WorkspaceID) bool {
	s.current = ws

	if s.state == SwitcherSwitching {
		// Coalesce: remember only the latest target, last write wins.
		target := ws
		s.pending = &target
		return false
	}

	switched := false
	s.state = SwitcherSwitching
	target := ws
	for {
		if cfg, ok := s.strategy.ConfigFor(s.store, target); ok {
			s.store.ActivateConfiguration(cfg)
			switched = true
			if s.OnSwitch != nil {
				s.OnSwitch(target, cfg)
			}
		}
		if s.pending == nil {
			break
		}
		target = *s.pending
		s.pending = nil
	}
	s.state = SwitcherIdle
	return switched
}
