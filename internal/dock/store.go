package dock

// PinnedConfigStore holds the ordered pinned application list of the
// active configuration plus the catalog of saved, workspace-scoped
// configurations. The store accepts unlimited pins; dock-fixed-size
// capacity is enforced downstream by the reconciler and renderer.
type PinnedConfigStore struct {
	active  []AppID
	configs []SavedConfig
}

// NewPinnedConfigStore returns a store whose active list is the given
// initial pin set (the global/default configuration) with duplicates
// removed, and whose catalog is the given saved configurations.
func NewPinnedConfigStore(pinned []AppID, configs []SavedConfig) *PinnedConfigStore {
	s := &PinnedConfigStore{configs: configs}
	for _, id := range pinned {
		s.Pin(id, -1)
	}
	return s
}

// ActiveSlots returns a copy of the ordered active pin list.
func (s *PinnedConfigStore) ActiveSlots() []AppID {
	out := make([]AppID, len(s.active))
	copy(out, s.active)
	return out
}

// IsPinned reports whether the identity is in the active configuration.
func (s *PinnedConfigStore) IsPinned(id AppID) bool {
	return s.indexOf(id) >= 0
}

// Pin inserts the identity at the given index, or appends when the index
// is negative or past the end. Pinning an already-pinned identity is a
// no-op. Returns whether the list changed.
func (s *PinnedConfigStore) Pin(id AppID, at int) bool {
	if id == "" || s.indexOf(id) >= 0 {
		return false
	}
	if at < 0 || at >= len(s.active) {
		s.active = append(s.active, id)
		return true
	}
	s.active = append(s.active, "")
	copy(s.active[at+1:], s.active[at:])
	s.active[at] = id
	return true
}

// Unpin removes the identity. Unknown identities are a no-op.
func (s *PinnedConfigStore) Unpin(id AppID) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.active = append(s.active[:i], s.active[i+1:]...)
	return true
}

// Reorder moves an already-pinned identity to the given index, clamped
// to the list bounds. Returns whether the list changed.
func (s *PinnedConfigStore) Reorder(id AppID, to int) bool {
	from := s.indexOf(id)
	if from < 0 {
		return false
	}
	if to < 0 {
		to = 0
	}
	if to >= len(s.active) {
		to = len(s.active) - 1
	}
	if to == from {
		return false
	}
	s.active = append(s.active[:from], s.active[from+1:]...)
	s.active = append(s.active, "")
	copy(s.active[to+1:], s.active[to:])
	s.active[to] = id
	return true
}

// ActivateConfiguration atomically replaces the active pin list with the
// configuration's pins. The swap is a single slice replacement, so no
// caller can observe a partial mix of old and new entries.
func (s *PinnedConfigStore) ActivateConfiguration(cfg SavedConfig) {
	next := make([]AppID, 0, len(cfg.Apps))
	seen := make(map[AppID]struct{}, len(cfg.Apps))
	for _, id := range cfg.PinnedApps() {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		next = append(next, id)
	}
	s.active = next
}

// Configs returns the saved configuration catalog.
func (s *PinnedConfigStore) Configs() []SavedConfig {
	return s.configs
}

// ConfigForWorkspace returns the saved configuration owned by the given
// workspace, if any.
func (s *PinnedConfigStore) ConfigForWorkspace(ws WorkspaceID) (SavedConfig, bool) {
	for _, c := range s.configs {
		if c.Workspace == ws {
			return c, true
		}
	}
	return SavedConfig{}, false
}

// WorkspaceFor returns the workspace a saved configuration pins the
// identity to, or "" if no configuration pins it.
func (s *PinnedConfigStore) WorkspaceFor(id AppID) WorkspaceID {
	for _, c := range s.configs {
		for _, a := range c.Apps {
			if a == id {
				return c.Workspace
			}
		}
	}
	return ""
}

// SaveConfig adds or replaces the catalog entry with the same name.
func (s *PinnedConfigStore) SaveConfig(cfg SavedConfig) {
	for i, c := range s.configs {
		if c.Name == cfg.Name {
			s.configs[i] = cfg
			return
		}
	}
	s.configs = append(s.configs, cfg)
}

// DeleteConfig removes the named catalog entry if present.
func (s *PinnedConfigStore) DeleteConfig(name string) bool {
	for i, c := range s.configs {
		if c.Name == name {
			s.configs = append(s.configs[:i], s.configs[i+1:]...)
			return true
		}
	}
	return false
}

func (s *PinnedConfigStore) indexOf(id AppID) int {
	for i, a := range s.active {
		if a == id {
			return i
		}
	}
	return -1
}
