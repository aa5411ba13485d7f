package dock

import (
	"fmt"
	"strings"
)

// SavedConfig is a named, workspace-scoped pinned application list.
// Its wire format is a CSV line: name, owning workspace id, then the
// ordered application identities.
type SavedConfig struct {
	Name      string
	Workspace WorkspaceID
	Apps      []AppID
}

// ParseSavedConfig decodes one saved-configs entry. Trailing empty
// fields are tolerated and kept in Apps so the entry round-trips;
// PinnedApps filters them out for actual use. Entries written by older
// applet versions were wrapped in double quotes; those are accepted but
// the quotes are not part of the format.
func ParseSavedConfig(s string) (SavedConfig, error) {
	raw := s
	if len(raw) >= 2 && strings.HasPrefix(raw, `"`) && strings.HasSuffix(raw, `"`) {
		raw = raw[1 : len(raw)-1]
	}
	fields := strings.Split(raw, ",")
	if len(fields) < 2 {
		return SavedConfig{}, fmt.Errorf("saved config %q: missing workspace field", s)
	}
	if fields[0] == "" {
		return SavedConfig{}, fmt.Errorf("saved config %q: empty name", s)
	}
	cfg := SavedConfig{
		Name:      fields[0],
		Workspace: WorkspaceID(fields[1]),
	}
	for _, f := range fields[2:] {
		cfg.Apps = append(cfg.Apps, AppID(f))
	}
	return cfg, nil
}

// Serialize encodes the configuration back to its CSV form. For any
// well-formed unquoted input, Serialize(ParseSavedConfig(s)) == s.
func (c SavedConfig) Serialize() string {
	parts := make([]string, 0, 2+len(c.Apps))
	parts = append(parts, c.Name, string(c.Workspace))
	for _, a := range c.Apps {
		parts = append(parts, string(a))
	}
	return strings.Join(parts, ",")
}

// PinnedApps returns the non-empty identities in order, skipping the
// empty trailing fields a sloppy writer may have produced.
func (c SavedConfig) PinnedApps() []AppID {
	apps := make([]AppID, 0, len(c.Apps))
	for _, a := range c.Apps {
		if a != "" {
			apps = append(apps, a)
		}
	}
	return apps
}
