package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

const settingsRelPath = "dockd/settings.toml"

// Path returns where the settings file lives (created or not).
func Path() (string, error) {
	return xdg.ConfigFile(settingsRelPath)
}

// Load reads the settings file from the XDG config directory, creating
// a commented default file when none exists. Out-of-range values are
// clamped and invalid enums replaced, never rejected.
func Load() (*Settings, error) {
	path, err := xdg.SearchConfigFile(settingsRelPath)
	if err != nil {
		return createDefaultFile()
	}

	// #nosec G304 - path comes from XDG search, reading user settings is intentional
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	s := Default()
	if err := toml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}
	s.Normalize()
	return s, nil
}

// Save writes the settings back to disk and flips the first-run flag.
func Save(s *Settings) error {
	path, err := Path()
	if err != nil {
		return fmt.Errorf("failed to get settings path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	s.FirstRun = false
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

func createDefaultFile() (*Settings, error) {
	s := Default()

	path, err := Path()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := toml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settings: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# dockd settings\n")
	sb.WriteString("#\n")
	sb.WriteString("# Settings location: " + path + "\n")
	sb.WriteString("#\n")
	sb.WriteString("# pinned-apps: desktop-entry basenames pinned to the dock, in order\n")
	sb.WriteString("# saved-configs: per-workspace pinned sets, CSV: name,workspace,app1,app2,...\n")
	sb.WriteString("# pinned-apps-on-all-workspaces: true = one global pin set, false = per workspace\n")
	sb.WriteString("# app-spacing: inter-icon spacing, 0-8\n")
	sb.WriteString("# dock-fixed-size: max visible slots before overflow scroll, -1 = unbounded\n")
	sb.WriteString("# popup-delay: hover popup delay in milliseconds\n\n")
	sb.Write(data)

	if err := os.WriteFile(path, []byte(sb.String()), 0600); err != nil {
		return nil, fmt.Errorf("failed to write default settings: %w", err)
	}
	return s, nil
}
