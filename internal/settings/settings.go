// Package settings persists the dock's user preferences. The key names
// and defaults are the stable contract with the settings-storage
// collaborator and are preserved verbatim.
package settings

import (
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dockd/dockd/internal/dock"
)

// IndicatorType selects the indicator rendering style. The renderer
// interprets it; the core only validates it.
type IndicatorType int

const (
	IndicatorLight IndicatorType = iota
	IndicatorDark
	IndicatorBar
	IndicatorCircle
	IndicatorSquare
	IndicatorTriangle
	IndicatorDiamond
)

// Valid reports whether the value is a known indicator style.
func (t IndicatorType) Valid() bool {
	return t >= IndicatorLight && t <= IndicatorDiamond
}

// BackgroundType selects the active-icon background render style.
type BackgroundType int

const (
	BackgroundGradient BackgroundType = iota
	BackgroundSolid
)

// Valid reports whether the value is a known background style.
func (t BackgroundType) Valid() bool {
	return t == BackgroundGradient || t == BackgroundSolid
}

// AttentionType selects the attention animation policy.
type AttentionType int

const (
	// AttentionBlink blinks until the urgent window is focused.
	AttentionBlink AttentionType = iota
	// AttentionStatic shows a one-shot cue cleared on any activation
	// of the slot.
	AttentionStatic
)

// Valid reports whether the value is a known attention policy.
func (t AttentionType) Valid() bool {
	return t == AttentionBlink || t == AttentionStatic
}

// Policy maps the persisted enum to the engine's attention policy.
func (t AttentionType) Policy() dock.AttentionPolicy {
	if t == AttentionStatic {
		return dock.AttentionOneShot
	}
	return dock.AttentionUntilFocused
}

// Spacing and size bounds, clamped on load rather than rejected.
const (
	MinAppSpacing = 0
	MaxAppSpacing = 8

	// UnboundedDockSize disables the fixed-size overflow threshold.
	UnboundedDockSize = -1
)

// DefaultPopupDelayMS is the hover popup debounce in milliseconds.
const DefaultPopupDelayMS = 1000

// Settings is the full persisted configuration surface of the dock.
// TOML tags carry the exact key names of the settings schema.
type Settings struct {
	PinnedApps                []string `toml:"pinned-apps"`
	IndicatorType             int      `toml:"indicator-type"`
	MultiInd                  bool     `toml:"multi-ind"`
	AppsFromAllWorkspaces     bool     `toml:"apps-from-all-workspaces"`
	WinFromCurWorkspaceOnly   bool     `toml:"win-from-cur-workspace-only"`
	UseWinList                bool     `toml:"use-win-list"`
	PanelActList              bool     `toml:"panel-act-list"`
	FirstRun                  bool     `toml:"first-run"`
	ClickRestoreLastActive    bool     `toml:"click-restore-last-active"`
	ChangePanelColor          bool     `toml:"change-panel-color"`
	ChangePanelColorDockOnly  bool     `toml:"change-panel-color-dock-only"`
	BgType                    int      `toml:"bg-type"`
	FallbackBarCol            []string `toml:"fallback-bar-col"`
	AppSpacing                int      `toml:"app-spacing"`
	AttentionType             int      `toml:"attention-type"`
	PopupDelay                int      `toml:"popup-delay"`
	SavedConfigs              []string `toml:"saved-configs"`
	PinnedAppsOnAllWorkspaces bool     `toml:"pinned-apps-on-all-workspaces"`
	DockFixedSize             int      `toml:"dock-fixed-size"`
}

// Default returns the documented default for every key.
func Default() *Settings {
	return &Settings{
		PinnedApps:                []string{},
		IndicatorType:             int(IndicatorLight),
		MultiInd:                  false,
		AppsFromAllWorkspaces:     true,
		WinFromCurWorkspaceOnly:   false,
		UseWinList:                true,
		PanelActList:              false,
		FirstRun:                  true,
		ClickRestoreLastActive:    true,
		ChangePanelColor:          false,
		ChangePanelColorDockOnly:  false,
		BgType:                    int(BackgroundGradient),
		FallbackBarCol:            []string{"128", "128", "128"},
		AppSpacing:                0,
		AttentionType:             int(AttentionBlink),
		PopupDelay:                DefaultPopupDelayMS,
		SavedConfigs:              []string{},
		PinnedAppsOnAllWorkspaces: true,
		DockFixedSize:             UnboundedDockSize,
	}
}

// Normalize clamps out-of-range values and replaces invalid enums with
// their defaults. It never rejects; bad values degrade gracefully.
func (s *Settings) Normalize() {
	if s.AppSpacing < MinAppSpacing {
		s.AppSpacing = MinAppSpacing
	} else if s.AppSpacing > MaxAppSpacing {
		s.AppSpacing = MaxAppSpacing
	}
	if s.DockFixedSize < UnboundedDockSize {
		s.DockFixedSize = UnboundedDockSize
	}
	if s.PopupDelay < 0 {
		s.PopupDelay = DefaultPopupDelayMS
	}
	if !IndicatorType(s.IndicatorType).Valid() {
		s.IndicatorType = int(IndicatorLight)
	}
	if !BackgroundType(s.BgType).Valid() {
		s.BgType = int(BackgroundGradient)
	}
	if !AttentionType(s.AttentionType).Valid() {
		s.AttentionType = int(AttentionBlink)
	}
	if !validBarCol(s.FallbackBarCol) {
		s.FallbackBarCol = []string{"128", "128", "128"}
	}
}

func validBarCol(col []string) bool {
	if len(col) != 3 {
		return false
	}
	for _, c := range col {
		v, err := strconv.Atoi(c)
		if err != nil || v < 0 || v > 255 {
			return false
		}
	}
	return true
}

// FallbackRGB returns the fallback bar color components. Call after
// Normalize; the slice is then guaranteed well formed.
func (s *Settings) FallbackRGB() (r, g, b uint8) {
	ri, _ := strconv.Atoi(s.FallbackBarCol[0])
	gi, _ := strconv.Atoi(s.FallbackBarCol[1])
	bi, _ := strconv.Atoi(s.FallbackBarCol[2])
	return uint8(ri), uint8(gi), uint8(bi)
}

// Pinned returns the global pinned list as application identities.
func (s *Settings) Pinned() []dock.AppID {
	out := make([]dock.AppID, 0, len(s.PinnedApps))
	for _, p := range s.PinnedApps {
		if p != "" {
			out = append(out, dock.AppID(p))
		}
	}
	return out
}

// ParseSavedConfigs decodes the saved-configs entries. Malformed entries
// are skipped with a warning; loading never aborts on them.
func (s *Settings) ParseSavedConfigs(logger *log.Logger) []dock.SavedConfig {
	configs := make([]dock.SavedConfig, 0, len(s.SavedConfigs))
	for _, entry := range s.SavedConfigs {
		cfg, err := dock.ParseSavedConfig(entry)
		if err != nil {
			if logger != nil {
				logger.Warn("skipping malformed saved config", "entry", entry, "err", err)
			}
			continue
		}
		configs = append(configs, cfg)
	}
	return configs
}

// EncodeSavedConfigs re-serializes the catalog back to the persisted
// CSV form.
func EncodeSavedConfigs(configs []dock.SavedConfig) []string {
	out := make([]string, 0, len(configs))
	for _, c := range configs {
		out = append(out, c.Serialize())
	}
	return out
}

// Strategy returns the configuration strategy implied by the
// pinned-apps-on-all-workspaces mode.
func (s *Settings) Strategy() dock.ConfigStrategy {
	if s.PinnedAppsOnAllWorkspaces {
		return dock.GlobalStrategy{}
	}
	return dock.PerWorkspaceStrategy{
		Default: dock.SavedConfig{Name: "default", Apps: appIDs(s.PinnedApps)},
	}
}

// EngineConfig derives the engine's behavior knobs from the settings.
func (s *Settings) EngineConfig() dock.Config {
	return dock.Config{
		AppsFromAllWorkspaces:           s.AppsFromAllWorkspaces,
		WindowsFromCurrentWorkspaceOnly: s.WinFromCurWorkspaceOnly,
		MultiIndicator:                  s.MultiInd,
		DockFixedSize:                   s.DockFixedSize,
		ClickRestoreLastActive:          s.ClickRestoreLastActive,
		Attention:                       AttentionType(s.AttentionType).Policy(),
		PopupDelay:                      time.Duration(s.PopupDelay) * time.Millisecond,
	}
}

func appIDs(in []string) []dock.AppID {
	out := make([]dock.AppID, 0, len(in))
	for _, s := range in {
		if s != "" {
			out = append(out, dock.AppID(s))
		}
	}
	return out
}
