package settings

import (
	"io"
	"reflect"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dockd/dockd/internal/dock"
)

func TestDefaults(t *testing.T) {
	s := Default()

	if !s.FirstRun {
		t.Error("first-run should default to true")
	}
	if !s.AppsFromAllWorkspaces || s.WinFromCurWorkspaceOnly {
		t.Error("workspace visibility defaults wrong")
	}
	if !s.UseWinList || s.PanelActList {
		t.Error("popup defaults wrong")
	}
	if !s.ClickRestoreLastActive {
		t.Error("click-restore-last-active should default to true")
	}
	if s.PopupDelay != 1000 {
		t.Errorf("popup-delay = %d, want 1000", s.PopupDelay)
	}
	if s.DockFixedSize != -1 {
		t.Errorf("dock-fixed-size = %d, want -1", s.DockFixedSize)
	}
	if !reflect.DeepEqual(s.FallbackBarCol, []string{"128", "128", "128"}) {
		t.Errorf("fallback-bar-col = %v", s.FallbackBarCol)
	}
	if !s.PinnedAppsOnAllWorkspaces {
		t.Error("pinned-apps-on-all-workspaces should default to true")
	}
}

func TestNormalizeClamps(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
		check  func(*testing.T, *Settings)
	}{
		{
			"app spacing above range",
			func(s *Settings) { s.AppSpacing = 20 },
			func(t *testing.T, s *Settings) {
				if s.AppSpacing != MaxAppSpacing {
					t.Errorf("AppSpacing = %d, want %d", s.AppSpacing, MaxAppSpacing)
				}
			},
		},
		{
			"app spacing below range",
			func(s *Settings) { s.AppSpacing = -3 },
			func(t *testing.T, s *Settings) {
				if s.AppSpacing != MinAppSpacing {
					t.Errorf("AppSpacing = %d, want %d", s.AppSpacing, MinAppSpacing)
				}
			},
		},
		{
			"dock fixed size below -1",
			func(s *Settings) { s.DockFixedSize = -7 },
			func(t *testing.T, s *Settings) {
				if s.DockFixedSize != UnboundedDockSize {
					t.Errorf("DockFixedSize = %d, want %d", s.DockFixedSize, UnboundedDockSize)
				}
			},
		},
		{
			"negative popup delay",
			func(s *Settings) { s.PopupDelay = -50 },
			func(t *testing.T, s *Settings) {
				if s.PopupDelay != DefaultPopupDelayMS {
					t.Errorf("PopupDelay = %d, want %d", s.PopupDelay, DefaultPopupDelayMS)
				}
			},
		},
		{
			"unknown indicator type",
			func(s *Settings) { s.IndicatorType = 42 },
			func(t *testing.T, s *Settings) {
				if s.IndicatorType != int(IndicatorLight) {
					t.Errorf("IndicatorType = %d, want default", s.IndicatorType)
				}
			},
		},
		{
			"unknown attention type",
			func(s *Settings) { s.AttentionType = -1 },
			func(t *testing.T, s *Settings) {
				if s.AttentionType != int(AttentionBlink) {
					t.Errorf("AttentionType = %d, want default", s.AttentionType)
				}
			},
		},
		{
			"malformed fallback color",
			func(s *Settings) { s.FallbackBarCol = []string{"300", "x"} },
			func(t *testing.T, s *Settings) {
				if !reflect.DeepEqual(s.FallbackBarCol, []string{"128", "128", "128"}) {
					t.Errorf("FallbackBarCol = %v", s.FallbackBarCol)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(s)
			s.Normalize()
			tt.check(t, s)
		})
	}
}

func TestFallbackRGB(t *testing.T) {
	s := Default()
	s.FallbackBarCol = []string{"255", "0", "64"}
	s.Normalize()
	r, g, b := s.FallbackRGB()
	if r != 255 || g != 0 || b != 64 {
		t.Errorf("FallbackRGB = %d,%d,%d", r, g, b)
	}
}

func TestParseSavedConfigsSkipsMalformed(t *testing.T) {
	s := Default()
	s.SavedConfigs = []string{
		"Work,1,firefox.desktop,terminal.desktop",
		"broken-no-workspace",
		"Media,2,vlc.desktop",
		"",
	}

	configs := s.ParseSavedConfigs(log.New(io.Discard))
	if len(configs) != 2 {
		t.Fatalf("parsed %d configs, want 2 (malformed skipped, not fatal)", len(configs))
	}
	if configs[0].Name != "Work" || configs[1].Name != "Media" {
		t.Errorf("configs = %+v", configs)
	}
}

func TestEncodeSavedConfigsRoundTrip(t *testing.T) {
	entries := []string{
		"Work,1,firefox.desktop,terminal.desktop",
		"Media,2,vlc.desktop",
	}
	s := Default()
	s.SavedConfigs = entries

	configs := s.ParseSavedConfigs(nil)
	if got := EncodeSavedConfigs(configs); !reflect.DeepEqual(got, entries) {
		t.Errorf("round trip = %v, want %v", got, entries)
	}
}

func TestStrategySelection(t *testing.T) {
	s := Default()
	if _, ok := s.Strategy().(dock.GlobalStrategy); !ok {
		t.Errorf("default strategy = %T, want GlobalStrategy", s.Strategy())
	}

	s.PinnedAppsOnAllWorkspaces = false
	s.PinnedApps = []string{"files.desktop"}
	strategy, ok := s.Strategy().(dock.PerWorkspaceStrategy)
	if !ok {
		t.Fatalf("strategy = %T, want PerWorkspaceStrategy", s.Strategy())
	}
	if len(strategy.Default.Apps) != 1 || strategy.Default.Apps[0] != "files.desktop" {
		t.Errorf("per-workspace default = %+v", strategy.Default)
	}
}

func TestEngineConfigMapping(t *testing.T) {
	s := Default()
	s.MultiInd = true
	s.WinFromCurWorkspaceOnly = true
	s.AttentionType = int(AttentionStatic)
	s.PopupDelay = 250
	s.DockFixedSize = 12

	cfg := s.EngineConfig()
	if !cfg.MultiIndicator || !cfg.WindowsFromCurrentWorkspaceOnly {
		t.Error("flag mapping wrong")
	}
	if cfg.Attention != dock.AttentionOneShot {
		t.Errorf("attention policy = %v", cfg.Attention)
	}
	if cfg.PopupDelay != 250*time.Millisecond {
		t.Errorf("popup delay = %v", cfg.PopupDelay)
	}
	if cfg.DockFixedSize != 12 {
		t.Errorf("dock fixed size = %d", cfg.DockFixedSize)
	}
}

func TestOverridesApply(t *testing.T) {
	s := Default()
	Apply(Overrides{
		MultiInd:         true,
		PerWorkspacePins: true,
		DockFixedSize:    99,
		PopupDelay:       10,
	}, s)

	if !s.MultiInd {
		t.Error("multi-ind override not applied")
	}
	if s.PinnedAppsOnAllWorkspaces {
		t.Error("per-workspace-pins override not applied")
	}
	if s.DockFixedSize != 99 || s.PopupDelay != 10 {
		t.Errorf("numeric overrides: size=%d delay=%d", s.DockFixedSize, s.PopupDelay)
	}
}
