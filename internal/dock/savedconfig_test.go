package dock

import (
	"testing"
)

func TestSavedConfigRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{"typical", "Work,1,firefox.desktop,terminal.desktop"},
		{"no apps", "Empty,2"},
		{"single app", "Media,3,vlc.desktop"},
		{"trailing empty fields", "Work,1,firefox.desktop,,"},
		{"spaces in name", "My Setup,4,files.desktop"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseSavedConfig(tt.csv)
			if err != nil {
				t.Fatalf("ParseSavedConfig(%q) error: %v", tt.csv, err)
			}
			if got := cfg.Serialize(); got != tt.csv {
				t.Errorf("round trip = %q, want %q", got, tt.csv)
			}
		})
	}
}

func TestSavedConfigParse(t *testing.T) {
	cfg, err := ParseSavedConfig("Work,1,firefox.desktop,terminal.desktop")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Name != "Work" {
		t.Errorf("Name = %q", cfg.Name)
	}
	if cfg.Workspace != "1" {
		t.Errorf("Workspace = %q", cfg.Workspace)
	}
	want := []AppID{"firefox.desktop", "terminal.desktop"}
	got := cfg.PinnedApps()
	if len(got) != len(want) {
		t.Fatalf("PinnedApps = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("PinnedApps[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSavedConfigParseMalformed(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{"empty string", ""},
		{"missing workspace", "OnlyName"},
		{"empty name", ",1,firefox.desktop"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseSavedConfig(tt.csv); err == nil {
				t.Errorf("ParseSavedConfig(%q) succeeded, want error", tt.csv)
			}
		})
	}
}

func TestSavedConfigParseLegacyQuoted(t *testing.T) {
	cfg, err := ParseSavedConfig(`"Work,1,firefox.desktop"`)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Name != "Work" || cfg.Workspace != "1" {
		t.Errorf("quoted entry parsed as %+v", cfg)
	}
	// Quotes are legacy decoration, not part of the format.
	if got := cfg.Serialize(); got != "Work,1,firefox.desktop" {
		t.Errorf("Serialize = %q", got)
	}
}

func TestSavedConfigPinnedAppsSkipsEmpty(t *testing.T) {
	cfg, err := ParseSavedConfig("Work,1,firefox.desktop,,terminal.desktop,")
	if err != nil {
		t.Fatal(err)
	}
	got := cfg.PinnedApps()
	if len(got) != 2 || got[0] != "firefox.desktop" || got[1] != "terminal.desktop" {
		t.Errorf("PinnedApps = %v", got)
	}
}
