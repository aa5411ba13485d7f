package identity

import (
	"errors"
	"testing"

	"github.com/dockd/dockd/internal/dock"
)

type fakeNamer struct {
	names map[int32]string
	calls int
}

func (f *fakeNamer) Name(pid int32) (string, error) {
	f.calls++
	if name, ok := f.names[pid]; ok {
		return name, nil
	}
	return "", errors.New("no such process")
}

func testResolver(procs ProcessNamer) *Resolver {
	catalog := NewStaticCatalog([]Entry{
		{ID: "firefox.desktop", Exec: "firefox-bin", StartupWMClass: "navigator"},
		{ID: "terminal.desktop", Exec: "mate-terminal"},
	})
	return New(catalog, procs, nil)
}

func TestResolveOrder(t *testing.T) {
	namer := &fakeNamer{names: map[int32]string{42: "mate-terminal"}}
	r := testResolver(namer)

	tests := []struct {
		name string
		info dock.WindowInfo
		want dock.AppID
		ok   bool
	}{
		{
			"desktop file wins over everything",
			dock.WindowInfo{Handle: "w1", DesktopFile: "/usr/share/applications/vlc.desktop", Class: "Navigator"},
			"vlc.desktop", true,
		},
		{
			"wm class via catalog",
			dock.WindowInfo{Handle: "w2", Class: "Navigator"},
			"firefox.desktop", true,
		},
		{
			"executable heuristic",
			dock.WindowInfo{Handle: "w3", Class: "SomeUnknownClass", PID: 42},
			"terminal.desktop", true,
		},
		{
			"synthesized identity from class",
			dock.WindowInfo{Handle: "w4", Class: "MyCustomTool"},
			"wmclass://mycustomtool", true,
		},
		{
			"no metadata stays unresolved",
			dock.WindowInfo{Handle: "w5"},
			"", false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := r.Resolve(tt.info)
			if ok != tt.ok || id != tt.want {
				t.Errorf("Resolve = %q %v, want %q %v", id, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestResolveSynthesizedGroupsSameClass(t *testing.T) {
	r := testResolver(nil)

	a, _ := r.Resolve(dock.WindowInfo{Handle: "w1", Class: "MyTool"})
	b, _ := r.Resolve(dock.WindowInfo{Handle: "w2", Class: "mytool"})
	if a != b {
		t.Errorf("same class resolved to different identities: %q vs %q", a, b)
	}
	if !a.Anonymous() {
		t.Errorf("synthesized identity %q not marked anonymous", a)
	}
}

func TestResolveCachesPerHandle(t *testing.T) {
	namer := &fakeNamer{names: map[int32]string{42: "mate-terminal"}}
	r := testResolver(namer)

	info := dock.WindowInfo{Handle: "w1", Class: "unknown-class-xyz", PID: 42}
	r.Resolve(info)
	r.Resolve(info)
	if namer.calls != 1 {
		t.Errorf("process lookups = %d, want 1 (second resolve cached)", namer.calls)
	}

	r.Forget("w1")
	r.Resolve(info)
	if namer.calls != 2 {
		t.Errorf("process lookups after Forget = %d, want 2", namer.calls)
	}
}

func TestEngineHandleReuseResolvesFresh(t *testing.T) {
	// X11 window managers recycle handles. The engine must drop the
	// cached resolution when a handle dies so its next occupant does not
	// inherit the previous application's identity.
	r := testResolver(nil)
	store := dock.NewPinnedConfigStore(nil, nil)
	e := dock.NewEngine(store, dock.GlobalStrategy{}, r, nil, dock.Config{
		AppsFromAllWorkspaces: true,
		DockFixedSize:         -1,
	}, nil)

	open := func(class string) {
		e.HandleEvent(dock.Event{Type: dock.WindowOpened, Info: dock.WindowInfo{
			Handle: "0x2a", Workspace: "1", Class: class,
		}})
	}
	identityOf := func() dock.AppID {
		t.Helper()
		w := e.Registry().Window("0x2a")
		if w == nil || !w.Resolved {
			t.Fatalf("window not tracked or unresolved: %+v", w)
		}
		return w.Identity
	}

	t.Run("reuse after close", func(t *testing.T) {
		open("Navigator")
		if got := identityOf(); got != "firefox.desktop" {
			t.Fatalf("identity = %s, want firefox.desktop", got)
		}

		e.HandleEvent(dock.Event{Type: dock.WindowClosed, Handle: "0x2a"})

		open("terminal")
		if got := identityOf(); got != "terminal.desktop" {
			t.Errorf("recycled handle identity = %s, want terminal.desktop", got)
		}
	})

	t.Run("reuse after missed close", func(t *testing.T) {
		open("Navigator")
		if got := identityOf(); got != "firefox.desktop" {
			t.Fatalf("identity = %s, want firefox.desktop", got)
		}

		// No close event: the registry replaces the entry as fresh and
		// the resolver must follow suit.
		open("terminal")
		if got := identityOf(); got != "terminal.desktop" {
			t.Errorf("reopened handle identity = %s, want terminal.desktop", got)
		}
	})
}

func TestResolveProcessErrorFallsThrough(t *testing.T) {
	r := testResolver(&fakeNamer{})

	id, ok := r.Resolve(dock.WindowInfo{Handle: "w1", Class: "Ghost", PID: 7})
	if !ok || id != "wmclass://ghost" {
		t.Errorf("Resolve = %q %v, want synthesized fallback", id, ok)
	}
}

func TestResolveUnresolvedNotCached(t *testing.T) {
	r := testResolver(nil)

	info := dock.WindowInfo{Handle: "w1"}
	if _, ok := r.Resolve(info); ok {
		t.Fatal("resolved window with no metadata")
	}

	// Metadata arriving later must not be shadowed by a cached miss.
	info.Class = "Navigator"
	id, ok := r.Resolve(info)
	if !ok || id != "firefox.desktop" {
		t.Errorf("Resolve after metadata arrived = %q %v", id, ok)
	}
}
