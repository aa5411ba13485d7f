package dock

import (
	"testing"
)

func TestRegistryOpenCloseTracking(t *testing.T) {
	r := NewWindowRegistry()

	r.OnWindowOpened("a", "1")
	r.OnWindowOpened("b", "1")
	r.OnWindowOpened("c", "2")
	if r.Len() != 3 {
		t.Fatalf("expected 3 tracked windows, got %d", r.Len())
	}

	r.OnWindowClosed("b")
	if r.Len() != 2 {
		t.Fatalf("expected 2 tracked windows after close, got %d", r.Len())
	}

	// Closing an unknown or already-closed handle is a no-op.
	r.OnWindowClosed("b")
	r.OnWindowClosed("never-existed")
	if r.Len() != 2 {
		t.Fatalf("idempotent close changed count: got %d", r.Len())
	}
}

func TestRegistryReopenAfterStaleClose(t *testing.T) {
	r := NewWindowRegistry()

	r.OnWindowOpened("a", "1")
	r.SetIdentity("a", "firefox.desktop")
	r.OnWindowClosed("a")

	// Re-open with the same handle must be a fresh entry.
	r.OnWindowOpened("a", "2")
	w := r.Window("a")
	if w == nil {
		t.Fatal("reopened window not tracked")
	}
	if w.Resolved || w.Identity != "" {
		t.Errorf("reopened window kept stale identity %q", w.Identity)
	}
	if w.Workspace != "2" {
		t.Errorf("reopened window workspace = %q, want %q", w.Workspace, "2")
	}
}

func TestRegistryPropertyChanges(t *testing.T) {
	r := NewWindowRegistry()
	r.OnWindowOpened("a", "1")

	urgent := true
	minimized := true
	ws := WorkspaceID("3")
	if !r.OnWindowPropertyChanged("a", PropertyChange{Urgent: &urgent, Minimized: &minimized, Workspace: &ws}) {
		t.Fatal("property change on tracked window reported unknown handle")
	}

	w := r.Window("a")
	if !w.Urgent || !w.Minimized || w.Workspace != "3" {
		t.Errorf("properties not applied: %+v", w)
	}

	// Unset fields stay untouched.
	urgent = false
	r.OnWindowPropertyChanged("a", PropertyChange{Urgent: &urgent})
	if w.Urgent {
		t.Error("urgent flag not cleared")
	}
	if !w.Minimized || w.Workspace != "3" {
		t.Error("unrelated properties were modified")
	}

	if r.OnWindowPropertyChanged("ghost", PropertyChange{Urgent: &urgent}) {
		t.Error("property change on unknown handle reported success")
	}
}

func TestRegistryIdentityImmutable(t *testing.T) {
	r := NewWindowRegistry()
	r.OnWindowOpened("a", "1")

	r.SetIdentity("a", "firefox.desktop")
	r.SetIdentity("a", "terminal.desktop")

	if got := r.Window("a").Identity; got != "firefox.desktop" {
		t.Errorf("identity changed after assignment: %q", got)
	}
}

func TestRegistryGroupingDeterministicOrder(t *testing.T) {
	r := NewWindowRegistry()

	// terminal opens first, then two firefox windows, then one more
	// terminal. Group order must follow first-seen, not map order.
	r.OnWindowOpened("t1", "1")
	r.SetIdentity("t1", "terminal.desktop")
	r.OnWindowOpened("f1", "1")
	r.SetIdentity("f1", "firefox.desktop")
	r.OnWindowOpened("f2", "2")
	r.SetIdentity("f2", "firefox.desktop")
	r.OnWindowOpened("t2", "1")
	r.SetIdentity("t2", "terminal.desktop")
	r.OnWindowOpened("u1", "1") // never resolved

	groups, unresolved := r.GroupedByIdentity(GroupFilter{})
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Identity != "terminal.desktop" || groups[1].Identity != "firefox.desktop" {
		t.Errorf("group order = [%s, %s], want first-seen order", groups[0].Identity, groups[1].Identity)
	}
	if len(groups[0].Windows) != 2 || groups[0].Windows[0].Handle != "t1" {
		t.Errorf("windows within group not in arrival order: %+v", groups[0].Windows)
	}
	if len(unresolved) != 1 || unresolved[0].Handle != "u1" {
		t.Errorf("unresolved = %+v, want [u1]", unresolved)
	}
}

func TestRegistryGroupingWorkspaceFilter(t *testing.T) {
	r := NewWindowRegistry()
	r.OnWindowOpened("f1", "1")
	r.SetIdentity("f1", "firefox.desktop")
	r.OnWindowOpened("f2", "2")
	r.SetIdentity("f2", "firefox.desktop")

	groups, _ := r.GroupedByIdentity(GroupFilter{Workspace: "2"})
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if len(groups[0].Windows) != 1 || groups[0].Windows[0].Handle != "f2" {
		t.Errorf("workspace filter returned wrong windows: %+v", groups[0].Windows)
	}
}
