// Package script replays scripted window and workspace event sequences
// through the dock engine. Scenarios drive demos and deterministic
// end-to-end tests without a window manager.
package script

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"

	"github.com/dockd/dockd/internal/dock"
	"github.com/dockd/dockd/internal/identity"
)

// Scenario is one scripted session: the desktop entries that exist, the
// starting workspace, and the ordered steps to play.
type Scenario struct {
	Name      string  `toml:"name"`
	Workspace string  `toml:"workspace"`
	Entries   []Entry `toml:"entries"`
	Steps     []Step  `toml:"steps"`
}

// Entry declares a desktop entry available to the resolver.
type Entry struct {
	ID    string `toml:"id"`
	Name  string `toml:"name"`
	Exec  string `toml:"exec"`
	Class string `toml:"class"`
}

// Step is one scripted operation.
type Step struct {
	// Op is one of: open, close, change, workspace, pin, unpin, move,
	// click, hover, leave.
	Op string `toml:"op"`

	Handle      string `toml:"handle"`
	Workspace   string `toml:"workspace"`
	Class       string `toml:"class"`
	DesktopFile string `toml:"desktop_file"`
	PID         int32  `toml:"pid"`
	App         string `toml:"app"`
	Index       int    `toml:"index"`

	Urgent    *bool `toml:"urgent"`
	Minimized *bool `toml:"minimized"`
	Active    *bool `toml:"active"`
}

// Load reads a scenario file.
func Load(path string) (*Scenario, error) {
	// #nosec G304 - scenario path is a CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	var sc Scenario
	if err := toml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	return &sc, nil
}

// Catalog builds the resolver catalog the scenario declares.
func (s *Scenario) Catalog() identity.Catalog {
	entries := make([]identity.Entry, 0, len(s.Entries))
	for _, e := range s.Entries {
		entries = append(entries, identity.Entry{
			ID:             dock.AppID(e.ID),
			Name:           e.Name,
			Exec:           e.Exec,
			StartupWMClass: e.Class,
		})
	}
	return identity.NewStaticCatalog(entries)
}

// Player feeds scenario steps into an engine and records the snapshot
// after every step.
type Player struct {
	engine    *dock.Engine
	snapshots []dock.Snapshot
}

// NewPlayer binds a player to an engine.
func NewPlayer(engine *dock.Engine) *Player {
	return &Player{engine: engine}
}

// Play runs every step in order. Unknown ops fail fast; scripted input
// is developer-authored, unlike persisted settings.
func (p *Player) Play(s *Scenario) error {
	if s.Workspace != "" {
		p.step(dock.Event{Type: dock.WorkspaceActivated, Workspace: dock.WorkspaceID(s.Workspace)})
	}
	for i, st := range s.Steps {
		if err := p.playStep(st); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, st.Op, err)
		}
	}
	return nil
}

func (p *Player) playStep(st Step) error {
	switch st.Op {
	case "open":
		h := st.Handle
		if h == "" {
			h = uuid.NewString()
		}
		p.step(dock.Event{Type: dock.WindowOpened, Info: dock.WindowInfo{
			Handle:      dock.Handle(h),
			Workspace:   dock.WorkspaceID(st.Workspace),
			Class:       st.Class,
			DesktopFile: st.DesktopFile,
			PID:         st.PID,
		}})
	case "close":
		p.step(dock.Event{Type: dock.WindowClosed, Handle: dock.Handle(st.Handle)})
	case "change":
		change := dock.PropertyChange{Urgent: st.Urgent, Minimized: st.Minimized, Active: st.Active}
		if st.Workspace != "" {
			ws := dock.WorkspaceID(st.Workspace)
			change.Workspace = &ws
		}
		p.step(dock.Event{Type: dock.WindowChanged, Handle: dock.Handle(st.Handle), Change: change})
	case "workspace":
		p.step(dock.Event{Type: dock.WorkspaceActivated, Workspace: dock.WorkspaceID(st.Workspace)})
	case "pin":
		p.engine.Pin(dock.AppID(st.App), st.Index)
		p.record()
	case "unpin":
		p.engine.Unpin(dock.AppID(st.App))
		p.record()
	case "move":
		p.engine.Move(dock.AppID(st.App), st.Index)
		p.record()
	case "click":
		p.engine.ClickSlot(dock.AppID(st.App))
		p.record()
	case "hover":
		p.engine.HoverSlot(dock.AppID(st.App), func(dock.AppID) {})
		p.record()
	case "leave":
		p.engine.LeaveSlot()
		p.record()
	default:
		return fmt.Errorf("unknown op %q", st.Op)
	}
	return nil
}

func (p *Player) step(ev dock.Event) {
	p.engine.HandleEvent(ev)
	p.record()
}

func (p *Player) record() {
	p.snapshots = append(p.snapshots, p.engine.Snapshot())
}

// Snapshots returns the snapshot recorded after each step.
func (p *Player) Snapshots() []dock.Snapshot {
	return p.snapshots
}

// Final returns the snapshot after the last step.
func (p *Player) Final() dock.Snapshot {
	if len(p.snapshots) == 0 {
		return dock.Snapshot{}
	}
	return p.snapshots[len(p.snapshots)-1]
}
