// Package tui provides an interactive inspector for the dock engine.
// It renders the live slot list and drives simulated window-manager
// events from the keyboard, so engine behavior can be explored without
// a panel host.
package tui

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dockd/dockd/internal/dock"
	"github.com/dockd/dockd/internal/settings"
)

// Apps the simulator can "launch". Fixed so keyboard-driven sessions
// stay predictable.
var simApps = []struct {
	ID    dock.AppID
	Class string
}{
	{"firefox.desktop", "firefox"},
	{"terminal.desktop", "terminal"},
	{"files.desktop", "files"},
	{"editor.desktop", "editor"},
}

// Model is the inspector's bubbletea model.
type Model struct {
	engine   *dock.Engine
	settings *settings.Settings

	snapshot dock.Snapshot
	selected int
	nextWin  int
	nextApp  int
	width    int
	height   int
	status   string
}

// New builds an inspector around an engine.
func New(engine *dock.Engine, s *settings.Settings) *Model {
	m := &Model{engine: engine, settings: s}
	m.snapshot = engine.Snapshot()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "left", "h":
		if m.selected > 0 {
			m.selected--
		}
	case "right", "l":
		if m.selected < len(m.snapshot.Slots)-1 {
			m.selected++
		}
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.dispatch(dock.Event{Type: dock.WorkspaceActivated, Workspace: dock.WorkspaceID(msg.String())})
		m.status = "workspace " + msg.String()
	case "o":
		app := simApps[m.nextApp%len(simApps)]
		m.nextApp++
		m.nextWin++
		h := dock.Handle(fmt.Sprintf("sim-%d", m.nextWin))
		ws := m.engine.Switcher().ActiveWorkspace()
		if ws == "" {
			ws = "1"
		}
		m.dispatch(dock.Event{Type: dock.WindowOpened, Info: dock.WindowInfo{
			Handle: h, Workspace: ws, Class: app.Class,
		}})
		m.status = fmt.Sprintf("opened %s (%s)", h, app.ID)
	case "c":
		if h, ok := m.selectedWindow(); ok {
			m.dispatch(dock.Event{Type: dock.WindowClosed, Handle: h})
			m.status = fmt.Sprintf("closed %s", h)
		}
	case "u":
		if h, ok := m.selectedWindow(); ok {
			urgent := true
			if w := m.engine.Registry().Window(h); w != nil {
				urgent = !w.Urgent
			}
			m.dispatch(dock.Event{Type: dock.WindowChanged, Handle: h, Change: dock.PropertyChange{Urgent: &urgent}})
			m.status = fmt.Sprintf("urgent=%v on %s", urgent, h)
		}
	case "a":
		if h, ok := m.selectedWindow(); ok {
			active := true
			m.dispatch(dock.Event{Type: dock.WindowChanged, Handle: h, Change: dock.PropertyChange{Active: &active}})
			m.status = fmt.Sprintf("activated %s", h)
		}
	case "p":
		if slot, ok := m.selectedSlot(); ok && slot.Identity != "" {
			if slot.Pinned {
				m.engine.Unpin(slot.Identity)
				m.status = fmt.Sprintf("unpinned %s", slot.Identity)
			} else {
				m.engine.Pin(slot.Identity, -1)
				m.status = fmt.Sprintf("pinned %s", slot.Identity)
			}
			m.refresh()
		}
	case "enter", " ":
		if slot, ok := m.selectedSlot(); ok && slot.Identity != "" {
			m.engine.ClickSlot(slot.Identity)
			m.refresh()
			m.status = fmt.Sprintf("clicked %s", slot.Identity)
		}
	}
	return m, nil
}

func (m *Model) dispatch(ev dock.Event) {
	m.engine.HandleEvent(ev)
	m.refresh()
}

func (m *Model) refresh() {
	m.snapshot = m.engine.Snapshot()
	if m.selected >= len(m.snapshot.Slots) {
		m.selected = len(m.snapshot.Slots) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m *Model) selectedSlot() (dock.Slot, bool) {
	if m.selected < 0 || m.selected >= len(m.snapshot.Slots) {
		return dock.Slot{}, false
	}
	return m.snapshot.Slots[m.selected], true
}

func (m *Model) selectedWindow() (dock.Handle, bool) {
	slot, ok := m.selectedSlot()
	if !ok || len(slot.Windows) == 0 {
		return "", false
	}
	return slot.Windows[len(slot.Windows)-1], true
}

// View implements tea.Model.
func (m *Model) View() tea.View {
	var view tea.View
	view.SetContent(m.render())
	view.AltScreen = true
	return view
}

func (m *Model) render() string {
	r, g, b := m.settings.FallbackRGB()
	accent := lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))

	header := lipgloss.NewStyle().Bold(true).Render(
		fmt.Sprintf("dockd inspector  workspace=%s  slots=%d  overflow=%d",
			orDefault(string(m.engine.Switcher().ActiveWorkspace()), "-"),
			len(m.snapshot.Slots), m.snapshot.Overflow))

	boxes := make([]string, 0, len(m.snapshot.Slots))
	for i, slot := range m.snapshot.Slots {
		boxes = append(boxes, m.renderSlot(slot, i == m.selected, accent))
	}
	row := "(no slots - press o to open a window)"
	if len(boxes) > 0 {
		row = lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
	}

	help := lipgloss.NewStyle().Faint(true).Render(
		"o open  c close  u urgent  a activate  p pin  enter click  1-9 workspace  h/l select  q quit")

	parts := []string{header, "", row, ""}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	parts = append(parts, help)
	return strings.Join(parts, "\n")
}

func (m *Model) renderSlot(slot dock.Slot, selected bool, accent color.Color) string {
	name := string(slot.Identity)
	if slot.Anonymous {
		name = "(unresolved)"
	}
	name = strings.TrimSuffix(name, ".desktop")

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		MarginRight(m.settings.AppSpacing)
	if selected {
		style = style.BorderForeground(accent)
	}

	var ind string
	switch slot.Indicator {
	case dock.IndicatorEmpty:
		ind = "·"
	case dock.IndicatorAttention:
		ind = "!!"
	default:
		ind = strings.Repeat("●", slot.IndicatorCount)
	}
	if slot.WindowCount > slot.IndicatorCount {
		ind += fmt.Sprintf(" +%d", slot.WindowCount-slot.IndicatorCount)
	}

	pin := " "
	if slot.Pinned {
		pin = "*"
	}
	return style.Render(fmt.Sprintf("%s%s\n%s", pin, name, ind))
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
