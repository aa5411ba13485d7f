package main

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"

	"github.com/dockd/dockd/internal/dock"
	"github.com/dockd/dockd/internal/script"
	"github.com/dockd/dockd/internal/settings"
	"github.com/dockd/dockd/internal/tui"
	"github.com/dockd/dockd/pkg/dockd"
)

func newLogger() *log.Logger {
	logger := log.New(os.Stderr)
	if debugMode {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}

func loadSettings(logger *log.Logger) *settings.Settings {
	s, err := settings.Load()
	if err != nil {
		logger.Warn("failed to load settings, using defaults", "err", err)
		s = settings.Default()
	}
	settings.Apply(settings.Overrides{
		MultiInd:             multiInd,
		AllWorkspaces:        allWorkspaces,
		CurrentWorkspaceOnly: currentWorkspaceOnly,
		PerWorkspacePins:     perWorkspacePins,
		DockFixedSize:        dockFixedSize,
		PopupDelay:           popupDelay,
	}, s)
	return s
}

func runInspector() error {
	logger := newLogger()
	s := loadSettings(logger)

	engine, err := dockd.New(
		dockd.WithSettings(s),
		dockd.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("failed to build engine: %w", err)
	}

	p := tea.NewProgram(tui.New(engine, s))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}

func runScenario(path string) error {
	logger := newLogger()
	s := loadSettings(logger)

	sc, err := script.Load(path)
	if err != nil {
		return err
	}

	engine, err := dockd.New(
		dockd.WithSettings(s),
		dockd.WithCatalog(sc.Catalog()),
		dockd.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("failed to build engine: %w", err)
	}

	player := script.NewPlayer(engine)
	if err := player.Play(sc); err != nil {
		return err
	}

	for i, snap := range player.Snapshots() {
		fmt.Printf("step %d:\n", i+1)
		printSnapshot(snap)
	}
	return nil
}

func printSnapshot(snap dock.Snapshot) {
	if len(snap.Slots) == 0 {
		fmt.Println("  (empty dock)")
		return
	}
	for _, slot := range snap.Slots {
		name := string(slot.Identity)
		if slot.Anonymous {
			name = "(unresolved)"
		}
		pin := " "
		if slot.Pinned {
			pin = "*"
		}
		fmt.Printf("  %s %-30s %-13s windows=%d indicators=%d\n",
			pin, name, slot.Indicator, slot.WindowCount, slot.IndicatorCount)
	}
	if snap.Overflow > 0 {
		fmt.Printf("  overflow=%d\n", snap.Overflow)
	}
}

func showSettings() error {
	logger := newLogger()
	s := loadSettings(logger)
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	fmt.Print(string(data))
	return nil
}
