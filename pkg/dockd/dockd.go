// Package dockd provides a reusable dock-applet engine that panel hosts
// can embed. It reconciles live windows against pinned application
// slots, tracks per-slot indicator state, and swaps pinned
// configurations as workspaces change.
//
// # Basic Usage
//
// Create an engine with persisted settings and feed it window-manager
// events:
//
//	engine, err := dockd.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	engine.Subscribe(func(snap dockd.Snapshot) {
//		// hand the ordered slot list to the renderer
//	})
//	engine.HandleEvent(dockd.Event{
//		Type: dockd.WindowOpened,
//		Info: dockd.WindowInfo{Handle: "0x2a", Workspace: "1", Class: "firefox"},
//	})
//
// Hosts whose window-manager callbacks arrive on other goroutines
// funnel them through Dispatch and drive the engine with Run:
//
//	go engine.Run(ctx)
//	engine.Dispatch(ev)
package dockd

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/dockd/dockd/internal/dock"
	"github.com/dockd/dockd/internal/identity"
	"github.com/dockd/dockd/internal/settings"
)

// Re-exported core types so hosts never import internal packages.
type (
	// Engine is the dock's reconciliation engine.
	Engine = dock.Engine
	// Event is the universal window/workspace event packet.
	Event = dock.Event
	// WindowInfo is the metadata supplied with a new window.
	WindowInfo = dock.WindowInfo
	// PropertyChange carries optional window property updates.
	PropertyChange = dock.PropertyChange
	// Snapshot is the reconciled, ordered dock slot list.
	Snapshot = dock.Snapshot
	// Slot is one dock slot.
	Slot = dock.Slot
	// Handle identifies an OS window.
	Handle = dock.Handle
	// WorkspaceID identifies a workspace.
	WorkspaceID = dock.WorkspaceID
	// AppID is a stable application identity.
	AppID = dock.AppID
	// SavedConfig is a named workspace-scoped pinned set.
	SavedConfig = dock.SavedConfig
	// WindowController receives the engine's user-action commands.
	WindowController = dock.WindowController
	// Settings is the persisted configuration surface.
	Settings = settings.Settings
)

// Event type constants.
const (
	WindowOpened       = dock.WindowOpened
	WindowClosed       = dock.WindowClosed
	WindowChanged      = dock.WindowChanged
	WorkspaceActivated = dock.WorkspaceActivated
)

// Indicator states.
const (
	IndicatorEmpty        = dock.IndicatorEmpty
	IndicatorRunning      = dock.IndicatorRunning
	IndicatorRunningMulti = dock.IndicatorRunningMulti
	IndicatorAttention    = dock.IndicatorAttention
)

// Options configures an engine instance.
type Options struct {
	// Settings provides the configuration surface. When nil the
	// persisted settings file is loaded (or created with defaults).
	Settings *settings.Settings

	// Controller receives activate/minimize/launch commands. When nil
	// user actions only mutate engine state.
	Controller dock.WindowController

	// Catalog indexes desktop entries for identity resolution. When
	// nil the XDG application directories are scanned.
	Catalog identity.Catalog

	// ProcessNamer backs the executable-name heuristic. When nil,
	// gopsutil is used.
	ProcessNamer identity.ProcessNamer

	// Logger for non-fatal warnings. When nil logging is discarded.
	Logger *log.Logger
}

// Option is a functional option for configuring the engine.
type Option func(*Options)

// WithSettings supplies an explicit settings value instead of loading
// the persisted file.
func WithSettings(s *settings.Settings) Option {
	return func(o *Options) { o.Settings = s }
}

// WithController sets the window-manager command sink.
func WithController(c dock.WindowController) Option {
	return func(o *Options) { o.Controller = c }
}

// WithCatalog sets the desktop-entry catalog.
func WithCatalog(c identity.Catalog) Option {
	return func(o *Options) { o.Catalog = c }
}

// WithProcessNamer sets the PID-to-executable lookup.
func WithProcessNamer(p identity.ProcessNamer) Option {
	return func(o *Options) { o.ProcessNamer = p }
}

// WithLogger sets the engine logger.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// New creates a dock engine. This is the main entry point for embedding
// the dock core in a panel host.
func New(opts ...Option) (*Engine, error) {
	var options Options
	for _, opt := range opts {
		opt(&options)
	}

	logger := options.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := options.Settings
	if s == nil {
		loaded, err := settings.Load()
		if err != nil {
			return nil, err
		}
		s = loaded
	}
	s.Normalize()

	catalog := options.Catalog
	if catalog == nil {
		catalog = identity.ScanCatalog()
	}
	namer := options.ProcessNamer
	if namer == nil {
		namer = identity.GopsutilNamer{}
	}
	resolver := identity.New(catalog, namer, logger)

	store := dock.NewPinnedConfigStore(s.Pinned(), s.ParseSavedConfigs(logger))
	engine := dock.NewEngine(store, s.Strategy(), resolver, options.Controller, s.EngineConfig(), logger)
	return engine, nil
}
