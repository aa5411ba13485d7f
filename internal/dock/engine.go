package dock

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Config carries the runtime behavior knobs the engine needs from the
// settings layer. The settings package derives it from the persisted
// key/value surface.
type Config struct {
	AppsFromAllWorkspaces           bool
	WindowsFromCurrentWorkspaceOnly bool
	MultiIndicator                  bool
	DockFixedSize                   int
	ClickRestoreLastActive          bool
	Attention                       AttentionPolicy
	PopupDelay                      time.Duration
}

// Engine is the orchestrator: it feeds window-manager events through the
// registry and resolver, lets the switcher react to workspace changes,
// and recomputes the dock snapshot after every mutation.
//
// The engine is single-threaded by contract. Hosts whose window-manager
// callbacks arrive on other goroutines must deliver them via Dispatch
// and drive the engine with Run, which consumes the queue serially.
type Engine struct {
	registry   *WindowRegistry
	store      *PinnedConfigStore
	switcher   *WorkspaceConfigSwitcher
	reconciler *Reconciler
	resolver   IdentityResolver
	controller WindowController
	popup      *PopupTimer
	logger     *log.Logger

	cfg        Config
	lastActive map[AppID]Handle
	subs       []func(Snapshot)
	queue      chan Event
}

// NewEngine wires the core components together. strategy selects global
// vs per-workspace configuration mode; resolver and controller may be
// nil, in which case windows stay unresolved and user actions only
// mutate local state.
func NewEngine(store *PinnedConfigStore, strategy ConfigStrategy, resolver IdentityResolver, controller WindowController, cfg Config, logger *log.Logger) *Engine {
	if controller == nil {
		controller = NopController{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	registry := NewWindowRegistry()
	e := &Engine{
		registry:   registry,
		store:      store,
		switcher:   NewWorkspaceConfigSwitcher(store, strategy),
		reconciler: NewReconciler(registry, store),
		resolver:   resolver,
		controller: controller,
		popup:      NewPopupTimer(cfg.PopupDelay),
		logger:     logger,
		cfg:        cfg,
		lastActive: make(map[AppID]Handle),
		queue:      make(chan Event, 64),
	}
	return e
}

// Registry exposes the window registry for queries.
func (e *Engine) Registry() *WindowRegistry { return e.registry }

// Store exposes the pinned configuration store for queries.
func (e *Engine) Store() *PinnedConfigStore { return e.store }

// Switcher exposes the workspace configuration switcher.
func (e *Engine) Switcher() *WorkspaceConfigSwitcher { return e.switcher }

// Config returns the engine's current behavior configuration.
func (e *Engine) Config() Config { return e.cfg }

// SetConfig replaces the behavior configuration and the strategy, then
// recomputes. Called when persisted settings change at runtime.
func (e *Engine) SetConfig(cfg Config, strategy ConfigStrategy) {
	e.cfg = cfg
	e.popup.SetDelay(cfg.PopupDelay)
	if strategy != nil {
		e.switcher.SetStrategy(strategy)
	}
	e.publish()
}

// Subscribe registers a snapshot consumer. Subscribers run synchronously
// on the engine's event flow, in registration order.
func (e *Engine) Subscribe(fn func(Snapshot)) {
	e.subs = append(e.subs, fn)
}

// Snapshot recomputes the current dock state without side effects.
func (e *Engine) Snapshot() Snapshot {
	return e.reconciler.Recompute(e.switcher.ActiveWorkspace(), ReconcileOptions{
		AppsFromAllWorkspaces:           e.cfg.AppsFromAllWorkspaces,
		WindowsFromCurrentWorkspaceOnly: e.cfg.WindowsFromCurrentWorkspaceOnly,
		MultiIndicator:                  e.cfg.MultiIndicator,
		DockFixedSize:                   e.cfg.DockFixedSize,
	})
}

// Dispatch enqueues an event for Run. It is the only engine method safe
// to call from another goroutine.
func (e *Engine) Dispatch(ev Event) {
	e.queue <- ev
}

// Run consumes the event queue until the context is canceled. All
// processing happens on this goroutine, preserving the serialized-event
// invariant for hosts with threaded window-manager callbacks.
func (e *Engine) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-e.queue:
			e.HandleEvent(ev)
		}
	}
}

// HandleEvent processes one event synchronously and to completion, then
// publishes the recomputed snapshot.
func (e *Engine) HandleEvent(ev Event) {
	switch ev.Type {
	case WindowOpened:
		e.handleOpened(ev.Info)
	case WindowClosed:
		e.registry.OnWindowClosed(ev.Handle)
		e.forgetResolved(ev.Handle)
	case WindowChanged:
		e.handleChanged(ev.Handle, ev.Change)
	case WorkspaceActivated:
		e.switcher.OnWorkspaceActivated(ev.Workspace)
	default:
		e.logger.Warn("dropping unknown event", "type", int(ev.Type))
		return
	}
	e.publish()
}

func (e *Engine) handleOpened(info WindowInfo) {
	if e.registry.Window(info.Handle) != nil {
		// Re-open after a missed close: the registry treats the entry as
		// fresh, so any cached identity for the handle is stale too.
		e.forgetResolved(info.Handle)
	}
	e.registry.OnWindowOpened(info.Handle, info.Workspace)
	if e.resolver == nil {
		return
	}
	if id, ok := e.resolver.Resolve(info); ok {
		e.registry.SetIdentity(info.Handle, id)
	} else {
		e.logger.Debug("window identity unresolved", "handle", string(info.Handle), "class", info.Class)
	}
}

func (e *Engine) handleChanged(h Handle, change PropertyChange) {
	if !e.registry.OnWindowPropertyChanged(h, change) {
		return
	}
	if change.Active == nil || !*change.Active {
		return
	}
	w := e.registry.Window(h)
	if w == nil || !w.Resolved {
		return
	}
	e.lastActive[w.Identity] = h
	e.clearAttention(w)
}

// forgetResolved drops any cached resolution for a dead or recycled
// handle.
func (e *Engine) forgetResolved(h Handle) {
	if f, ok := e.resolver.(HandleForgetter); ok {
		f.Forget(h)
	}
}

// clearAttention applies the attention-type policy when a window of a
// slot is activated.
func (e *Engine) clearAttention(activated *Window) {
	switch e.cfg.Attention {
	case AttentionOneShot:
		groups, _ := e.registry.GroupedByIdentity(GroupFilter{})
		for _, g := range groups {
			if g.Identity != activated.Identity {
				continue
			}
			for _, w := range g.Windows {
				w.Urgent = false
			}
		}
	default: // AttentionUntilFocused
		activated.Urgent = false
	}
}

// Pin adds the identity to the active configuration at the given index
// (negative appends) and recomputes. Duplicate pins are a no-op.
func (e *Engine) Pin(id AppID, at int) {
	if e.store.Pin(id, at) {
		e.publish()
	}
}

// Unpin removes the identity from the active configuration.
func (e *Engine) Unpin(id AppID) {
	if e.store.Unpin(id) {
		e.publish()
	}
}

// Move reorders a pinned identity to the given slot index.
func (e *Engine) Move(id AppID, to int) {
	if e.store.Reorder(id, to) {
		e.publish()
	}
}

// ClickSlot performs the dock's primary click action for a slot.
//
// Behavior follows the applet's classic rules: with no windows the app
// is launched; when every window is minimized, or the app is not the
// active one, its windows are restored (last-active only, or all of
// them, per click-restore-last-active); otherwise the app is active and
// all of its windows are minimized, last-active window last.
func (e *Engine) ClickSlot(id AppID) {
	windows := e.slotWindows(id)
	if len(windows) == 0 {
		if err := e.controller.Launch(id); err != nil {
			e.logger.Warn("launch failed", "app", string(id), "err", err)
		}
		return
	}

	anyActive := false
	allMinimized := true
	for _, w := range windows {
		if w.Active {
			anyActive = true
		}
		if !w.Minimized {
			allMinimized = false
		}
	}

	last := e.lastActiveWindow(id, windows)
	if allMinimized || !anyActive {
		e.restoreWindows(windows, last)
	} else {
		e.minimizeWindows(windows, last)
	}
}

func (e *Engine) restoreWindows(windows []*Window, last *Window) {
	if !e.cfg.ClickRestoreLastActive {
		for _, w := range windows {
			if w != last {
				e.controller.Activate(w.Handle)
			}
		}
	}
	if last != nil {
		// Follow the window to its workspace before activating.
		if ws := e.switcher.ActiveWorkspace(); last.Workspace != "" && last.Workspace != ws {
			e.controller.ActivateWorkspace(last.Workspace)
		}
		e.controller.Activate(last.Handle)
	}
}

func (e *Engine) minimizeWindows(windows []*Window, last *Window) {
	for _, w := range windows {
		if w != last {
			e.controller.Minimize(w.Handle)
		}
	}
	if last != nil {
		e.controller.Minimize(last.Handle)
	}
}

// lastActiveWindow returns the slot's last activated window, falling
// back to its first window when the remembered one is gone.
func (e *Engine) lastActiveWindow(id AppID, windows []*Window) *Window {
	if h, ok := e.lastActive[id]; ok {
		for _, w := range windows {
			if w.Handle == h {
				return w
			}
		}
		delete(e.lastActive, id)
	}
	if len(windows) > 0 {
		return windows[0]
	}
	return nil
}

// ActivateWindow focuses one specific window (window-list selection),
// switching workspace when needed.
func (e *Engine) ActivateWindow(h Handle) {
	w := e.registry.Window(h)
	if w == nil {
		return
	}
	if ws := e.switcher.ActiveWorkspace(); w.Workspace != "" && w.Workspace != ws {
		e.controller.ActivateWorkspace(w.Workspace)
	}
	e.controller.Activate(h)
}

// HoverSlot schedules the hover popup for a slot after the configured
// popup delay. fire runs on a timer goroutine when the delay elapses.
func (e *Engine) HoverSlot(id AppID, fire func(AppID)) {
	e.popup.Schedule(id, fire)
}

// LeaveSlot cancels any pending hover popup with no side effect.
func (e *Engine) LeaveSlot() {
	e.popup.Cancel()
}

func (e *Engine) slotWindows(id AppID) []*Window {
	groups, _ := e.registry.GroupedByIdentity(GroupFilter{})
	for _, g := range groups {
		if g.Identity != id {
			continue
		}
		if !e.cfg.WindowsFromCurrentWorkspaceOnly {
			return g.Windows
		}
		var out []*Window
		ws := e.switcher.ActiveWorkspace()
		for _, w := range g.Windows {
			if w.Workspace == ws {
				out = append(out, w)
			}
		}
		return out
	}
	return nil
}

func (e *Engine) publish() {
	if len(e.subs) == 0 {
		return
	}
	snap := e.Snapshot()
	for _, fn := range e.subs {
		fn(snap)
	}
}
