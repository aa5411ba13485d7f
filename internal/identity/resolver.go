package identity

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dockd/dockd/internal/dock"
)

// cacheSize bounds the per-handle resolution cache. Window handles are
// short-lived; 512 comfortably covers any realistic desktop session.
const cacheSize = 512

// ProcessNamer reports the executable name of a process. The gopsutil
// implementation lives in process.go; tests substitute a fake.
type ProcessNamer interface {
	Name(pid int32) (string, error)
}

// Resolver implements dock.IdentityResolver.
//
// Resolution order: direct desktop-file metadata from the window
// manager, then catalog matching by class and by executable name, then
// a synthesized identity derived from the window class. A window with
// no metadata at all stays unresolved and the dock shows it as an
// anonymous slot.
type Resolver struct {
	catalog Catalog
	procs   ProcessNamer
	cache   *lru.Cache[dock.Handle, dock.AppID]
	logger  *log.Logger
}

// New builds a resolver. procs may be nil to skip the executable
// heuristic (e.g. when PIDs are not available from the window manager).
func New(catalog Catalog, procs ProcessNamer, logger *log.Logger) *Resolver {
	// lru.New only fails for non-positive sizes.
	cache, _ := lru.New[dock.Handle, dock.AppID](cacheSize)
	return &Resolver{catalog: catalog, procs: procs, cache: cache, logger: logger}
}

// Resolve implements dock.IdentityResolver. Results are cached per
// window handle; the engine drops the cached value via Forget when the
// window closes or its handle is recycled.
func (r *Resolver) Resolve(info dock.WindowInfo) (dock.AppID, bool) {
	if id, ok := r.cache.Get(info.Handle); ok {
		return id, true
	}

	id, ok := r.resolve(info)
	if ok {
		r.cache.Add(info.Handle, id)
	}
	return id, ok
}

func (r *Resolver) resolve(info dock.WindowInfo) (dock.AppID, bool) {
	// 1. Direct metadata supplied by the window manager.
	if info.DesktopFile != "" {
		return dock.AppID(filepath.Base(info.DesktopFile)), true
	}

	// 2. Catalog heuristics: window class, then process executable.
	if entry, ok := r.catalog.MatchClass(info.Class); ok {
		return entry.ID, true
	}
	if r.procs != nil && info.PID > 0 {
		name, err := r.procs.Name(info.PID)
		if err != nil {
			if r.logger != nil {
				r.logger.Debug("process name lookup failed", "pid", info.PID, "err", err)
			}
		} else if entry, ok := r.catalog.MatchExec(name); ok {
			return entry.ID, true
		}
	}

	// 3. Synthesized identity from the class string. Windows of the
	// same class still group together even without a desktop entry.
	if class := strings.ToLower(strings.TrimSpace(info.Class)); class != "" {
		return dock.AppID("wmclass://" + class), true
	}

	return "", false
}

// Forget drops the cached identity for a handle. It implements
// dock.HandleForgetter: the engine calls it when the window closes or
// its handle is recycled, so a window manager reusing the handle for a
// different application resolves fresh instead of inheriting the
// previous identity.
func (r *Resolver) Forget(h dock.Handle) {
	r.cache.Remove(h)
}
