// Package identity maps windows to stable application identities.
// Identity resolution joins the live window world with the launchable
// desktop-entry world so the dock can match windows against pins.
package identity

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/dockd/dockd/internal/dock"
)

// Entry is the slice of a desktop entry the resolver cares about.
type Entry struct {
	// ID is the entry's basename, e.g. "firefox.desktop".
	ID dock.AppID
	// Name is the localized-ish display name (first Name key wins).
	Name string
	// Exec is the first word of the Exec line, path stripped.
	Exec string
	// StartupWMClass as declared, lowercased.
	StartupWMClass string
}

// Catalog indexes known launchable entries for matching.
type Catalog interface {
	// ByDesktopFile looks up an entry by basename.
	ByDesktopFile(base string) (Entry, bool)
	// MatchClass finds an entry whose StartupWMClass, basename stem or
	// executable matches the window class (case-insensitive).
	MatchClass(class string) (Entry, bool)
	// MatchExec finds an entry launched by the given executable name.
	MatchExec(exe string) (Entry, bool)
}

// FSCatalog scans applications/ directories under the XDG data dirs.
type FSCatalog struct {
	entries []Entry
	byBase  map[string]int
	byClass map[string]int
	byExec  map[string]int
}

// ScanCatalog builds a catalog from every applications/ directory in
// XDG data home and data dirs. Directories that do not exist are
// skipped; unreadable entries are ignored.
func ScanCatalog() *FSCatalog {
	dirs := make([]string, 0, len(xdg.DataDirs)+1)
	dirs = append(dirs, filepath.Join(xdg.DataHome, "applications"))
	for _, d := range xdg.DataDirs {
		dirs = append(dirs, filepath.Join(d, "applications"))
	}
	return ScanCatalogDirs(dirs)
}

// ScanCatalogDirs builds a catalog from explicit directories. Earlier
// directories win on basename collisions, matching XDG precedence.
func ScanCatalogDirs(dirs []string) *FSCatalog {
	c := &FSCatalog{
		byBase:  make(map[string]int),
		byClass: make(map[string]int),
		byExec:  make(map[string]int),
	}
	for _, dir := range dirs {
		files, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, f := range files {
			if f.IsDir() || !strings.HasSuffix(f.Name(), ".desktop") {
				continue
			}
			if _, seen := c.byBase[f.Name()]; seen {
				continue
			}
			entry, ok := parseDesktopFile(filepath.Join(dir, f.Name()))
			if !ok {
				continue
			}
			c.add(entry)
		}
	}
	return c
}

// NewStaticCatalog builds a catalog from fixed entries. Used by tests
// and scenario playback where no real desktop files exist.
func NewStaticCatalog(entries []Entry) *FSCatalog {
	c := &FSCatalog{
		byBase:  make(map[string]int),
		byClass: make(map[string]int),
		byExec:  make(map[string]int),
	}
	for _, e := range entries {
		if _, seen := c.byBase[string(e.ID)]; seen {
			continue
		}
		c.add(e)
	}
	return c
}

func (c *FSCatalog) add(e Entry) {
	i := len(c.entries)
	c.entries = append(c.entries, e)
	c.byBase[string(e.ID)] = i
	if e.StartupWMClass != "" {
		if _, dup := c.byClass[e.StartupWMClass]; !dup {
			c.byClass[e.StartupWMClass] = i
		}
	}
	if e.Exec != "" {
		if _, dup := c.byExec[e.Exec]; !dup {
			c.byExec[e.Exec] = i
		}
	}
}

// Len returns the number of indexed entries.
func (c *FSCatalog) Len() int { return len(c.entries) }

// ByDesktopFile implements Catalog.
func (c *FSCatalog) ByDesktopFile(base string) (Entry, bool) {
	if i, ok := c.byBase[base]; ok {
		return c.entries[i], true
	}
	return Entry{}, false
}

// MatchClass implements Catalog. Matching order: declared
// StartupWMClass, then entry basename stem, then executable name.
func (c *FSCatalog) MatchClass(class string) (Entry, bool) {
	class = strings.ToLower(strings.TrimSpace(class))
	if class == "" {
		return Entry{}, false
	}
	if i, ok := c.byClass[class]; ok {
		return c.entries[i], true
	}
	if i, ok := c.byBase[class+".desktop"]; ok {
		return c.entries[i], true
	}
	if i, ok := c.byExec[class]; ok {
		return c.entries[i], true
	}
	return Entry{}, false
}

// MatchExec implements Catalog.
func (c *FSCatalog) MatchExec(exe string) (Entry, bool) {
	exe = strings.ToLower(strings.TrimSpace(exe))
	if exe == "" {
		return Entry{}, false
	}
	if i, ok := c.byExec[exe]; ok {
		return c.entries[i], true
	}
	if i, ok := c.byBase[exe+".desktop"]; ok {
		return c.entries[i], true
	}
	return Entry{}, false
}

// parseDesktopFile extracts the matching-relevant keys from the
// [Desktop Entry] group. Hidden (NoDisplay) entries still participate:
// a running window should group under its app even if the launcher
// hides the entry.
func parseDesktopFile(path string) (Entry, bool) {
	// #nosec G304 - path enumerated from XDG application dirs
	f, err := os.Open(path)
	if err != nil {
		return Entry{}, false
	}
	defer f.Close() //nolint:errcheck

	entry := Entry{ID: dock.AppID(filepath.Base(path))}
	inMain := false
	found := false

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			inMain = line == "[Desktop Entry]"
			if found && !inMain {
				break
			}
			continue
		}
		if !inMain {
			continue
		}
		found = true
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch key {
		case "Name":
			if entry.Name == "" {
				entry.Name = value
			}
		case "Exec":
			entry.Exec = execName(value)
		case "StartupWMClass":
			entry.StartupWMClass = strings.ToLower(value)
		}
	}
	if !found {
		return Entry{}, false
	}
	return entry, true
}

// execName reduces an Exec line to the bare executable name: first
// field, path stripped, field codes dropped.
func execName(exec string) string {
	fields := strings.Fields(exec)
	for _, f := range fields {
		if strings.HasPrefix(f, "%") {
			continue
		}
		base := filepath.Base(f)
		// env VAR=... prefixes precede the real binary
		if base == "env" || strings.Contains(f, "=") {
			continue
		}
		return strings.ToLower(base)
	}
	return ""
}
