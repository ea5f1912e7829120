// Package content indexes mission and event scripts shipped in the
// data tree. The registry stores raw sources; the scripting runtime
// decides how to run them.
package content

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Entry is one mission or event script.
type Entry struct {
	Name   string
	Path   string
	Source []byte
}

// Registry maps script names to their sources.
type Registry struct {
	mu      sync.RWMutex
	kind    string // "mission" or "event", for logging
	entries map[string]*Entry
}

// LoadDir builds a registry from every .lua file in a directory. The
// script name is the file name without extension. A missing directory
// yields an empty registry; content dirs are optional in dev setups.
func LoadDir(kind, dir string) (*Registry, error) {
	r := &Registry{kind: kind, entries: make(map[string]*Entry, 32)}

	files, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("content directory missing", "kind", kind, "dir", dir)
			return r, nil
		}
		return nil, fmt.Errorf("reading %s dir %s: %w", kind, dir, err)
	}

	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".lua") {
			continue
		}
		path := filepath.Join(dir, f.Name())
		src, err := os.ReadFile(path)
		if err != nil {
			slog.Warn("unreadable content script", "kind", kind, "path", path, "err", err)
			continue
		}
		name := strings.TrimSuffix(f.Name(), ".lua")
		r.entries[name] = &Entry{Name: name, Path: path, Source: src}
	}

	slog.Info("loaded content scripts", "kind", kind, "count", len(r.entries))
	return r, nil
}

// NewRegistry creates a registry from in-memory sources. Used by tests
// and embedded defaults.
func NewRegistry(kind string, sources map[string]string) *Registry {
	r := &Registry{kind: kind, entries: make(map[string]*Entry, len(sources))}
	for name, src := range sources {
		r.entries[name] = &Entry{Name: name, Source: []byte(src)}
	}
	return r
}

// Get returns the entry for a name, or nil with a warning.
func (r *Registry) Get(name string) *Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]
	if !ok {
		slog.Warn("content script not found", "kind", r.kind, "name", name)
		return nil
	}
	return e
}

// Names returns every script name, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.entries))
	for name := range r.entries {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of scripts.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Reload re-reads a script's source from disk. Development aid: it
// bypasses the usual load-once discipline and can leave running
// content inconsistent with its source.
func (r *Registry) Reload(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[name]
	if !ok {
		return fmt.Errorf("%s %q not found", r.kind, name)
	}
	if e.Path == "" {
		return fmt.Errorf("%s %q has no backing file", r.kind, name)
	}
	src, err := os.ReadFile(e.Path)
	if err != nil {
		return fmt.Errorf("reloading %s %q: %w", r.kind, name, err)
	}
	e.Source = src
	slog.Info("reloaded content script", "kind", r.kind, "name", name)
	return nil
}
