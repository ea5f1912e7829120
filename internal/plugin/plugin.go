// Package plugin holds metadata for content plugins mounted into the
// game data tree. Discovery happens elsewhere; this registry only
// records what was mounted.
package plugin

import "sync"

// Plugin describes one mounted content plugin.
type Plugin struct {
	Name            string
	Author          string
	Version         string
	Description     string
	Compatibility   string
	Mountpoint      string
	Priority        int
	Compatible      bool
	TotalConversion bool
}

// Registry is the list of mounted plugins.
type Registry struct {
	mu      sync.RWMutex
	plugins []Plugin
}

// NewRegistry creates an empty plugin registry.
func NewRegistry() *Registry { return &Registry{} }

// Register records a mounted plugin.
func (r *Registry) Register(p Plugin) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plugins = append(r.plugins, p)
}

// List returns a copy of the registered plugins in mount order.
func (r *Registry) List() []Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Plugin, len(r.plugins))
	copy(out, r.plugins)
	return out
}
