// Package sfx tracks sound and special-effect identifiers. Actual
// playback and rendering are owned by the audio/video layers; the
// engine only resolves names to stable integer ids.
package sfx

import (
	"log/slog"
	"sync"
)

// NotFound is returned for names with no registered id. Callers must
// treat it as "no effect", never as a valid id.
const NotFound = -1

// Registry interns sound names and holds the declared special-effect
// table. Sounds are interned on first reference (they map to files on
// disk); special effects must be declared up front.
type Registry struct {
	mu     sync.Mutex
	sounds map[string]int
	spfx   map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		sounds: make(map[string]int, 64),
		spfx:   make(map[string]int, 16),
	}
}

// Defaults returns a registry pre-populated with the stock impact
// effects referenced by the shipped outfit data.
func Defaults() *Registry {
	r := NewRegistry()
	for _, name := range []string{"ExpS", "ExpM", "ExpL", "EleS", "EleP"} {
		r.RegisterSpfx(name)
	}
	return r
}

// Sound resolves a sound name to its id, interning it on first use.
func (r *Registry) Sound(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.sounds[name]; ok {
		return id
	}
	id := len(r.sounds)
	r.sounds[name] = id
	return id
}

// RegisterSpfx declares a special effect and returns its id. Declaring
// the same name twice returns the existing id.
func (r *Registry) RegisterSpfx(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.spfx[name]; ok {
		return id
	}
	id := len(r.spfx)
	r.spfx[name] = id
	return id
}

// Spfx resolves a declared special effect by name. Unknown names log a
// warning and return NotFound.
func (r *Registry) Spfx(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.spfx[name]
	if !ok {
		slog.Warn("unknown special effect", "name", name)
		return NotFound
	}
	return id
}
