package gfx

import (
	"log/slog"
	"sync"
)

// Texture is an opaque handle to a loaded sprite sheet or image.
// Actual pixel data lives in the renderer; the engine only tracks
// the source path and the sprite grid.
type Texture struct {
	path   string
	sx, sy int
}

// Path returns the source path the texture was loaded from.
func (t *Texture) Path() string { return t.path }

// Sprites returns the sprite grid dimensions (1x1 for plain images).
func (t *Texture) Sprites() (int, int) { return t.sx, t.sy }

// Manager owns every loaded texture handle. Handles are created once
// per path and released in bulk at shutdown.
type Manager struct {
	mu       sync.Mutex
	textures map[string]*Texture
	shaders  map[string]*Shader
}

// NewManager creates an empty texture manager.
func NewManager() *Manager {
	return &Manager{
		textures: make(map[string]*Texture, 128),
		shaders:  make(map[string]*Shader, 16),
	}
}

// NewSprite returns the handle for a sprite sheet with the given grid,
// loading it on first use.
func (m *Manager) NewSprite(path string, sx, sy int) *Texture {
	m.mu.Lock()
	defer m.mu.Unlock()

	if t, ok := m.textures[path]; ok {
		return t
	}
	t := &Texture{path: path, sx: sx, sy: sy}
	m.textures[path] = t
	return t
}

// NewImage returns the handle for a plain image (1x1 sprite grid).
func (m *Manager) NewImage(path string) *Texture {
	return m.NewSprite(path, 1, 1)
}

// Release drops a single texture handle. Only the bulk Close is used
// during a normal session; Release exists for tooling.
func (m *Manager) Release(t *Texture) {
	if t == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.textures, t.path)
}

// Len returns the number of live texture handles.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.textures)
}

// Close releases every texture and shader handle.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := len(m.textures)
	m.textures = make(map[string]*Texture)
	m.shaders = make(map[string]*Shader)
	slog.Debug("released textures", "count", n)
}
