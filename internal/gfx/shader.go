package gfx

import "log/slog"

// Shader is an opaque handle to a compiled shader program.
type Shader struct {
	name       string
	generation int
}

// Name returns the shader name.
func (s *Shader) Name() string { return s.name }

// Generation returns how many times the shader has been recompiled.
func (s *Shader) Generation() int { return s.generation }

// LoadShader returns the handle for a named shader, compiling it on
// first use.
func (m *Manager) LoadShader(name string) *Shader {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.shaders[name]; ok {
		return s
	}
	s := &Shader{name: name}
	m.shaders[name] = s
	return s
}

// ReloadShaders recompiles every loaded shader in place. Development
// aid behind the scripting facade; handles stay valid across reloads.
func (m *Manager) ReloadShaders() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range m.shaders {
		s.generation++
	}
	slog.Info("reloaded shaders", "count", len(m.shaders))
	return len(m.shaders)
}
