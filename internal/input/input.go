// Package input holds the keybinding table the engine consults every
// frame. Scripts can look up display names and toggle bindings through
// the scripting facade.
package input

import (
	"log/slog"
	"sync"
)

// Binding is one named input binding.
type Binding struct {
	name    string
	key     string
	display string
	enabled bool
}

// Name returns the binding identifier used in data and scripts.
func (b *Binding) Name() string { return b.name }

// Display returns the human readable key name.
func (b *Binding) Display() string { return b.display }

// Enabled reports whether the binding currently fires.
func (b *Binding) Enabled() bool { return b.enabled }

// Bindings is the keybinding table.
type Bindings struct {
	mu     sync.RWMutex
	byName map[string]*Binding
	order  []string
}

// Defaults returns the stock keybinding table.
func Defaults() *Bindings {
	b := &Bindings{byName: make(map[string]*Binding, 32)}
	for _, d := range []struct{ name, key, display string }{
		{"accel", "w", "W"},
		{"left", "a", "A"},
		{"right", "d", "D"},
		{"reverse", "s", "S"},
		{"primary", "space", "Space"},
		{"secondary", "lshift", "Left Shift"},
		{"target_next", "tab", "Tab"},
		{"target_nearest", "t", "T"},
		{"face", "f", "F"},
		{"board", "b", "B"},
		{"land", "l", "L"},
		{"hyperspace", "j", "J"},
		{"starmap", "m", "M"},
		{"autonav", "n", "N"},
		{"menu", "escape", "Escape"},
		{"console", "f2", "F2"},
		{"screenshot", "f12", "F12"},
	} {
		b.add(d.name, d.key, d.display)
	}
	return b
}

func (b *Bindings) add(name, key, display string) {
	b.byName[name] = &Binding{name: name, key: key, display: display, enabled: true}
	b.order = append(b.order, name)
}

// Display returns the human readable key name for a binding. Unknown
// bindings log a warning and report false.
func (b *Bindings) Display(name string) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	bind, ok := b.byName[name]
	if !ok {
		slog.Warn("unknown keybinding", "name", name)
		return "", false
	}
	return bind.display, true
}

// SetEnabled toggles a single binding. Reports whether the binding
// exists.
func (b *Bindings) SetEnabled(name string, enabled bool) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	bind, ok := b.byName[name]
	if !ok {
		slog.Warn("unknown keybinding", "name", name)
		return false
	}
	bind.enabled = enabled
	return true
}

// Enabled reports whether a binding currently fires.
func (b *Bindings) Enabled(name string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	bind, ok := b.byName[name]
	return ok && bind.enabled
}

// EnableAll re-enables every binding.
func (b *Bindings) EnableAll() { b.setAll(true) }

// DisableAll disables every binding. Scripts use this around cutscenes;
// a crash in between leaves the player without controls, so the facade
// warns in its documentation.
func (b *Bindings) DisableAll() { b.setAll(false) }

func (b *Bindings) setAll(enabled bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, bind := range b.byName {
		bind.enabled = enabled
	}
}

// Names returns every binding name in declaration order.
func (b *Bindings) Names() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}
