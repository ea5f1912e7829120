// Package hook implements named hook stacks with deferred triggering.
// Triggering a stack never runs it inline; the simulation loop pumps
// the deferred queue once per tick.
package hook

import (
	"log/slog"
	"sync"
)

// Func is a hook callback. The argument is whatever the trigger
// attached, or nil.
type Func func(arg any)

type deferredRun struct {
	name string
	arg  any
}

// Manager owns the hook stacks and the deferred run queue.
type Manager struct {
	mu       sync.Mutex
	stacks   map[string][]Func
	deferred []deferredRun
}

// NewManager creates an empty hook manager.
func NewManager() *Manager {
	return &Manager{stacks: make(map[string][]Func, 16)}
}

// Register appends a callback to a named stack.
func (m *Manager) Register(name string, fn Func) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stacks[name] = append(m.stacks[name], fn)
}

// Trigger schedules a named stack to run on the next tick, carrying an
// optional argument. Triggering a stack nobody registered on is legal;
// the run is a no-op.
func (m *Manager) Trigger(name string, arg any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deferred = append(m.deferred, deferredRun{name: name, arg: arg})
	slog.Debug("hook triggered", "name", name, "queued", len(m.deferred))
}

// Pending returns the number of queued deferred runs.
func (m *Manager) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.deferred)
}

// RunDeferred drains the deferred queue, running every stack in trigger
// order. Hooks triggered while draining run on the next call, keeping
// each tick bounded. Returns the number of runs executed.
func (m *Manager) RunDeferred() int {
	m.mu.Lock()
	queue := m.deferred
	m.deferred = nil
	m.mu.Unlock()

	for _, run := range queue {
		m.mu.Lock()
		fns := make([]Func, len(m.stacks[run.name]))
		copy(fns, m.stacks[run.name])
		m.mu.Unlock()

		for _, fn := range fns {
			fn(run.arg)
		}
	}
	return len(queue)
}
