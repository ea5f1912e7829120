// Package claim reserves narrative resources (star systems and free
// form string keys) for missions and events, so two pieces of content
// never fight over the same system. A system can carry many inclusive
// claims but only one exclusive claim.
package claim

import (
	"fmt"
	"sync"
)

// Registry tracks every committed claim and knows the set of valid
// system names.
type Registry struct {
	mu        sync.RWMutex
	systems   map[string]bool
	exclusive map[string]bool
	inclusive map[string]int
}

// NewRegistry creates a registry over the given system names.
func NewRegistry(systems []string) *Registry {
	r := &Registry{
		systems:   make(map[string]bool, len(systems)),
		exclusive: make(map[string]bool, 16),
		inclusive: make(map[string]int, 16),
	}
	for _, s := range systems {
		r.systems[s] = true
	}
	return r
}

// IsSystem reports whether a name refers to a known star system.
func (r *Registry) IsSystem(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.systems[name]
}

// Claim is a reservation under construction. Build it with AddSystem /
// AddString, then either Test it (read-only) or Commit it.
type Claim struct {
	reg       *Registry
	exclusive bool
	keys      []string
	committed bool
}

// New starts an empty claim. Exclusive claims refuse to share their
// keys with any other claim; inclusive claims coexist with other
// inclusive claims.
func New(reg *Registry, exclusive bool) *Claim {
	return &Claim{reg: reg, exclusive: exclusive}
}

// AddSystem adds a star system to the claim.
func (c *Claim) AddSystem(name string) { c.keys = append(c.keys, name) }

// AddString adds a free-form key to the claim.
func (c *Claim) AddString(key string) { c.keys = append(c.keys, key) }

// Len returns the number of keys in the claim.
func (c *Claim) Len() int { return len(c.keys) }

// Test reports whether the claim could be committed right now. It
// never mutates the registry, whatever the outcome.
func (c *Claim) Test() bool {
	c.reg.mu.RLock()
	defer c.reg.mu.RUnlock()

	for _, k := range c.keys {
		if c.reg.exclusive[k] {
			return false
		}
		if c.exclusive && c.reg.inclusive[k] > 0 {
			return false
		}
	}
	return true
}

// Commit applies the claim to the registry. Fails without partial
// effect when any key is already taken.
func (c *Claim) Commit() error {
	c.reg.mu.Lock()
	defer c.reg.mu.Unlock()

	if c.committed {
		return fmt.Errorf("claim already committed")
	}
	for _, k := range c.keys {
		if c.reg.exclusive[k] {
			return fmt.Errorf("key %q already claimed exclusively", k)
		}
		if c.exclusive && c.reg.inclusive[k] > 0 {
			return fmt.Errorf("key %q already claimed", k)
		}
	}
	for _, k := range c.keys {
		if c.exclusive {
			c.reg.exclusive[k] = true
		} else {
			c.reg.inclusive[k]++
		}
	}
	c.committed = true
	return nil
}

// Release undoes a committed claim. Releasing an uncommitted claim is
// a no-op.
func (c *Claim) Release() {
	if !c.committed {
		return
	}
	c.reg.mu.Lock()
	defer c.reg.mu.Unlock()

	for _, k := range c.keys {
		if c.exclusive {
			delete(c.reg.exclusive, k)
		} else if c.reg.inclusive[k] > 0 {
			c.reg.inclusive[k]--
			if c.reg.inclusive[k] == 0 {
				delete(c.reg.inclusive, k)
			}
		}
	}
	c.committed = false
}

// ActiveKeys returns the number of distinct keys with committed claims.
func (r *Registry) ActiveKeys() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.exclusive) + len(r.inclusive)
}
