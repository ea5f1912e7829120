// Package clock tracks elapsed real time and elapsed game time. Game
// time runs at a configurable multiple of real time and only advances
// while the simulation loop ticks.
package clock

import (
	"sync"
	"time"
)

// Clock is the engine time source.
type Clock struct {
	start time.Time

	mu          sync.RWMutex
	speed       float64
	gameElapsed float64
	simulating  bool
}

// New creates a clock starting now at 1x speed.
func New() *Clock {
	return &Clock{start: time.Now(), speed: 1}
}

// Ticks returns real seconds since the engine started.
func (c *Clock) Ticks() float64 {
	return time.Since(c.start).Seconds()
}

// GameTicks returns elapsed game seconds, affected by the current
// speed modifier.
func (c *Clock) GameTicks() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gameElapsed
}

// Advance adds one tick of real time to the game clock, scaled by the
// speed modifier. Called by the simulation loop.
func (c *Clock) Advance(dt time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gameElapsed += dt.Seconds() * c.speed
}

// SetSpeed sets the game-time speed modifier.
func (c *Clock) SetSpeed(speed float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if speed > 0 {
		c.speed = speed
	}
}

// Speed returns the game-time speed modifier.
func (c *Clock) Speed() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.speed
}

// SetSimulating flags universe spin-up, when the world advances
// without the player.
func (c *Clock) SetSimulating(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.simulating = on
}

// IsSimulating reports whether the universe is being spun up.
func (c *Clock) IsSimulating() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.simulating
}
