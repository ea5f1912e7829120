// Package game drives the simulation loop.
package game

import (
	"context"
	"log/slog"
	"time"

	"github.com/stardrifter/naevgo/internal/clock"
	"github.com/stardrifter/naevgo/internal/hook"
)

// Loop advances the game clock and pumps deferred hooks at a fixed
// tick rate.
type Loop struct {
	clock  *clock.Clock
	hooks  *hook.Manager
	tick   time.Duration
	warmup time.Duration
}

// NewLoop creates a simulation loop. warmup is how much game time to
// simulate before the player takes over.
func NewLoop(c *clock.Clock, h *hook.Manager, tick, warmup time.Duration) *Loop {
	return &Loop{clock: c, hooks: h, tick: tick, warmup: warmup}
}

// Run ticks until the context is cancelled. The universe spin-up runs
// first with the simulation flag raised.
func (l *Loop) Run(ctx context.Context) error {
	if l.warmup > 0 {
		l.clock.SetSimulating(true)
		l.clock.Advance(l.warmup)
		l.hooks.RunDeferred()
		l.clock.SetSimulating(false)
		slog.Debug("universe spin-up complete", "warmup", l.warmup)
	}

	ticker := time.NewTicker(l.tick)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			slog.Info("simulation loop stopped")
			return nil
		case now := <-ticker.C:
			l.clock.Advance(now.Sub(last))
			last = now
			l.hooks.RunDeferred()
		}
	}
}
