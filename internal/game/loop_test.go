package game

import (
	"context"
	"testing"
	"time"

	"github.com/stardrifter/naevgo/internal/clock"
	"github.com/stardrifter/naevgo/internal/hook"
)

func TestWarmupSimulatesAndPumps(t *testing.T) {
	t.Parallel()
	clk := clock.New()
	hooks := hook.NewManager()

	var sawSimulating bool
	hooks.Register("spinup", func(any) { sawSimulating = clk.IsSimulating() })
	hooks.Trigger("spinup", nil)

	loop := NewLoop(clk, hooks, time.Millisecond, 10*time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // warmup still runs; the tick loop exits immediately

	if err := loop.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !sawSimulating {
		t.Error("warmup hooks should see the simulation flag raised")
	}
	if clk.IsSimulating() {
		t.Error("simulation flag should be lowered after warmup")
	}
	if got := clk.GameTicks(); got < 10 {
		t.Errorf("GameTicks = %v after warmup, want >= 10", got)
	}
}

func TestRunAdvancesAndDrains(t *testing.T) {
	t.Parallel()
	clk := clock.New()
	hooks := hook.NewManager()

	done := make(chan struct{})
	hooks.Register("ping", func(any) { close(done) })
	hooks.Trigger("ping", nil)

	loop := NewLoop(clk, hooks, time.Millisecond, 0)
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- loop.Run(ctx) }()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("deferred hook never ran")
	}

	cancel()
	if err := <-errCh; err != nil {
		t.Fatalf("Run: %v", err)
	}
	if clk.GameTicks() <= 0 {
		t.Error("clock should have advanced")
	}
}
