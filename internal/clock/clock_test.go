package clock

import (
	"testing"
	"time"
)

func TestAdvance(t *testing.T) {
	t.Parallel()
	c := New()

	if got := c.GameTicks(); got != 0 {
		t.Fatalf("GameTicks = %v at start, want 0", got)
	}

	c.Advance(2 * time.Second)
	if got := c.GameTicks(); got != 2 {
		t.Errorf("GameTicks = %v, want 2", got)
	}
}

func TestSpeedScalesAdvance(t *testing.T) {
	t.Parallel()
	c := New()

	c.SetSpeed(3)
	c.Advance(time.Second)
	if got := c.GameTicks(); got != 3 {
		t.Errorf("GameTicks = %v at 3x, want 3", got)
	}

	// Non-positive speeds are ignored.
	c.SetSpeed(0)
	if got := c.Speed(); got != 3 {
		t.Errorf("Speed = %v after SetSpeed(0), want 3", got)
	}
}

func TestSimulatingFlag(t *testing.T) {
	t.Parallel()
	c := New()

	if c.IsSimulating() {
		t.Fatal("should not start simulating")
	}
	c.SetSimulating(true)
	if !c.IsSimulating() {
		t.Error("flag should be raised")
	}
	c.SetSimulating(false)
	if c.IsSimulating() {
		t.Error("flag should be lowered")
	}
}

func TestTicksMonotonic(t *testing.T) {
	t.Parallel()
	c := New()

	a := c.Ticks()
	time.Sleep(10 * time.Millisecond)
	b := c.Ticks()
	if b <= a {
		t.Errorf("Ticks went from %v to %v, want increase", a, b)
	}
}
