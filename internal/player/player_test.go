package player

import (
	"testing"
	"time"
)

func TestLoadedVersion(t *testing.T) {
	t.Parallel()
	r := NewRecord(time.Now())

	if got := r.LoadedVersion(); got != "" {
		t.Errorf("LoadedVersion = %q for fresh session, want empty", got)
	}
	r.SetLoadedVersion("0.5.0")
	if got := r.LoadedVersion(); got != "0.5.0" {
		t.Errorf("LoadedVersion = %q, want 0.5.0", got)
	}
}

func TestDaysSinceLastPlayed(t *testing.T) {
	t.Parallel()

	r := NewRecord(time.Now().Add(-48 * time.Hour))
	got := r.DaysSinceLastPlayed()
	if got < 1.9 || got > 2.1 {
		t.Errorf("DaysSinceLastPlayed = %v, want about 2", got)
	}

	never := NewRecord(time.Time{})
	if got := never.DaysSinceLastPlayed(); got != 0 {
		t.Errorf("DaysSinceLastPlayed = %v for zero time, want 0", got)
	}
}
