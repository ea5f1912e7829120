// Package player holds the session's player record. Persistence of the
// record is owned by the save subsystem, not specified here.
package player

import (
	"sync"
	"time"
)

// Record is the in-memory player state the scripting facade reads.
type Record struct {
	mu            sync.RWMutex
	loadedVersion string
	lastPlayed    time.Time
}

// NewRecord creates a record for a fresh session.
func NewRecord(lastPlayed time.Time) *Record {
	return &Record{lastPlayed: lastPlayed}
}

// SetLoadedVersion records the version string of the loaded save.
func (r *Record) SetLoadedVersion(v string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loadedVersion = v
}

// LoadedVersion returns the loaded save's version, or "" when no save
// is loaded.
func (r *Record) LoadedVersion() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loadedVersion
}

// LastPlayed returns when the player last played.
func (r *Record) LastPlayed() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastPlayed
}

// DaysSinceLastPlayed returns how many days ago the last session was.
func (r *Record) DaysSinceLastPlayed() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.lastPlayed.IsZero() {
		return 0
	}
	return time.Since(r.lastPlayed).Hours() / 24
}
