// Package version carries the engine version string.
package version

// Version is the engine version. Overridden at build time via
// -ldflags "-X github.com/stardrifter/naevgo/internal/version.Version=...".
var Version = "0.6.1"
