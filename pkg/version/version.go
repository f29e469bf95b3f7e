// Package version records build metadata stamped in at link time via
// -ldflags "-X".
package version

// Build metadata, overridden at link time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
