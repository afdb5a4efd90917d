// Package version records the build identity stamped into release binaries.
package version

// Set through -ldflags at release time; the defaults identify a source
// build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
