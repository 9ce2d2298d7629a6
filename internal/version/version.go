// Package version holds build metadata injected via -ldflags.
package version

// Build metadata. Overridden at link time:
//
//	go build -ldflags "-X .../internal/version.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "unknown"
)
