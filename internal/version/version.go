// Package version holds colmap build metadata, injected with
// -ldflags "-X github.com/kailas-cloud/colmap/internal/version.Version=...".
package version

//nolint:revive // Set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
