package update

import (
	"fmt"
	"time"
)

// Version information injected by ldflags during build.
var (
	// Version is the current version (e.g., "1.0.0")
	Version = "dev"
	// Commit is the git commit hash
	Commit = "unknown"
	// BuildDate is the build timestamp
	BuildDate = "unknown"
)

// String formats the build information for `pillrow version`.
func String() string {
	return fmt.Sprintf("pillrow %s (commit %s, built %s)", Version, Commit, BuildDate)
}

// ReleaseInfo represents a GitHub release.
type ReleaseInfo struct {
	TagName     string    `json:"tag_name"`
	Name        string    `json:"name"`
	PublishedAt time.Time `json:"published_at"`
	HTMLURL     string    `json:"html_url"`
}
