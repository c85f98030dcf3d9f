// Package version exposes build metadata injected via -ldflags.
package version

import "fmt"

var (
	// Version is the release tag, or "dev" for untagged builds.
	Version = "dev"
	// Commit is the short git hash the binary was built from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)

// Info bundles the build metadata.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// GetInfo returns the build metadata of the running binary.
func GetInfo() Info {
	return Info{Version: Version, Commit: Commit, Date: Date}
}

func (i Info) String() string {
	return fmt.Sprintf("clickup-setup %s (commit %s, built %s)", i.Version, i.Commit, i.Date)
}
