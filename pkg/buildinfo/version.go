// Package buildinfo provides build-time version information.
//
// Variables are set via ldflags during build:
//
//	go build -ldflags "-X github.com/matzehuels/treecanvas/pkg/buildinfo.Version=v0.1.0 \
//	    -X github.com/matzehuels/treecanvas/pkg/buildinfo.Commit=$(git rev-parse --short HEAD)" \
//	    ./cmd/treecanvas
package buildinfo

import "fmt"

var (
	// Version is the semantic version (e.g., "v0.1.0").
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// String returns the formatted build information.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the version template string for cobra.
func Template() string {
	return "{{.Name}} version " + Version + "\ncommit: " + Commit + "\nbuilt: " + Date + "\n"
}
