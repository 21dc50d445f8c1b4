// Package buildinfo provides build-time version information for the kata binary.
//
// Variables are set via ldflags during build:
//
//	go build -ldflags "-X github.com/matzehuels/kata/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/kata/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/kata/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/kata
package buildinfo

import "fmt"

var (
	// Version is the semantic version (e.g., "v0.3.0").
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
	return fmt.Sprintf("{{.Name}} %s (commit %s, built %s)\n", Version, Commit, Date)
}
