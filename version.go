package mediameta

import "runtime"

// Version is the semantic version of the mediameta library.
const Version = "0.1.0"

// BuildInfo describes how this copy of the library was built.
type BuildInfo struct {
	// Version is the semantic version (e.g., "0.1.0")
	Version string
	// GitCommit is the git commit hash (set via ldflags at build time)
	GitCommit string
	// BuildTime is the build timestamp (set via ldflags at build time)
	BuildTime string
	// GoVersion is the Go version used to build
	GoVersion string
}

// Build returns the library's build information.
//
// GitCommit and BuildTime are populated at build time via -ldflags and
// show as "unknown" when unset; GoVersion comes from the running
// toolchain.
//
// Example build command:
//
//	go build -ldflags="-X github.com/simonhull/mediameta.gitCommit=$(git rev-parse HEAD) \
//	  -X github.com/simonhull/mediameta.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
func Build() BuildInfo {
	return BuildInfo{
		Version:   Version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}
}

// Variables populated at build time via -ldflags.
var (
	gitCommit = "unknown"
	buildTime = "unknown"
)
