// Package version exposes build information injected with -ldflags.
package version

import "fmt"

// Set at build time:
//
//	go build -ldflags "-X github.com/carbonhub-app/carbonhub/pkg/version.version=v1.2.3"
//
//nolint:gochecknoglobals // Populated by the linker.
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

// GetVersion returns the release version, "dev" for local builds.
func GetVersion() string {
	return version
}

// GetCommit returns the git commit the binary was built from.
func GetCommit() string {
	return commit
}

// GetBuildDate returns the build timestamp.
func GetBuildDate() string {
	return buildDate
}

// UserAgent returns the User-Agent sent to the API.
func UserAgent() string {
	return "carbonhub/" + version
}

// Long returns the version line printed by `carbonhub --version`.
func Long() string {
	return fmt.Sprintf("%s (commit %s, built %s)", version, commit, buildDate)
}
