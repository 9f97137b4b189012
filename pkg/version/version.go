// Package version exposes the build metadata stamped into FleetWatch
// binaries at link time.
package version

// Stamped via -ldflags "-X github.com/carverauto/fleetwatch/pkg/version.version=...".
//
//nolint:gochecknoglobals // set by the linker
var (
	version = "dev"
	buildID = "dev"
)

// GetVersion returns the release version, "dev" for local builds.
func GetVersion() string {
	return version
}

// GetBuildID returns the CI build identifier.
func GetBuildID() string {
	return buildID
}

// GetFullVersion combines the version and build ID for startup logs.
func GetFullVersion() string {
	return version + " (build: " + buildID + ")"
}
