package version

// Development is the version reported by builds that were not stamped by the
// release pipeline. External plugin loading is disabled for such builds.
const Development = "development"

// Overridden at build time via -ldflags.
var (
	CurrentVersion = Development
	CommitHash     = "unknown"
)

func IsDevelopment() bool {
	return CurrentVersion == Development
}
