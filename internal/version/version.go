package version

import "fmt"

var (
	// Version is the current course release
	Version = "dev"
	// GitSHA is the git commit SHA
	GitSHA = "unknown"
	// BuildTime is the build timestamp
	BuildTime = "unknown"
)

// String formats the build metadata for the -version flag.
func String() string {
	return fmt.Sprintf("image.course %s (%s, built %s)", Version, GitSHA, BuildTime)
}
