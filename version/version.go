package version

import "fmt"

// Set at build time via -ldflags.
var GitCommit string
var GitTag string
var UserAgent string

func init() {
	UserAgent = fmt.Sprintf("sv2d/%s", String())
}

// String returns the tag and commit this binary was built from, or "dev"
// for unstamped builds.
func String() string {
	if GitTag == "" && GitCommit == "" {
		return "dev"
	}
	return fmt.Sprintf("%s+%s", GitTag, GitCommit)
}
