// Package buildinfo holds the version stamped into release builds:
//
//	go build -ldflags "-X github.com/matzehuels/pumlrender/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/pumlrender/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/pumlrender/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Local builds keep the placeholder values.
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

const shortCommitLen = 7

// Short identifies the build in one token, e.g. "v1.2.3+abc1234".
// It is stamped into run reports.
func Short() string {
	if Commit == "" || Commit == "none" {
		return Version
	}
	c := Commit
	if len(c) > shortCommitLen {
		c = c[:shortCommitLen]
	}
	return Version + "+" + c
}

// Template returns the --version template for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
