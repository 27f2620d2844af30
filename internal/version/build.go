package version

import (
	"fmt"
	"runtime"
)

// Set via ldflags, e.g.
// go build -ldflags="-X github.com/ryo246912/gh-deploy-checklist/internal/version.BuildVersion=v1.0.0"
var (
	BuildVersion = "dev"
	Commit       = "unknown"
)

// Info returns a single-line description of the binary.
func Info() string {
	commitShort := Commit
	if len(commitShort) > 7 {
		commitShort = commitShort[:7]
	}
	return fmt.Sprintf("gh-deploy-checklist %s (commit: %s, go: %s)", BuildVersion, commitShort, runtime.Version())
}
