// gh extensions are built from the repository root; this entry point and
// cmd/gh-deploy-checklist share the same command tree.
package main

import (
	"os"

	"github.com/ryo246912/gh-deploy-checklist/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
