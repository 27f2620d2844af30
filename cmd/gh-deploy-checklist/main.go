package main

import (
	"os"

	"github.com/ryo246912/gh-deploy-checklist/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
