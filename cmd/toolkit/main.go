// Package main is the entry point for the toolkit command line.
package main

import (
	"fmt"
	"os"

	"github.com/on-the-ground/toolkit_ive_go/internal/cli"
)

// Build information injected via ldflags at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	cli.SetVersion(fmt.Sprintf("%s (commit: %s)", version, commit))
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
