// Command jsreview runs the JavaScript review lessons.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/jsreview/internal/cli"
	"github.com/roach88/jsreview/internal/harness"
	"github.com/roach88/jsreview/internal/lessons"
)

// Build information injected via ldflags at build time.
var version = "dev"

func main() {
	reg := harness.NewRegistry()
	if err := lessons.Register(reg); err != nil {
		fmt.Fprintf(os.Stderr, "jsreview: %v\n", err)
		os.Exit(cli.ExitCommandError)
	}

	cmd := cli.NewRootCommand(reg)
	cmd.Version = version
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "jsreview: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
