package main

import (
	"fmt"
	"os"

	"github.com/virtforge/osid/cmd/osid/commands"
	"github.com/virtforge/osid/pkg/osinfo"
)

// main executes the osid CLI and maps resolver errors to exit codes.
//
// Exit codes:
//   - 0: success (including the "unknown" identifier result)
//   - 1: general error
//   - 2: invalid input (bad fact bundle, invalid or incompatible catalog)
//   - 7: required inspection facts unavailable
func main() {
	command := commands.NewCommand()

	if err := command.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(osinfo.ExitCode(err))
	}
}
