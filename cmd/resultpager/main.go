// Command resultpager browses recorded cursor-paginated result sets.
package main

import (
	"errors"
	"os"

	"github.com/rshade/resultpager/internal/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev" //nolint:gochecknoglobals // Set by the linker.

// Process exit codes.
const (
	exitOK               = 0
	exitError            = 1
	exitValidationFailed = 2
)

func main() {
	os.Exit(exitCode(run()))
}

func run() error {
	return cli.NewRootCmd(version).Execute()
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, cli.ErrValidationFailed):
		return exitValidationFailed
	default:
		return exitError
	}
}
