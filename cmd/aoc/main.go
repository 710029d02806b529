// Command aoc runs registered Advent of Code solutions.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/roach88/adventofcode/internal/cli"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}

// run executes the CLI with args and is separate from main for testing.
// Errors that aren't already ExitErrors are cobra flag or argument errors,
// which are usage errors.
func run(stdout, stderr io.Writer, args []string) error {
	cmd := cli.NewRootCommand()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return nil
	}
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	return cli.WrapExitError(cli.ExitCommandError, "", err)
}
