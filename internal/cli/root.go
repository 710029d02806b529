package cli

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/adventofcode/internal/puzzles"
	"github.com/roach88/adventofcode/internal/runner"
	"github.com/roach88/adventofcode/internal/solution"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	// Registry overrides the registered puzzles (for testing).
	// If nil, defaults to puzzles.Registry().
	Registry *solution.Registry

	// Clock overrides the clock used to time producers (for testing).
	// If nil, defaults to runner.SystemClock.
	Clock runner.Clock
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the aoc CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	runOpts := &RunOptions{RootOptions: opts}

	cmd := &cobra.Command{
		Use:   "aoc [year] [day]",
		Short: "Run Advent of Code solutions",
		Long: `Run registered Advent of Code solutions and print their answers.

With no arguments every registered year is run. A year runs all 24 days of
that year, and a year and day run a single day. Days without a solution
print "unsolved" for both parts.

Examples:
  aoc
  aoc 2020
  aoc 2020 1
  aoc 2020 --timings
  aoc --format json 2024 3`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolutions(runOpts, args, cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	// The bare command behaves like run.
	addRunFlags(cmd, runOpts)

	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}

// registry returns the override registry or the registered puzzles.
func (o *RootOptions) registry() *solution.Registry {
	if o.Registry != nil {
		return o.Registry
	}
	return puzzles.Registry()
}

func (o *RootOptions) newRunner(logger *slog.Logger) *runner.Runner {
	opts := []runner.Option{runner.WithLogger(logger)}
	if o.Clock != nil {
		opts = append(opts, runner.WithClock(o.Clock))
	}
	return runner.New(o.registry(), opts...)
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Logs go to stderr to avoid corrupting JSON
		Verbose:   o.Verbose,
	}
}

// commandContext returns the command's context, or Background when the
// command was executed without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
