package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/adventofcode/internal/history"
	"github.com/roach88/adventofcode/internal/runner"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Timings  bool
	Database string

	// RunIDs allows overriding the run ID generator (for testing).
	// If nil, defaults to history.UUIDv7Generator.
	RunIDs history.IDGenerator
}

// RunResult is the JSON payload of the run command.
type RunResult struct {
	*runner.Report
	Run *history.Run `json:"run,omitempty"`
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run [year] [day]",
		Short: "Run registered solutions",
		Long: `Run registered solutions and print one line per day.

Years run in ascending order and days 1 through 24 in order. Parts without
a solution print "unsolved". A day outside 1..24 is rejected before any
lookup, and a year with no registered solutions is an error.

With --db, the run is also recorded in a SQLite history database (created
if it doesn't exist) so answer changes can be inspected with "aoc history".

Exit codes:
  0 - Run completed
  2 - Command error (invalid arguments, unknown year, database error)

Examples:
  aoc run
  aoc run 2020
  aoc run 2020 1 --timings
  aoc run --db ./aoc.db`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolutions(opts, args, cmd)
		},
	}

	addRunFlags(cmd, opts)

	return cmd
}

func addRunFlags(cmd *cobra.Command, opts *RunOptions) {
	cmd.Flags().BoolVar(&opts.Timings, "timings", false, "show how long each part took")
	cmd.Flags().StringVar(&opts.Database, "db", "", "record the run in this SQLite history database")
}

func runSolutions(opts *RunOptions, args []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	logger := newLogger(formatter.GetErrWriter(), opts.RootOptions)

	sel, err := parseSelection(args)
	if err != nil {
		return formatter.FailDomain(err)
	}

	logger.Debug("running solutions", "selection", sel.String())
	rep, err := opts.newRunner(logger).Run(sel)
	if err != nil {
		return formatter.FailDomain(err)
	}

	result := RunResult{Report: rep}
	if opts.Database != "" {
		run, err := recordRun(commandContext(cmd), opts, sel, rep, logger)
		if err != nil {
			return formatter.Fail(ErrCodeHistory, ExitCommandError, err)
		}
		result.Run = &run
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	return runner.WriteText(formatter.Writer, rep, runner.TextOptions{Timings: opts.Timings})
}

// recordRun appends rep to the history database at opts.Database.
func recordRun(ctx context.Context, opts *RunOptions, sel runner.Selection, rep *runner.Report, logger *slog.Logger) (history.Run, error) {
	st, err := history.Open(opts.Database)
	if err != nil {
		return history.Run{}, fmt.Errorf("failed to open history database: %w", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			logger.Error("error closing history database", "error", closeErr)
		}
	}()

	ids := opts.RunIDs
	if ids == nil {
		ids = history.UUIDv7Generator{}
	}

	run, err := st.RecordRun(ctx, ids.Generate(), sel.String(), rep)
	if err != nil {
		return history.Run{}, err
	}
	logger.Info("recorded run", "db", opts.Database, "id", run.ID, "seq", run.Seq, "days", run.Days)
	return run, nil
}
