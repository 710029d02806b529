package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/adventofcode/internal/history"
	"github.com/roach88/adventofcode/internal/runner"
	"github.com/roach88/adventofcode/internal/solution"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
	Year     int
	Day      int
	Changes  bool // only show days whose answers changed
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded runs",
		Long: `Show results recorded with "aoc run --db".

Results are listed in the order they were recorded. With --changes only
days whose answers differ from their previous recording are shown.

Examples:
  aoc history --db ./aoc.db
  aoc history --db ./aoc.db --year 2020 --day 1
  aoc history --db ./aoc.db --changes --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite history database (required)")
	cmd.Flags().IntVar(&opts.Year, "year", 0, "only show this year")
	cmd.Flags().IntVar(&opts.Day, "day", 0, "only show this day")
	cmd.Flags().BoolVar(&opts.Changes, "changes", false, "only show answers that changed between runs")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	if opts.Year < 0 {
		return formatter.FailDomain(runner.NewUsageError(
			fmt.Sprintf("invalid year %d: must be positive", opts.Year)))
	}
	if opts.Day != 0 && !solution.ValidDay(opts.Day) {
		return formatter.FailDomain(runner.NewUsageError(
			fmt.Sprintf("day %d out of range, must be between %d..%d", opts.Day, solution.FirstDay, solution.LastDay)))
	}

	// Reading never creates a database.
	if _, err := os.Stat(opts.Database); errors.Is(err, os.ErrNotExist) {
		return formatter.Fail(ErrCodeHistory, ExitCommandError,
			fmt.Errorf("database not found: %s", opts.Database))
	}

	st, err := history.Open(opts.Database)
	if err != nil {
		return formatter.Fail(ErrCodeHistory, ExitCommandError,
			fmt.Errorf("failed to open history database: %w", err))
	}
	defer st.Close()

	ctx := commandContext(cmd)
	filter := history.Filter{Year: opts.Year, Day: opts.Day}

	if opts.Changes {
		changes, err := st.Changes(ctx, filter)
		if err != nil {
			return formatter.Fail(ErrCodeHistory, ExitCommandError, err)
		}
		if formatter.Format == "json" {
			return formatter.Success(changes)
		}
		writeChanges(formatter.Writer, changes)
		return nil
	}

	results, err := st.Results(ctx, filter)
	if err != nil {
		return formatter.Fail(ErrCodeHistory, ExitCommandError, err)
	}
	if formatter.Format == "json" {
		return formatter.Success(results)
	}
	writeResults(formatter.Writer, results)
	return nil
}

func writeResults(w io.Writer, results []history.Result) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No results recorded.")
		return
	}
	for _, r := range results {
		fmt.Fprintf(w, "#%d %s  %d day %2d, part1: %10s, part2: %10s  %s\n",
			r.Seq, r.RunID, r.Year, r.Day, r.Part1, r.Part2, shortDigest(r.Digest))
	}
}

func writeChanges(w io.Writer, changes []history.Change) {
	if len(changes) == 0 {
		fmt.Fprintln(w, "No answer changes.")
		return
	}
	for _, c := range changes {
		fmt.Fprintf(w, "%d day %2d changed in run #%d (%s), previously #%d (%s)\n",
			c.Current.Year, c.Current.Day, c.Current.Seq, c.Current.RunID, c.Previous.Seq, c.Previous.RunID)
		fmt.Fprintf(w, "\tpart1: %s -> %s\n", c.Previous.Part1, c.Current.Part1)
		fmt.Fprintf(w, "\tpart2: %s -> %s\n", c.Previous.Part2, c.Current.Part2)
	}
}

// shortDigest truncates a hex digest for display.
func shortDigest(d string) string {
	if len(d) > 12 {
		return d[:12]
	}
	return d
}
