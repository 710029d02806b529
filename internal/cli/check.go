package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/adventofcode/internal/answers"
	"github.com/roach88/adventofcode/internal/puzzles"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Answers string // answers file; empty means the embedded answers
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check [year] [day]",
		Short: "Verify solutions against expected answers",
		Long: `Run the selected solutions and compare every part with an expected
answer.

Answers are read from --answers (.yaml, .yml or .cue). Without it, the
answers embedded alongside the puzzle inputs are used.

Each part is reported as:
  ✓ pass      the producer matched the expected answer
  ✗ fail      the producer returned something else
  - unsolved  an answer is known but no producer is registered
  ? unknown   the producer ran but no answer is recorded

Exit codes:
  0 - No part failed
  1 - One or more parts failed
  2 - Command error (invalid arguments, unknown year, unreadable answers)

Examples:
  aoc check
  aoc check 2020
  aoc check 2024 3 --answers ./answers.cue`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Answers, "answers", "", "answers file (.yaml, .yml or .cue); defaults to the embedded answers")

	return cmd
}

func runCheck(opts *CheckOptions, args []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	logger := newLogger(formatter.GetErrWriter(), opts.RootOptions)

	sel, err := parseSelection(args)
	if err != nil {
		return formatter.FailDomain(err)
	}

	expected, err := loadAnswers(opts.Answers)
	if err != nil {
		return formatter.Fail(ErrCodeAnswers, ExitCommandError, err)
	}
	formatter.VerboseLog("Loaded %d answer(s)", len(expected.Answers))

	rep, err := opts.newRunner(logger).Run(sel)
	if err != nil {
		return formatter.FailDomain(err)
	}

	v := answers.Verify(rep, expected)

	if formatter.Format == "json" {
		if err := formatter.Success(v); err != nil {
			return err
		}
	} else {
		writeVerification(formatter.Writer, v)
	}

	if !v.OK() {
		return NewExitError(ExitFailure, fmt.Sprintf("%d part(s) failed", v.Failed))
	}
	return nil
}

func loadAnswers(path string) (*answers.File, error) {
	if path == "" {
		return puzzles.Answers()
	}
	return answers.Load(path)
}

var statusMarks = map[answers.Status]string{
	answers.StatusPass:     "✓",
	answers.StatusFail:     "✗",
	answers.StatusUnsolved: "-",
	answers.StatusUnknown:  "?",
}

func writeVerification(w io.Writer, v *answers.Verification) {
	for _, c := range v.Checks {
		fmt.Fprintf(w, "%s %d day %2d part %d: %s\n", statusMarks[c.Status], c.Year, c.Day, c.Part, describeCheck(c))
	}
	if len(v.Checks) > 0 {
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Passed: %d, Failed: %d, Unsolved: %d, Unknown: %d\n",
		v.Passed, v.Failed, v.Unsolved, v.Unknown)
}

func describeCheck(c answers.Check) string {
	switch c.Status {
	case answers.StatusPass:
		return fmt.Sprintf("%d", *c.Got)
	case answers.StatusFail:
		return fmt.Sprintf("got %d, want %d", *c.Got, *c.Want)
	case answers.StatusUnsolved:
		return fmt.Sprintf("unsolved (want %d)", *c.Want)
	default:
		return fmt.Sprintf("%d (no recorded answer)", *c.Got)
	}
}
