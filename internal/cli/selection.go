package cli

import (
	"fmt"
	"strconv"

	"github.com/roach88/adventofcode/internal/runner"
)

// parseSelection turns the positional [year] [day] arguments into a
// validated selection. It never consults the registry, so a bad day is
// reported even when the year is unknown.
func parseSelection(args []string) (runner.Selection, error) {
	if len(args) == 0 {
		return runner.All(), nil
	}

	year, err := strconv.Atoi(args[0])
	if err != nil {
		return runner.Selection{}, runner.NewUsageError(
			fmt.Sprintf("invalid year %q: must be a positive integer", args[0]))
	}

	sel := runner.ForYear(year)
	if len(args) > 1 {
		day, err := strconv.Atoi(args[1])
		if err != nil {
			return runner.Selection{}, runner.NewUsageError(
				fmt.Sprintf("invalid day %q: must be an integer between 1..24", args[1]))
		}
		sel = runner.ForDay(year, day)
	}

	if err := sel.Validate(); err != nil {
		return runner.Selection{}, err
	}
	return sel, nil
}
