package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/adventofcode/internal/solution"
)

// YearSummary describes the registered solutions of one year.
type YearSummary struct {
	Year  int   `json:"year"`
	Days  []int `json:"days"`  // days with at least one solved part
	Parts int   `json:"parts"` // solved parts across all days
}

// ListResult holds the output of the list command.
type ListResult struct {
	Years []YearSummary `json:"years"`
	Days  int           `json:"days"`
	Parts int           `json:"parts"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered years and solved days",
		Long: `List every registered year with the days that have at least one
solved part. No solutions are run.

Examples:
  aoc list
  aoc list --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}

	return cmd
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	result, err := summarize(opts.registry())
	if err != nil {
		return formatter.FailDomain(err)
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	w := formatter.Writer
	for _, y := range result.Years {
		fmt.Fprintf(w, "Year %d: %d day(s), %d part(s) solved\n", y.Year, len(y.Days), y.Parts)
		if len(y.Days) > 0 {
			fmt.Fprintf(w, "\tDays: %s\n", joinInts(y.Days))
		}
	}
	fmt.Fprintf(w, "Total: %d year(s), %d day(s), %d part(s)\n", len(result.Years), result.Days, result.Parts)
	return nil
}

func summarize(reg *solution.Registry) (ListResult, error) {
	result := ListResult{Years: []YearSummary{}}
	for _, year := range reg.Years() {
		table, err := reg.Year(year)
		if err != nil {
			return ListResult{}, err
		}

		summary := YearSummary{Year: year, Days: []int{}, Parts: table.SolvedParts()}
		for day := solution.FirstDay; day <= solution.LastDay; day++ {
			slot, err := table.Slot(day)
			if err != nil {
				return ListResult{}, err
			}
			if slot.Solved() > 0 {
				summary.Days = append(summary.Days, day)
			}
		}

		result.Years = append(result.Years, summary)
		result.Days += len(summary.Days)
		result.Parts += summary.Parts
	}
	return result, nil
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}
