package runner

import (
	"fmt"
	"io"
)

// TextOptions controls text rendering.
type TextOptions struct {
	// Timings appends each part's elapsed time.
	Timings bool
}

// WriteText renders a report as one header per year and one line per day.
func WriteText(w io.Writer, rep *Report, opts TextOptions) error {
	for _, y := range rep.Years {
		if _, err := fmt.Fprintf(w, "Year %d:\n", y.Year); err != nil {
			return err
		}
		for _, d := range y.Days {
			if err := writeDay(w, d, opts); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeDay(w io.Writer, d DayResult, opts TextOptions) error {
	if !opts.Timings {
		_, err := fmt.Fprintf(w, "\tDay: %2d, part1: %10s, part2: %10s\n",
			d.Day, d.Part1, d.Part2)
		return err
	}
	_, err := fmt.Fprintf(w, "\tDay: %2d, part1: %10s (%9s), part2: %10s (%9s)\n",
		d.Day, d.Part1, elapsed(d.Part1), d.Part2, elapsed(d.Part2))
	return err
}

func elapsed(o Outcome) string {
	if !o.Solved {
		return "-"
	}
	return o.Elapsed.String()
}
