package runner

import (
	"strconv"
	"time"
)

// UnsolvedPlaceholder is rendered in place of a missing part.
const UnsolvedPlaceholder = "unsolved"

// Outcome is the result of one part.
type Outcome struct {
	Solved  bool          `json:"solved"`
	Value   int64         `json:"value"`
	Elapsed time.Duration `json:"elapsed_ns"`
}

// String returns the decimal value, or UnsolvedPlaceholder.
func (o Outcome) String() string {
	if !o.Solved {
		return UnsolvedPlaceholder
	}
	return strconv.FormatInt(o.Value, 10)
}

// DayResult holds both parts of one day.
type DayResult struct {
	Day   int     `json:"day"`
	Part1 Outcome `json:"part1"`
	Part2 Outcome `json:"part2"`
}

// YearReport is the block of results for one year.
type YearReport struct {
	Year int         `json:"year"`
	Days []DayResult `json:"days"`
}

// Report is the output of a run.
type Report struct {
	Years []YearReport `json:"years"`
}

// Counts summarizes a report.
type Counts struct {
	Days     int `json:"days"`
	Solved   int `json:"solved"`
	Unsolved int `json:"unsolved"`
}

// Counts returns the number of days and solved/unsolved parts.
func (r *Report) Counts() Counts {
	var c Counts
	for _, y := range r.Years {
		for _, d := range y.Days {
			c.Days++
			for _, o := range []Outcome{d.Part1, d.Part2} {
				if o.Solved {
					c.Solved++
				} else {
					c.Unsolved++
				}
			}
		}
	}
	return c
}

// Day finds the result for (year, day).
func (r *Report) Day(year, day int) (DayResult, bool) {
	for _, y := range r.Years {
		if y.Year != year {
			continue
		}
		for _, d := range y.Days {
			if d.Day == day {
				return d, true
			}
		}
	}
	return DayResult{}, false
}
