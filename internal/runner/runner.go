package runner

import (
	"log/slog"

	"github.com/roach88/adventofcode/internal/solution"
)

// Runner executes selections against a registry.
type Runner struct {
	registry *solution.Registry
	clock    Clock
	logger   *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithClock overrides the clock used for elapsed times.
func WithClock(c Clock) Option {
	return func(r *Runner) { r.clock = c }
}

// WithLogger overrides the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// New creates a Runner over reg.
func New(reg *solution.Registry, opts ...Option) *Runner {
	r := &Runner{
		registry: reg,
		clock:    SystemClock{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes every producer in the selection and returns the report.
//
// Errors:
//   - *UsageError if the selection is invalid (checked before any lookup)
//   - *solution.LookupError with YEAR_NOT_FOUND if the year filter is unknown
//
// Producer panics are not recovered.
func (r *Runner) Run(sel Selection) (*Report, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}

	years := r.registry.Years()
	if year, ok := sel.Year(); ok {
		if _, err := r.registry.Year(year); err != nil {
			return nil, err
		}
		years = []int{year}
	}

	r.logger.Debug("run started", "selection", sel.String(), "years", len(years))

	report := &Report{Years: make([]YearReport, 0, len(years))}
	for _, year := range years {
		table, err := r.registry.Year(year)
		if err != nil {
			return nil, err
		}

		block := YearReport{Year: year}
		for _, day := range selectedDays(sel) {
			slot, err := table.Slot(day)
			if err != nil {
				return nil, err
			}
			block.Days = append(block.Days, DayResult{
				Day:   day,
				Part1: r.execute(year, day, 1, slot.Part1),
				Part2: r.execute(year, day, 2, slot.Part2),
			})
		}
		report.Years = append(report.Years, block)
	}

	counts := report.Counts()
	r.logger.Debug("run finished", "days", counts.Days, "solved", counts.Solved, "unsolved", counts.Unsolved)
	return report, nil
}

// execute runs one part, if solved, and times it.
func (r *Runner) execute(year, day, part int, p solution.Part) Outcome {
	produce, ok := p.Get()
	if !ok {
		return Outcome{}
	}

	r.logger.Debug("producer started", "year", year, "day", day, "part", part)
	start := r.clock.Now()
	value := produce()
	elapsed := r.clock.Now().Sub(start)
	r.logger.Debug("producer finished", "year", year, "day", day, "part", part,
		"value", value, "elapsed", elapsed)

	return Outcome{Solved: true, Value: value, Elapsed: elapsed}
}

// selectedDays returns the days a selection covers, ascending.
func selectedDays(sel Selection) []int {
	if day, ok := sel.Day(); ok {
		return []int{day}
	}
	days := make([]int, 0, solution.DayCount)
	for d := solution.FirstDay; d <= solution.LastDay; d++ {
		days = append(days, d)
	}
	return days
}
