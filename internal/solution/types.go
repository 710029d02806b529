package solution

import (
	"fmt"
	"slices"
)

// Day bounds. Advent of Code registers puzzles for days 1 through 24.
const (
	FirstDay = 1
	LastDay  = 24
	DayCount = LastDay - FirstDay + 1
)

// ValidDay reports whether day is in [FirstDay, LastDay].
func ValidDay(day int) bool {
	return day >= FirstDay && day <= LastDay
}

// Producer computes one part's answer from an embedded input.
type Producer func() int64

// Part is an optional Producer. The zero value is unsolved.
type Part struct {
	produce Producer
}

// Unsolved is the part with no producer.
var Unsolved = Part{}

// Solved wraps p. Solved(nil) is Unsolved.
func Solved(p Producer) Part {
	return Part{produce: p}
}

// Get returns the producer and whether one is present.
func (p Part) Get() (Producer, bool) {
	return p.produce, p.produce != nil
}

// IsSolved reports whether the part has a producer.
func (p Part) IsSolved() bool {
	return p.produce != nil
}

// DaySlot holds the two parts of a day.
type DaySlot struct {
	Part1 Part
	Part2 Part
}

// Both returns a slot with both parts solved.
func Both(part1, part2 Producer) DaySlot {
	return DaySlot{Part1: Solved(part1), Part2: Solved(part2)}
}

// FirstOnly returns a slot where only part 1 is solved.
func FirstOnly(part1 Producer) DaySlot {
	return DaySlot{Part1: Solved(part1)}
}

// Empty returns a slot with neither part solved.
func Empty() DaySlot {
	return DaySlot{}
}

// Solved returns how many of the two parts have a producer.
func (s DaySlot) Solved() int {
	n := 0
	if s.Part1.IsSolved() {
		n++
	}
	if s.Part2.IsSolved() {
		n++
	}
	return n
}

// YearTable is the fixed set of 24 slots for one year.
// Index 0 holds day 1.
type YearTable [DayCount]DaySlot

// NewYearTable builds a table from slots keyed by 1-based day.
// Days not present in slots stay empty.
func NewYearTable(slots map[int]DaySlot) (YearTable, error) {
	var t YearTable
	days := make([]int, 0, len(slots))
	for day := range slots {
		days = append(days, day)
	}
	slices.Sort(days)
	for _, day := range days {
		if !ValidDay(day) {
			return YearTable{}, NewOutOfRangeError(0, day)
		}
		t[day-1] = slots[day]
	}
	return t, nil
}

// MustYearTable is like NewYearTable but panics on error.
// Use only for static declarations.
func MustYearTable(slots map[int]DaySlot) YearTable {
	t, err := NewYearTable(slots)
	if err != nil {
		panic(err)
	}
	return t
}

// Slot returns the slot for a 1-based day.
func (t *YearTable) Slot(day int) (DaySlot, error) {
	if !ValidDay(day) {
		return DaySlot{}, NewOutOfRangeError(0, day)
	}
	return t[day-1], nil
}

// SolvedDays returns the number of days with at least one solved part.
func (t *YearTable) SolvedDays() int {
	n := 0
	for _, s := range t {
		if s.Solved() > 0 {
			n++
		}
	}
	return n
}

// SolvedParts returns the number of solved parts across all days.
func (t *YearTable) SolvedParts() int {
	n := 0
	for _, s := range t {
		n += s.Solved()
	}
	return n
}

// Registry is the immutable mapping of years to their tables.
type Registry struct {
	years map[int]YearTable
	order []int
}

// NewRegistry builds a registry from tables keyed by year.
// The map is copied; later changes to it do not affect the registry.
func NewRegistry(tables map[int]YearTable) (*Registry, error) {
	r := &Registry{years: make(map[int]YearTable, len(tables))}
	for year, t := range tables {
		if year <= 0 {
			return nil, fmt.Errorf("invalid year %d: must be positive", year)
		}
		r.years[year] = t
	}
	r.order = make([]int, 0, len(r.years))
	for year := range r.years {
		r.order = append(r.order, year)
	}
	slices.Sort(r.order)
	return r, nil
}

// Year returns the table for year, or a YEAR_NOT_FOUND error.
func (r *Registry) Year(year int) (YearTable, error) {
	t, ok := r.years[year]
	if !ok {
		return YearTable{}, NewNotFoundError(year)
	}
	return t, nil
}

// Day returns the slot for (year, day).
func (r *Registry) Day(year, day int) (DaySlot, error) {
	if !ValidDay(day) {
		return DaySlot{}, NewOutOfRangeError(year, day)
	}
	t, err := r.Year(year)
	if err != nil {
		return DaySlot{}, err
	}
	return t[day-1], nil
}

// Years returns the registered years in ascending order.
func (r *Registry) Years() []int {
	return slices.Clone(r.order)
}

// Len returns the number of registered years.
func (r *Registry) Len() int {
	return len(r.order)
}
