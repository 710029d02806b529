package runner

import (
	"errors"
	"fmt"

	"github.com/roach88/adventofcode/internal/solution"
)

// Selection chooses which years and days a run covers.
// The zero value selects everything.
type Selection struct {
	year    int
	day     int
	hasYear bool
	hasDay  bool
}

// All selects every day of every registered year.
func All() Selection {
	return Selection{}
}

// ForYear selects every day of one year.
func ForYear(year int) Selection {
	return Selection{year: year, hasYear: true}
}

// ForDay selects one day of one year.
func ForDay(year, day int) Selection {
	return Selection{year: year, day: day, hasYear: true, hasDay: true}
}

// AnyYearDay selects one day in every registered year.
func AnyYearDay(day int) Selection {
	return Selection{day: day, hasDay: true}
}

// Year returns the year filter, if any.
func (s Selection) Year() (int, bool) {
	return s.year, s.hasYear
}

// Day returns the day filter, if any.
func (s Selection) Day() (int, bool) {
	return s.day, s.hasDay
}

// Validate checks the selection without touching any registry.
func (s Selection) Validate() error {
	if s.hasYear && s.year <= 0 {
		return NewUsageError(fmt.Sprintf("invalid year %d: must be positive", s.year))
	}
	if s.hasDay && !solution.ValidDay(s.day) {
		return NewUsageError(fmt.Sprintf("day %d out of range, must be between %d..%d",
			s.day, solution.FirstDay, solution.LastDay))
	}
	return nil
}

// String describes the selection for logs.
func (s Selection) String() string {
	switch {
	case s.hasYear && s.hasDay:
		return fmt.Sprintf("year %d day %d", s.year, s.day)
	case s.hasYear:
		return fmt.Sprintf("year %d", s.year)
	case s.hasDay:
		return fmt.Sprintf("day %d of every year", s.day)
	default:
		return "all years"
	}
}

// UsageError reports a malformed or out-of-range request.
type UsageError struct {
	Message string
}

// Error implements the error interface.
func (e *UsageError) Error() string {
	return e.Message
}

// NewUsageError creates a UsageError.
func NewUsageError(message string) *UsageError {
	return &UsageError{Message: message}
}

// IsUsageError returns true if err is, or wraps, a UsageError.
func IsUsageError(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}
