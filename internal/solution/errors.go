package solution

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes lookup failures.
type ErrorCode string

const (
	// ErrCodeYearNotFound indicates no table is registered for the year.
	ErrCodeYearNotFound ErrorCode = "YEAR_NOT_FOUND"

	// ErrCodeDayOutOfRange indicates a day outside [FirstDay, LastDay].
	ErrCodeDayOutOfRange ErrorCode = "DAY_OUT_OF_RANGE"
)

// LookupError is returned by registry and table lookups.
type LookupError struct {
	Code    ErrorCode
	Year    int // 0 when not known
	Day     int // 0 when not relevant
	Message string
}

// Error implements the error interface.
func (e *LookupError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewNotFoundError creates a LookupError for an unregistered year.
func NewNotFoundError(year int) *LookupError {
	return &LookupError{
		Code:    ErrCodeYearNotFound,
		Year:    year,
		Message: fmt.Sprintf("no solutions found for year %d", year),
	}
}

// NewOutOfRangeError creates a LookupError for a day outside [1,24].
func NewOutOfRangeError(year, day int) *LookupError {
	return &LookupError{
		Code:    ErrCodeDayOutOfRange,
		Year:    year,
		Day:     day,
		Message: fmt.Sprintf("day %d out of range, must be between %d..%d", day, FirstDay, LastDay),
	}
}

// IsNotFound returns true if err is a YEAR_NOT_FOUND lookup error.
// Uses errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	var le *LookupError
	if errors.As(err, &le) {
		return le.Code == ErrCodeYearNotFound
	}
	return false
}

// IsOutOfRange returns true if err is a DAY_OUT_OF_RANGE lookup error.
func IsOutOfRange(err error) bool {
	var le *LookupError
	if errors.As(err, &le) {
		return le.Code == ErrCodeDayOutOfRange
	}
	return false
}
