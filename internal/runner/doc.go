// Package runner executes registered producers and renders their results.
//
// A run is a single linear pass. Years are visited in ascending order and,
// within a year, days 1 through 24 (or only the selected day). For each day
// part 1 runs before part 2. Nothing is parallelized and nothing is retried:
// a producer that panics aborts the run, since a fault in a fixed embedded
// input is a bug in that day, not a condition to recover from.
//
// Selections are validated before the registry is consulted, so an
// out-of-range day never reaches a lookup.
package runner
