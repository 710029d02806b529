// Package input has helpers for parsing embedded puzzle input.
//
// Embedded input is fixed at build time, so every helper panics on malformed
// data instead of returning an error.
package input

import (
	"strconv"
	"strings"
)

// Lines splits s into lines, dropping the trailing newline.
func Lines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Blocks splits s into blank-line separated groups of lines.
func Blocks(s string) [][]string {
	var blocks [][]string
	for _, b := range strings.Split(strings.TrimRight(s, "\n"), "\n\n") {
		blocks = append(blocks, Lines(b))
	}
	return blocks
}

// Int parses a base-10 int64. It panics if s is not a number.
func Int(s string) int64 {
	return MustGet(strconv.ParseInt(strings.TrimSpace(s), 10, 64))
}

// Ints parses every whitespace-separated field of s.
func Ints(s string) []int64 {
	fields := strings.Fields(s)
	out := make([]int64, len(fields))
	for i, f := range fields {
		out[i] = Int(f)
	}
	return out
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Abs returns |x|.
func Abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
