package year2024

import (
	_ "embed"
	"slices"

	"github.com/roach88/adventofcode/internal/puzzles/input"
)

//go:embed inputs/day02.txt
var day02Input string

// safe reports whether levels strictly increase or decrease by 1 to 3 at
// every step.
func safe(levels []int64) bool {
	if len(levels) < 2 {
		return true
	}
	increasing := levels[1] > levels[0]
	for i := 1; i < len(levels); i++ {
		d := levels[i] - levels[i-1]
		if !increasing {
			d = -d
		}
		if d < 1 || d > 3 {
			return false
		}
	}
	return true
}

// dampened reports whether removing at most one level makes levels safe.
func dampened(levels []int64) bool {
	if safe(levels) {
		return true
	}
	for i := range levels {
		if safe(slices.Delete(slices.Clone(levels), i, i+1)) {
			return true
		}
	}
	return false
}

func countReports(ok func([]int64) bool) int64 {
	var n int64
	for _, line := range input.Lines(day02Input) {
		if ok(input.Ints(line)) {
			n++
		}
	}
	return n
}

func day02Part1() int64 {
	return countReports(safe)
}

func day02Part2() int64 {
	return countReports(dampened)
}
