// Package year2024 registers the 2024 puzzles.
package year2024

import "github.com/roach88/adventofcode/internal/solution"

// Solutions returns the 2024 table.
func Solutions() solution.YearTable {
	return solution.MustYearTable(map[int]solution.DaySlot{
		1: solution.Both(day01Part1, day01Part2),
		2: solution.Both(day02Part1, day02Part2),
		3: solution.Both(day03Part1, day03Part2),
	})
}
