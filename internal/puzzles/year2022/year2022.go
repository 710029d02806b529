// Package year2022 registers the 2022 puzzles.
package year2022

import "github.com/roach88/adventofcode/internal/solution"

// Solutions returns the 2022 table.
func Solutions() solution.YearTable {
	return solution.MustYearTable(map[int]solution.DaySlot{
		1: solution.Both(day01Part1, day01Part2),
		2: solution.Both(day02Part1, day02Part2),
	})
}
