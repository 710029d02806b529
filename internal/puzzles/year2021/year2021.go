// Package year2021 registers the 2021 puzzles.
package year2021

import "github.com/roach88/adventofcode/internal/solution"

// Solutions returns the 2021 table.
func Solutions() solution.YearTable {
	return solution.MustYearTable(map[int]solution.DaySlot{
		1: solution.Both(day01Part1, day01Part2),
	})
}
