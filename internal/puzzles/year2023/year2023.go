// Package year2023 registers the 2023 puzzles.
package year2023

import "github.com/roach88/adventofcode/internal/solution"

// Solutions returns the 2023 table.
func Solutions() solution.YearTable {
	return solution.MustYearTable(map[int]solution.DaySlot{
		6: solution.Both(day06Part1, day06Part2),
	})
}
