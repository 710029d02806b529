// Package year2020 registers the 2020 puzzles.
package year2020

import "github.com/roach88/adventofcode/internal/solution"

// Solutions returns the 2020 table.
func Solutions() solution.YearTable {
	return solution.MustYearTable(map[int]solution.DaySlot{
		1:  solution.Both(day01Part1, day01Part2),
		12: solution.FirstOnly(day12Part1),
	})
}
