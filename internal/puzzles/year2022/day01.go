package year2022

import (
	_ "embed"
	"slices"

	"github.com/roach88/adventofcode/internal/puzzles/input"
)

//go:embed inputs/day01.txt
var day01Input string

// elfCalories returns each elf's total, largest first.
func elfCalories() []int64 {
	var totals []int64
	for _, block := range input.Blocks(day01Input) {
		var sum int64
		for _, line := range block {
			sum += input.Int(line)
		}
		totals = append(totals, sum)
	}
	slices.Sort(totals)
	slices.Reverse(totals)
	return totals
}

func day01Part1() int64 {
	return elfCalories()[0]
}

func day01Part2() int64 {
	top := elfCalories()[:3]
	return top[0] + top[1] + top[2]
}
