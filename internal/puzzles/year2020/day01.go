package year2020

import (
	_ "embed"

	"github.com/roach88/adventofcode/internal/puzzles/input"
)

//go:embed inputs/day01.txt
var day01Input string

const day01Target = 2020

func day01Entries() []int64 {
	var entries []int64
	for _, line := range input.Lines(day01Input) {
		entries = append(entries, input.Int(line))
	}
	return entries
}

// day01Part1 multiplies the two entries that sum to 2020.
func day01Part1() int64 {
	seen := make(map[int64]bool)
	for _, n := range day01Entries() {
		if seen[day01Target-n] {
			return n * (day01Target - n)
		}
		seen[n] = true
	}
	panic("no pair sums to 2020")
}

// day01Part2 multiplies the three entries that sum to 2020.
func day01Part2() int64 {
	entries := day01Entries()
	for i, a := range entries {
		seen := make(map[int64]bool)
		for _, b := range entries[i+1:] {
			c := day01Target - a - b
			if seen[c] {
				return a * b * c
			}
			seen[b] = true
		}
	}
	panic("no triple sums to 2020")
}
