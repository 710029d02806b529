package year2024

import (
	_ "embed"
	"fmt"
	"slices"

	"github.com/roach88/adventofcode/internal/puzzles/input"
)

//go:embed inputs/day01.txt
var day01Input string

func locationLists() (left, right []int64) {
	for _, line := range input.Lines(day01Input) {
		ids := input.Ints(line)
		if len(ids) != 2 {
			panic(fmt.Sprintf("expected two location IDs, got %q", line))
		}
		left = append(left, ids[0])
		right = append(right, ids[1])
	}
	return left, right
}

// day01Part1 pairs the lists smallest to smallest and sums the distances.
func day01Part1() int64 {
	left, right := locationLists()
	slices.Sort(left)
	slices.Sort(right)

	var total int64
	for i := range left {
		total += input.Abs(left[i] - right[i])
	}
	return total
}

// day01Part2 weights each left ID by how often it appears on the right.
func day01Part2() int64 {
	left, right := locationLists()
	counts := make(map[int64]int64, len(right))
	for _, id := range right {
		counts[id]++
	}

	var score int64
	for _, id := range left {
		score += id * counts[id]
	}
	return score
}
