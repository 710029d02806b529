package year2021

import (
	_ "embed"

	"github.com/roach88/adventofcode/internal/puzzles/input"
)

//go:embed inputs/day01.txt
var day01Input string

// increases counts depths that are deeper than the one window positions
// earlier. Comparing sums of sliding windows of width w reduces to comparing
// the entries w apart, since the shared terms cancel.
func increases(depths []int64, window int) int64 {
	var n int64
	for i := window; i < len(depths); i++ {
		if depths[i] > depths[i-window] {
			n++
		}
	}
	return n
}

func day01Part1() int64 {
	return increases(input.Ints(day01Input), 1)
}

func day01Part2() int64 {
	return increases(input.Ints(day01Input), 3)
}
