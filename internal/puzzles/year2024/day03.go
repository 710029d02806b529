package year2024

import (
	_ "embed"
	"regexp"

	"github.com/roach88/adventofcode/internal/puzzles/input"
)

//go:embed inputs/day03.txt
var day03Input string

var instruction = regexp.MustCompile(`mul\((\d{1,3}),(\d{1,3})\)|do\(\)|don't\(\)`)

// scan sums the products of the mul instructions in memory. With
// conditionals, don't() disables later muls until the next do().
func scan(memory string, conditionals bool) int64 {
	var sum int64
	enabled := true
	for _, m := range instruction.FindAllStringSubmatch(memory, -1) {
		switch m[0] {
		case "do()":
			enabled = true
		case "don't()":
			enabled = false
		default:
			if enabled || !conditionals {
				sum += input.Int(m[1]) * input.Int(m[2])
			}
		}
	}
	return sum
}

func day03Part1() int64 {
	return scan(day03Input, false)
}

func day03Part2() int64 {
	return scan(day03Input, true)
}
