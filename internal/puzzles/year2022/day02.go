package year2022

import (
	_ "embed"
	"fmt"

	"github.com/roach88/adventofcode/internal/puzzles/input"
)

//go:embed inputs/day02.txt
var day02Input string

// Shapes are numbered so that shape (s+1)%3 beats shape s.
const (
	rock = iota
	paper
	scissors
)

func shape(b byte, base byte) int64 {
	s := int64(b) - int64(base)
	if s < rock || s > scissors {
		panic(fmt.Sprintf("unknown shape %q", b))
	}
	return s
}

// score is the shape score plus 0, 3 or 6 for a loss, draw or win.
func score(theirs, mine int64) int64 {
	outcome := (mine - theirs + 4) % 3 // 0 loss, 1 draw, 2 win
	return mine + 1 + outcome*3
}

func rounds(fn func(theirs int64, col byte) int64) int64 {
	var total int64
	for _, line := range input.Lines(day02Input) {
		if len(line) != 3 {
			panic(fmt.Sprintf("malformed round %q", line))
		}
		theirs := shape(line[0], 'A')
		total += score(theirs, fn(theirs, line[2]))
	}
	return total
}

// day02Part1 reads the second column as the shape to play.
func day02Part1() int64 {
	return rounds(func(_ int64, col byte) int64 {
		return shape(col, 'X')
	})
}

// day02Part2 reads the second column as the outcome to force.
func day02Part2() int64 {
	return rounds(func(theirs int64, col byte) int64 {
		outcome := shape(col, 'X') // 0 lose, 1 draw, 2 win
		return (theirs + outcome + 2) % 3
	})
}
