package year2020

import (
	_ "embed"
	"fmt"

	"github.com/roach88/adventofcode/internal/puzzles/input"
)

//go:embed inputs/day12.txt
var day12Input string

type heading struct{ dx, dy int64 }

var compass = map[byte]heading{
	'N': {0, 1},
	'S': {0, -1},
	'E': {1, 0},
	'W': {-1, 0},
}

// turn rotates h clockwise by degrees, which must be a multiple of 90.
func (h heading) turn(degrees int64) heading {
	for i := int64(0); i < ((degrees%360+360)%360)/90; i++ {
		h = heading{h.dy, -h.dx}
	}
	return h
}

// day12Part1 returns the Manhattan distance the ship travels.
func day12Part1() int64 {
	var x, y int64
	facing := compass['E']

	for _, line := range input.Lines(day12Input) {
		action, value := line[0], input.Int(line[1:])
		switch action {
		case 'N', 'S', 'E', 'W':
			x += compass[action].dx * value
			y += compass[action].dy * value
		case 'L':
			facing = facing.turn(-value)
		case 'R':
			facing = facing.turn(value)
		case 'F':
			x += facing.dx * value
			y += facing.dy * value
		default:
			panic(fmt.Sprintf("unknown navigation action %q", action))
		}
	}
	return input.Abs(x) + input.Abs(y)
}
