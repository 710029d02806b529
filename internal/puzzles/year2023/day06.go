package year2023

import (
	_ "embed"
	"fmt"
	"math"
	"strings"

	"github.com/roach88/adventofcode/internal/puzzles/input"
)

//go:embed inputs/day06.txt
var day06Input string

// race is one boat race: its duration and the distance to beat.
type race struct {
	time, record int64
}

func parseRaces(joinDigits bool) []race {
	lines := input.Lines(day06Input)
	if len(lines) != 2 {
		panic(fmt.Sprintf("expected 2 lines, got %d", len(lines)))
	}

	values := func(line, label string) []int64 {
		rest, ok := strings.CutPrefix(line, label)
		if !ok {
			panic(fmt.Sprintf("line %q lacks %q", line, label))
		}
		if joinDigits {
			rest = strings.Join(strings.Fields(rest), "")
		}
		return input.Ints(rest)
	}

	times := values(lines[0], "Time:")
	records := values(lines[1], "Distance:")
	if len(times) != len(records) {
		panic("time and distance counts differ")
	}

	races := make([]race, len(times))
	for i := range times {
		races[i] = race{time: times[i], record: records[i]}
	}
	return races
}

// ways counts the hold times h with h*(time-h) > record. The winning holds
// form an interval around time/2, so only its lower edge is searched for.
func (r race) ways() int64 {
	disc := float64(r.time*r.time - 4*r.record)
	if disc < 0 {
		return 0
	}
	lo := int64((float64(r.time) - math.Sqrt(disc)) / 2)
	for lo <= r.time/2 && lo*(r.time-lo) <= r.record {
		lo++
	}
	for lo > 0 && (lo-1)*(r.time-lo+1) > r.record {
		lo--
	}
	if lo > r.time/2 {
		return 0
	}
	return r.time - 2*lo + 1
}

func day06Part1() int64 {
	product := int64(1)
	for _, r := range parseRaces(false) {
		product *= r.ways()
	}
	return product
}

func day06Part2() int64 {
	return parseRaces(true)[0].ways()
}
