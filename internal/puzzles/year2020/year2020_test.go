package year2020

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDay01(t *testing.T) {
	assert.Equal(t, int64(514579), day01Part1())
	assert.Equal(t, int64(241861950), day01Part2())
}

func TestDay12(t *testing.T) {
	assert.Equal(t, int64(25), day12Part1())
}

func TestHeadingTurn(t *testing.T) {
	east := compass['E']
	assert.Equal(t, compass['S'], east.turn(90))
	assert.Equal(t, compass['N'], east.turn(-90))
	assert.Equal(t, compass['W'], east.turn(180))
	assert.Equal(t, east, east.turn(360))
	assert.Equal(t, compass['N'], east.turn(270))
}

func TestSolutions(t *testing.T) {
	table := Solutions()

	slot, err := table.Slot(1)
	require.NoError(t, err)
	assert.Equal(t, 2, slot.Solved())

	slot, err = table.Slot(11)
	require.NoError(t, err)
	assert.Equal(t, 0, slot.Solved())

	slot, err = table.Slot(12)
	require.NoError(t, err)
	assert.True(t, slot.Part1.IsSolved())
	assert.False(t, slot.Part2.IsSolved())
}
