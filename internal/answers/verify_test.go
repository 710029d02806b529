package answers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/adventofcode/internal/runner"
)

func solved(v int64) runner.Outcome {
	return runner.Outcome{Solved: true, Value: v}
}

func TestVerify(t *testing.T) {
	f := &File{Answers: []Answer{
		{Year: 2020, Day: 1, Part1: ptr(514579), Part2: ptr(241861950)},
		{Year: 2020, Day: 2, Part1: ptr(10), Part2: ptr(20)},
		{Year: 2020, Day: 3, Part1: ptr(7)},
	}}
	rep := &runner.Report{Years: []runner.YearReport{{
		Year: 2020,
		Days: []runner.DayResult{
			{Day: 1, Part1: solved(514579), Part2: solved(241861950)},
			{Day: 2, Part1: solved(10), Part2: solved(21)},
			{Day: 3, Part1: solved(7), Part2: solved(99)},
			{Day: 4},
		},
	}}}

	v := Verify(rep, f)

	assert.Equal(t, 4, v.Passed)
	assert.Equal(t, 1, v.Failed)
	assert.Equal(t, 0, v.Unsolved)
	assert.Equal(t, 1, v.Unknown)
	assert.False(t, v.OK())

	// Day 4 has neither producers nor answers, so it adds no checks.
	require.Len(t, v.Checks, 6)

	failures := v.Failures()
	require.Len(t, failures, 1)
	assert.Equal(t, 2020, failures[0].Year)
	assert.Equal(t, 2, failures[0].Day)
	assert.Equal(t, 2, failures[0].Part)
	assert.Equal(t, int64(21), *failures[0].Got)
	assert.Equal(t, int64(20), *failures[0].Want)

	unknown := v.Checks[5]
	assert.Equal(t, StatusUnknown, unknown.Status)
	assert.Nil(t, unknown.Want)
}

func TestVerify_UnsolvedPartWithKnownAnswer(t *testing.T) {
	f := &File{Answers: []Answer{{Year: 2020, Day: 12, Part1: ptr(25), Part2: ptr(286)}}}
	rep := &runner.Report{Years: []runner.YearReport{{
		Year: 2020,
		Days: []runner.DayResult{{Day: 12, Part1: solved(25)}},
	}}}

	v := Verify(rep, f)

	assert.True(t, v.OK())
	assert.Equal(t, 1, v.Passed)
	assert.Equal(t, 1, v.Unsolved)
	require.Len(t, v.Checks, 2)
	assert.Equal(t, StatusUnsolved, v.Checks[1].Status)
	assert.Nil(t, v.Checks[1].Got)
}

func TestVerify_AnswersOutsideReportIgnored(t *testing.T) {
	f := &File{Answers: []Answer{{Year: 2024, Day: 1, Part1: ptr(11)}}}
	v := Verify(&runner.Report{}, f)

	assert.True(t, v.OK())
	assert.Empty(t, v.Checks)
}
