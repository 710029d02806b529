package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/adventofcode/internal/cli"
)

func TestRun_SingleDay(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(&stdout, &stderr, []string{"2021", "1"})
	require.NoError(t, err)
	assert.Equal(t, "Year 2021:\n\tDay:  1, part1:          7, part2:          5\n", stdout.String())
}

func TestRun_UnsolvedDay(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(&stdout, &stderr, []string{"2020", "11"})
	require.NoError(t, err)
	assert.Equal(t, "Year 2020:\n\tDay: 11, part1:   unsolved, part2:   unsolved\n", stdout.String())
}

func TestRun_ExitCodes(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		code    int
		message string
	}{
		{"day out of range", []string{"2020", "25"}, cli.ExitCommandError, "day 25 out of range, must be between 1..24"},
		{"day zero", []string{"2020", "0"}, cli.ExitCommandError, "day 0 out of range"},
		{"unknown year", []string{"1999"}, cli.ExitCommandError, "no solutions found for year 1999"},
		{"non-numeric year", []string{"twenty"}, cli.ExitCommandError, `invalid year "twenty"`},
		{"too many args", []string{"2020", "1", "2"}, cli.ExitCommandError, "accepts at most 2 arg"},
		{"unknown flag", []string{"--nope"}, cli.ExitCommandError, "unknown flag"},
		{"invalid format", []string{"--format", "xml"}, cli.ExitCommandError, `invalid format "xml"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run(&stdout, &stderr, tt.args)
			require.Error(t, err)
			assert.Equal(t, tt.code, cli.GetExitCode(err))
			assert.Contains(t, err.Error(), tt.message)
			assert.Empty(t, stdout.String())
		})
	}
}

func TestRun_CheckEmbeddedAnswers(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(&stdout, &stderr, []string{"check"})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Passed: 17, Failed: 0, Unsolved: 1, Unknown: 0")
}
