package cli

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/roach88/adventofcode/internal/solution"
	"github.com/roach88/adventofcode/internal/testutil"
)

func constant(n int64) solution.Producer {
	return func() int64 { return n }
}

// testRegistry has a solved day, a half-solved day and a second year.
func testRegistry(t *testing.T) *solution.Registry {
	t.Helper()
	return registryWith(t, constant(241861950))
}

// registryWith is testRegistry with a different 2020 day 1 part 2.
func registryWith(t *testing.T, day1Part2 solution.Producer) *solution.Registry {
	t.Helper()
	reg, err := solution.NewRegistry(map[int]solution.YearTable{
		2020: solution.MustYearTable(map[int]solution.DaySlot{
			1:  solution.Both(constant(514579), day1Part2),
			12: solution.FirstOnly(constant(25)),
		}),
		2021: solution.MustYearTable(map[int]solution.DaySlot{
			1: solution.Both(constant(7), constant(5)),
		}),
	})
	require.NoError(t, err)
	return reg
}

func testRootOptions(t *testing.T, format string) *RootOptions {
	t.Helper()
	return &RootOptions{
		Format:   format,
		Registry: testRegistry(t),
		Clock:    testutil.NewStepClock(time.Millisecond),
	}
}

// execute runs cmd with args and returns stdout and the command error.
func execute(cmd *cobra.Command, args ...string) (string, error) {
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// decodeResponse parses a JSON envelope and decodes its data into v.
func decodeResponse(t *testing.T, out string, v any) CLIResponse {
	t.Helper()
	var resp struct {
		CLIResponse
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	if v != nil {
		require.NoError(t, json.Unmarshal(resp.Data, v))
	}
	return resp.CLIResponse
}

func assertGolden(t *testing.T, name, got string) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(got))
}
