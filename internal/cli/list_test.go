package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCommand_Text(t *testing.T) {
	out, err := execute(NewListCommand(testRootOptions(t, "text")))
	require.NoError(t, err)
	assertGolden(t, "list", out)
}

func TestListCommand_JSON(t *testing.T) {
	out, err := execute(NewListCommand(testRootOptions(t, "json")))
	require.NoError(t, err)

	var result ListResult
	resp := decodeResponse(t, out, &result)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, ListResult{
		Years: []YearSummary{
			{Year: 2020, Days: []int{1, 12}, Parts: 3},
			{Year: 2021, Days: []int{1}, Parts: 2},
		},
		Days:  3,
		Parts: 5,
	}, result)
}

func TestListCommand_RejectsArgs(t *testing.T) {
	_, err := execute(NewListCommand(testRootOptions(t, "text")), "2020")
	require.Error(t, err)
}

func TestListCommand_DoesNotRunProducers(t *testing.T) {
	calls := 0
	reg := registryWith(t, func() int64 {
		calls++
		return 0
	})
	rootOpts := testRootOptions(t, "text")
	rootOpts.Registry = reg

	_, err := execute(NewListCommand(rootOpts))
	require.NoError(t, err)
	assert.Zero(t, calls)
}

func TestJoinInts(t *testing.T) {
	assert.Equal(t, "", joinInts(nil))
	assert.Equal(t, "7", joinInts([]int{7}))
	assert.Equal(t, "1, 12, 24", joinInts([]int{1, 12, 24}))
}
