package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/adventofcode/internal/history"
	"github.com/roach88/adventofcode/internal/testutil"
)

// seedHistory records 2020 day 1, 2020 day 12, then 2020 day 1 again.
func seedHistory(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "aoc.db")
	ids := testutil.NewFixedIDs("run-1", "run-2", "run-3")
	reg := testRegistry(t)

	recordTestRun(t, dbPath, ids, reg, "2020", "1")
	recordTestRun(t, dbPath, ids, reg, "2020", "12")
	recordTestRun(t, dbPath, ids, reg, "2020", "1")
	return dbPath
}

func TestHistoryCommand_Results(t *testing.T) {
	dbPath := seedHistory(t)

	out, err := execute(NewHistoryCommand(testRootOptions(t, "text")), "--db", dbPath)
	require.NoError(t, err)
	assertGolden(t, "history", out)
}

func TestHistoryCommand_Filter(t *testing.T) {
	dbPath := seedHistory(t)

	out, err := execute(NewHistoryCommand(testRootOptions(t, "json")), "--db", dbPath, "--day", "12")
	require.NoError(t, err)

	var results []history.Result
	decodeResponse(t, out, &results)
	require.Len(t, results, 1)
	assert.Equal(t, "run-2", results[0].RunID)
	assert.Equal(t, int64(25), results[0].Part1.Value)
	assert.False(t, results[0].Part2.Solved)
}

func TestHistoryCommand_Changes(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "aoc.db")
	ids := testutil.NewFixedIDs("run-1", "run-2", "run-3")

	recordTestRun(t, dbPath, ids, testRegistry(t), "2020", "1")
	recordTestRun(t, dbPath, ids, registryWith(t, constant(1)), "2020", "1")
	recordTestRun(t, dbPath, ids, registryWith(t, constant(1)), "2020", "1")

	out, err := execute(NewHistoryCommand(testRootOptions(t, "text")), "--db", dbPath, "--changes")
	require.NoError(t, err)
	assertGolden(t, "history_changes", out)
}

func TestHistoryCommand_NoChanges(t *testing.T) {
	dbPath := seedHistory(t)

	out, err := execute(NewHistoryCommand(testRootOptions(t, "text")), "--db", dbPath, "--changes")
	require.NoError(t, err)
	assert.Equal(t, "No answer changes.\n", out)
}

func TestHistoryCommand_EmptyFilter(t *testing.T) {
	dbPath := seedHistory(t)

	out, err := execute(NewHistoryCommand(testRootOptions(t, "text")), "--db", dbPath, "--year", "2021")
	require.NoError(t, err)
	assert.Equal(t, "No results recorded.\n", out)
}

func TestHistoryCommand_RequiresDB(t *testing.T) {
	_, err := execute(NewHistoryCommand(testRootOptions(t, "text")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "db" not set`)
}

func TestHistoryCommand_MissingDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "missing.db")

	_, err := execute(NewHistoryCommand(testRootOptions(t, "text")), "--db", dbPath)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "database not found")
	assert.NoFileExists(t, dbPath)
}

func TestHistoryCommand_InvalidDay(t *testing.T) {
	_, err := execute(NewHistoryCommand(testRootOptions(t, "text")), "--db", "unused.db", "--day", "25")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "day 25 out of range")
}

func TestShortDigest(t *testing.T) {
	assert.Equal(t, "abc", shortDigest("abc"))
	assert.Equal(t, "a4b0a9adda0b", shortDigest("a4b0a9adda0b10e156499137f4ae8e4129092a4ef334c9a4b9e246e899134bde"))
}
