package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/roach88/adventofcode/internal/runner"
)

// createTestStore creates a new store in a temp directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func solved(v int64) runner.Outcome {
	return runner.Outcome{Solved: true, Value: v, Elapsed: time.Millisecond}
}

// testReport builds a one-year report with the given days.
func testReport(year int, days ...runner.DayResult) *runner.Report {
	return &runner.Report{Years: []runner.YearReport{{Year: year, Days: days}}}
}
