package history

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/roach88/adventofcode/internal/runner"
)

// Result is one recorded day.
type Result struct {
	Seq    int64          `json:"seq"`
	RunID  string         `json:"run_id"`
	Year   int            `json:"year"`
	Day    int            `json:"day"`
	Part1  runner.Outcome `json:"part1"`
	Part2  runner.Outcome `json:"part2"`
	Digest string         `json:"digest"`
}

// Change is a day whose answers differ from its previous recording.
type Change struct {
	Previous Result `json:"previous"`
	Current  Result `json:"current"`
}

// Filter narrows Results and Changes. Zero fields match everything.
type Filter struct {
	Year int
	Day  int
}

func (f Filter) where() (string, []any) {
	var (
		clauses []string
		args    []any
	)
	if f.Year != 0 {
		clauses = append(clauses, "r.year = ?")
		args = append(args, f.Year)
	}
	if f.Day != 0 {
		clauses = append(clauses, "r.day = ?")
		args = append(args, f.Day)
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}

// Runs returns all recorded runs ordered by seq.
// Returns an empty slice (not nil) when nothing has been recorded.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, id, selection, days, solved
		FROM runs
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.Seq, &r.ID, &r.Selection, &r.Days, &r.Solved); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// Results returns recorded days ordered by seq, year, day.
func (s *Store) Results(ctx context.Context, f Filter) ([]Result, error) {
	return s.queryResults(ctx, f, "runs.seq ASC, r.year ASC, r.day ASC")
}

// Changes returns every recording of a day whose digest differs from the
// recording before it. Ordered by year, day, seq.
func (s *Store) Changes(ctx context.Context, f Filter) ([]Change, error) {
	results, err := s.queryResults(ctx, f, "r.year ASC, r.day ASC, runs.seq ASC")
	if err != nil {
		return nil, err
	}

	changes := []Change{}
	for i := 1; i < len(results); i++ {
		prev, cur := results[i-1], results[i]
		if prev.Year != cur.Year || prev.Day != cur.Day {
			continue
		}
		if prev.Digest != cur.Digest {
			changes = append(changes, Change{Previous: prev, Current: cur})
		}
	}
	return changes, nil
}

func (s *Store) queryResults(ctx context.Context, f Filter, order string) ([]Result, error) {
	where, args := f.where()
	rows, err := s.db.QueryContext(ctx, `
		SELECT runs.seq, r.run_id, r.year, r.day,
		       r.part1_solved, r.part1_value, r.part1_elapsed_ns,
		       r.part2_solved, r.part2_value, r.part2_elapsed_ns,
		       r.digest
		FROM results r
		JOIN runs ON runs.id = r.run_id
		`+where+`
		ORDER BY `+order, args...)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	results := []Result{}
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate results: %w", err)
	}
	return results, nil
}

func scanResult(rows *sql.Rows) (Result, error) {
	var (
		r                  Result
		v1, v2             sql.NullInt64
		elapsed1, elapsed2 int64
	)
	err := rows.Scan(&r.Seq, &r.RunID, &r.Year, &r.Day,
		&r.Part1.Solved, &v1, &elapsed1,
		&r.Part2.Solved, &v2, &elapsed2,
		&r.Digest)
	if err != nil {
		return Result{}, fmt.Errorf("scan result: %w", err)
	}
	r.Part1.Value, r.Part1.Elapsed = v1.Int64, time.Duration(elapsed1)
	r.Part2.Value, r.Part2.Elapsed = v2.Int64, time.Duration(elapsed2)
	return r, nil
}
