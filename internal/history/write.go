package history

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/adventofcode/internal/digest"
	"github.com/roach88/adventofcode/internal/runner"
)

// Run is one recorded invocation of the runner.
type Run struct {
	Seq       int64  `json:"seq"`
	ID        string `json:"id"`
	Selection string `json:"selection"`
	Days      int    `json:"days"`
	Solved    int    `json:"solved"`
}

// RecordRun writes a report as one run with a result row per day.
// Everything is written in a single transaction.
func (s *Store) RecordRun(ctx context.Context, id, selection string, rep *runner.Report) (Run, error) {
	counts := rep.Counts()
	run := Run{ID: id, Selection: selection, Days: counts.Days, Solved: counts.Solved}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Run{}, fmt.Errorf("record run: begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	res, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, selection, days, solved)
		VALUES (?, ?, ?, ?)
	`, run.ID, run.Selection, run.Days, run.Solved)
	if err != nil {
		return Run{}, fmt.Errorf("record run: insert run: %w", err)
	}
	if run.Seq, err = res.LastInsertId(); err != nil {
		return Run{}, fmt.Errorf("record run: seq: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO results
		(run_id, year, day,
		 part1_solved, part1_value, part1_elapsed_ns,
		 part2_solved, part2_value, part2_elapsed_ns,
		 digest)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return Run{}, fmt.Errorf("record run: prepare: %w", err)
	}
	defer stmt.Close()

	for _, y := range rep.Years {
		for _, d := range y.Days {
			sum, err := digest.DayDigest(y.Year, d.Day, partValue(d.Part1), partValue(d.Part2))
			if err != nil {
				return Run{}, fmt.Errorf("record run: %w", err)
			}
			_, err = stmt.ExecContext(ctx,
				run.ID, y.Year, d.Day,
				d.Part1.Solved, nullValue(d.Part1), int64(d.Part1.Elapsed),
				d.Part2.Solved, nullValue(d.Part2), int64(d.Part2.Elapsed),
				sum,
			)
			if err != nil {
				return Run{}, fmt.Errorf("record run: insert %d day %d: %w", y.Year, d.Day, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return Run{}, fmt.Errorf("record run: commit: %w", err)
	}
	return run, nil
}

func partValue(o runner.Outcome) digest.PartValue {
	return digest.PartValue{Solved: o.Solved, Value: o.Value}
}

func nullValue(o runner.Outcome) sql.NullInt64 {
	return sql.NullInt64{Int64: o.Value, Valid: o.Solved}
}
