package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/jsreview/internal/canonical"
	"github.com/roach88/jsreview/internal/harness"
)

// ErrRunNotFound is returned by ReadReport for an unknown run ID.
var ErrRunNotFound = errors.New("run not found")

// RunSummary describes one archived run.
type RunSummary struct {
	ID           string `json:"id"`
	LessonCount  int    `json:"lesson_count"`
	FailedCount  int    `json:"failed_count"`
	ReportDigest string `json:"report_digest"`
}

// WriteReport archives report under runID in a single transaction.
//
// Each completed outcome stores its lines plus a transcript digest; the run
// row stores the digest of the whole canonical snapshot so identical reports
// can be recognized across runs.
func (s *Store) WriteReport(ctx context.Context, runID string, report *harness.Report) (err error) {
	snapshot, err := report.Snapshot()
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write report: begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, lesson_count, failed_count, report_digest)
		VALUES (?, ?, ?, ?)
	`,
		runID,
		len(report.Outcomes),
		len(report.Failed()),
		canonical.Digest(canonical.DomainReport, snapshot),
	)
	if err != nil {
		return fmt.Errorf("write report: insert run: %w", err)
	}

	for pos, o := range report.Outcomes {
		if err = writeOutcome(ctx, tx, runID, pos, o); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("write report: commit: %w", err)
	}
	return nil
}

func writeOutcome(ctx context.Context, tx *sql.Tx, runID string, pos int, o harness.Outcome) error {
	digest := ""
	if o.OK() {
		d, err := canonical.LinesDigest(o.Output)
		if err != nil {
			return fmt.Errorf("outcome %d: %w", pos, err)
		}
		digest = d
	}

	_, err := tx.ExecContext(ctx, `
		INSERT INTO outcomes (run_id, position, lesson, lesson_id, status, reason, digest)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, runID, pos, o.Lesson, o.LessonID, string(o.Status), o.Reason, digest)
	if err != nil {
		return fmt.Errorf("outcome %d: %w", pos, err)
	}

	for n, line := range o.Output {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO lines (run_id, position, line_no, text)
			VALUES (?, ?, ?, ?)
		`, runID, pos, n, line)
		if err != nil {
			return fmt.Errorf("outcome %d line %d: %w", pos, n, err)
		}
	}
	return nil
}

// ReadReport loads an archived report. Outcomes and lines come back in
// their original order.
func (s *Store) ReadReport(ctx context.Context, runID string) (*harness.Report, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM runs WHERE id = ?`, runID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT lesson, lesson_id, status, reason
		FROM outcomes
		WHERE run_id = ?
		ORDER BY position ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query outcomes: %w", err)
	}
	defer rows.Close()

	report := harness.NewReport()
	for rows.Next() {
		var o harness.Outcome
		var status string
		if err := rows.Scan(&o.Lesson, &o.LessonID, &status, &o.Reason); err != nil {
			return nil, fmt.Errorf("scan outcome: %w", err)
		}
		o.Status = harness.Status(status)
		report.Add(o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate outcomes: %w", err)
	}

	for pos := range report.Outcomes {
		if !report.Outcomes[pos].OK() {
			continue
		}
		lines, err := s.readLines(ctx, runID, pos)
		if err != nil {
			return nil, err
		}
		report.Outcomes[pos].Output = lines
	}
	return report, nil
}

func (s *Store) readLines(ctx context.Context, runID string, pos int) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT text FROM lines
		WHERE run_id = ? AND position = ?
		ORDER BY line_no ASC
	`, runID, pos)
	if err != nil {
		return nil, fmt.Errorf("query lines: %w", err)
	}
	defer rows.Close()

	lines := []string{}
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("scan line: %w", err)
		}
		lines = append(lines, text)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lines: %w", err)
	}
	return lines, nil
}

// ListRuns returns a summary of every archived run, ordered by ID.
// UUIDv7 IDs sort by creation time.
func (s *Store) ListRuns(ctx context.Context) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, lesson_count, failed_count, report_digest
		FROM runs
		ORDER BY id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []RunSummary{}
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(&r.ID, &r.LessonCount, &r.FailedCount, &r.ReportDigest); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}
