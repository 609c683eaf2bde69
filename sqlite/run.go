package sqlite

import (
	"context"
	"strings"

	"github.com/fwojciec/jdex"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ jdex.RunService = (*RunService)(nil)

// RunService implements jdex.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun records a finished run with a generated ID.
func (s *RunService) CreateRun(ctx context.Context, run *jdex.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, source_id, title, started_at, finished_at, objects, members, index_hash, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.SourceID, run.Title, formatTime(run.StartedAt), formatTime(run.FinishedAt),
		run.Objects, run.Members, run.IndexHash, run.Error)

	return err
}

// FindRuns retrieves runs matching the filter, newest first.
func (s *RunService) FindRuns(ctx context.Context, filter jdex.RunFilter) ([]*jdex.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, source_id, title, started_at, finished_at, objects, members, index_hash, error
		FROM runs WHERE 1=1`)

	if filter.SourceID != nil {
		query.WriteString(" AND source_id = ?")
		args = append(args, *filter.SourceID)
	}

	query.WriteString(" ORDER BY started_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*jdex.Run
	for rows.Next() {
		var run jdex.Run
		var startedAt, finishedAt string

		if err := rows.Scan(&run.ID, &run.SourceID, &run.Title, &startedAt, &finishedAt,
			&run.Objects, &run.Members, &run.IndexHash, &run.Error); err != nil {
			return nil, err
		}

		if run.StartedAt, err = parseTime(startedAt, "started_at"); err != nil {
			return nil, err
		}
		if run.FinishedAt, err = parseTime(finishedAt, "finished_at"); err != nil {
			return nil, err
		}

		runs = append(runs, &run)
	}

	return runs, rows.Err()
}

// DeleteRuns removes every run recorded for sourceID.
func (s *RunService) DeleteRuns(ctx context.Context, sourceID string) (int, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM runs WHERE source_id = ?", sourceID)
	if err != nil {
		return 0, err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
