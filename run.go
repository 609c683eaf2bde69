package jdex

import (
	"context"
	"time"
)

// Run records one scrape job execution.
type Run struct {
	ID         string    `json:"id"`
	SourceID   string    `json:"sourceId"`
	Title      string    `json:"title"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
	Objects    int       `json:"objects"`
	Members    int       `json:"members"`

	// IndexHash is a digest of the data file the run produced. Empty for
	// failed runs.
	IndexHash string `json:"indexHash"`

	// Error holds the failure message of a failed run.
	Error string `json:"error"`
}

// Failed reports whether the run ended in an error.
func (r *Run) Failed() bool {
	return r.Error != ""
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.SourceID == "" {
		return Errorf(EINVALID, "run source required")
	}
	if r.StartedAt.IsZero() {
		return Errorf(EINVALID, "run start time required")
	}
	if r.FinishedAt.Before(r.StartedAt) {
		return Errorf(EINVALID, "run cannot finish before it starts")
	}
	return nil
}

// RunService represents a ledger of scrape runs.
type RunService interface {
	// CreateRun records a finished run and assigns its ID.
	CreateRun(ctx context.Context, run *Run) error

	// FindRuns retrieves runs matching the filter, newest first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)

	// DeleteRuns removes every run of the given source and returns how
	// many were removed.
	DeleteRuns(ctx context.Context, sourceID string) (int, error)
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	SourceID *string `json:"sourceId"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
