package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/jdex"
)

// Ensure LoggingRunService implements jdex.RunService.
var _ jdex.RunService = (*LoggingRunService)(nil)

// LoggingRunService wraps a RunService with debug logging.
type LoggingRunService struct {
	next   jdex.RunService
	logger *slog.Logger
}

// NewLoggingRunService creates a new LoggingRunService.
func NewLoggingRunService(next jdex.RunService, logger *slog.Logger) *LoggingRunService {
	return &LoggingRunService{next: next, logger: logger}
}

func (s *LoggingRunService) CreateRun(ctx context.Context, run *jdex.Run) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("create run",
			"source", run.SourceID,
			"id", run.ID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateRun(ctx, run)
}

func (s *LoggingRunService) FindRuns(ctx context.Context, filter jdex.RunFilter) (runs []*jdex.Run, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find runs",
			"count", len(runs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRuns(ctx, filter)
}

func (s *LoggingRunService) DeleteRuns(ctx context.Context, sourceID string) (n int, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("delete runs",
			"source", sourceID,
			"count", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteRuns(ctx, sourceID)
}
