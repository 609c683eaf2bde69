package mock

import (
	"context"

	"github.com/fwojciec/jdex"
)

var _ jdex.RunService = (*RunService)(nil)

// RunService is a mock implementation of jdex.RunService.
type RunService struct {
	CreateRunFn  func(ctx context.Context, run *jdex.Run) error
	FindRunsFn   func(ctx context.Context, filter jdex.RunFilter) ([]*jdex.Run, error)
	DeleteRunsFn func(ctx context.Context, sourceID string) (int, error)
}

func (s *RunService) CreateRun(ctx context.Context, run *jdex.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) FindRuns(ctx context.Context, filter jdex.RunFilter) ([]*jdex.Run, error) {
	return s.FindRunsFn(ctx, filter)
}

func (s *RunService) DeleteRuns(ctx context.Context, sourceID string) (int, error) {
	return s.DeleteRunsFn(ctx, sourceID)
}
