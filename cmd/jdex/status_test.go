package main_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/jdex"
	main "github.com/fwojciec/jdex/cmd/jdex"
	"github.com/fwojciec/jdex/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("shows cache state and last run", func(t *testing.T) {
		t.Parallel()

		// Given a cached source and a successful ledger entry
		deps, stdout, _ := newDeps(t, "")
		deps.Resolver.Now = func() time.Time { return generated.Add(time.Hour) }
		var filter jdex.RunFilter
		deps.Runs = &mock.RunService{
			FindRunsFn: func(_ context.Context, f jdex.RunFilter) ([]*jdex.Run, error) {
				filter = f
				return []*jdex.Run{{
					SourceID:   "jdk",
					StartedAt:  generated.Add(-2 * time.Second),
					FinishedAt: generated,
					Objects:    2,
					Members:    1,
					IndexHash:  "abc123",
				}}, nil
			},
		}

		// When showing status
		err := (&main.StatusCmd{}).Run(deps)

		// Then the state and the newest run are listed
		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "jdk  fresh  Java SE  2 objects  1 members")
		assert.Contains(t, output, "last run: 2026-03-01T11:59:58Z took 2s (2 objects, 1 members, abc123)")
		require.NotNil(t, filter.SourceID)
		assert.Equal(t, "jdk", *filter.SourceID)
		assert.Equal(t, 1, filter.Limit)
	})

	t.Run("shows stale source and failed run", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t, "")
		deps.Resolver.Now = func() time.Time { return generated.Add(30 * 24 * time.Hour) }
		deps.Runs = &mock.RunService{
			FindRunsFn: func(context.Context, jdex.RunFilter) ([]*jdex.Run, error) {
				return []*jdex.Run{{
					SourceID:   "jdk",
					StartedAt:  generated,
					FinishedAt: generated.Add(time.Second),
					Error:      "fetching index: HTTP 404",
				}}, nil
			},
		}

		err := (&main.StatusCmd{}).Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "jdk  stale  Java SE")
		assert.Contains(t, output, "failed after 1s: fetching index: HTTP 404")
	})

	t.Run("missing source never ran", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t, "")
		deps.Sources = append(deps.Sources, &jdex.Source{Name: "guava", Title: "Guava", Locator: "https://guava.dev/api"})
		deps.Runs = &mock.RunService{
			FindRunsFn: func(context.Context, jdex.RunFilter) ([]*jdex.Run, error) {
				return nil, nil
			},
		}

		err := (&main.StatusCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "guava  missing  Guava\n  last run: never\n")
	})

	t.Run("reports ledger failure", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps(t, "")
		deps.Runs = &mock.RunService{
			FindRunsFn: func(context.Context, jdex.RunFilter) ([]*jdex.Run, error) {
				return nil, errors.New("database is locked")
			},
		}

		err := (&main.StatusCmd{}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: database is locked")
	})
}
