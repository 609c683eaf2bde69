package scrape

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/jdex"
	"github.com/fwojciec/jdex/cache"
	"github.com/fwojciec/jdex/fs"
)

// Syncer brings the cache up to date with the configured sources.
type Syncer struct {
	Resolver *cache.Resolver
	Pool     *Pool

	// Runs records every finished job. Optional.
	Runs jdex.RunService

	Logger *slog.Logger
}

// Sync resolves the cache state, removes orphaned cache entries, scrapes
// every pending source and returns the freshly loaded index of each source
// in configuration order. A failed scrape aborts the sync; the failed
// source stays pending for the next run.
func (s *Syncer) Sync(ctx context.Context, sources []*jdex.Source) ([]cache.SourceIndex, error) {
	state, err := s.Resolver.Resolve(ctx, sources)
	if err != nil {
		return nil, fmt.Errorf("resolving cache state: %w", err)
	}

	if _, err := s.Resolver.Prune(ctx, sources); err != nil {
		return nil, fmt.Errorf("pruning cache: %w", err)
	}

	if len(state.Pending) == 0 {
		s.Logger.Info("finished checking data files, no pending sources")
		return state.All, nil
	}

	titles := make([]string, len(state.Pending))
	for i, src := range state.Pending {
		titles[i] = fmt.Sprintf("%q", src.Title)
	}
	s.Logger.Info("finished checking data files, scraping pending sources",
		"count", len(state.Pending),
		"sources", strings.Join(titles, ", "),
		"maxWorkers", s.Pool.Workers(),
	)

	_, err = s.Pool.RunAll(ctx, state.Pending, func(o Outcome, done, total int) {
		s.record(ctx, o)
		if o.Err != nil {
			return
		}
		s.Logger.Info("done scraping",
			"source", o.Source.Title,
			"progress", fmt.Sprintf("%d/%d", done, total),
			"duration", o.FinishedAt.Sub(o.StartedAt),
		)
	})
	if err != nil {
		return nil, fmt.Errorf("scraping failed, pending sources will be scraped on next run: %w", err)
	}

	s.Logger.Info("finished scraping all pending sources")

	return s.reload(state.All), nil
}

// reload reads every source's index back from disk. Sources whose index
// cannot be read are logged and left out.
func (s *Syncer) reload(all []cache.SourceIndex) []cache.SourceIndex {
	loaded := make([]cache.SourceIndex, 0, len(all))
	for _, si := range all {
		path := fs.NewPaths(s.Resolver.Root, si.Source.ID()).IndexFile()
		idx, err := fs.ReadIndex(path)
		if err != nil {
			s.Logger.Error("failed to load index", "source", si.Source.ID(), "err", err)
			continue
		}
		loaded = append(loaded, cache.SourceIndex{Source: si.Source, Status: cache.StatusFresh, Index: idx})
	}
	return loaded
}

// record stores o in the run ledger. Jobs cancelled before they started
// are not recorded. Ledger failures are only logged.
func (s *Syncer) record(ctx context.Context, o Outcome) {
	if s.Runs == nil || o.StartedAt.IsZero() {
		return
	}

	run := &jdex.Run{
		SourceID:   o.Source.ID(),
		Title:      o.Source.Title,
		StartedAt:  o.StartedAt,
		FinishedAt: o.FinishedAt,
	}
	if o.Err != nil {
		run.Error = o.Err.Error()
	}
	if o.Result != nil {
		run.Objects = o.Result.Objects
		run.Members = o.Result.Members
		if hash, err := IndexHash(o.Result.Index); err == nil {
			run.IndexHash = hash
		}
	}
	if err := s.Runs.CreateRun(context.WithoutCancel(ctx), run); err != nil {
		s.Logger.Warn("failed to record scrape run", "source", run.SourceID, "err", err)
	}
}

// IndexHash returns the xxhash digest of idx's persisted form.
func IndexHash(idx *jdex.PersistedIndex) (string, error) {
	data, err := json.Marshal(idx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", xxhash.Sum64(data)), nil
}
