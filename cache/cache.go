// Package cache classifies configured sources against the on-disk scrape
// cache and reconciles the cache with the configuration.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/jdex"
	"github.com/fwojciec/jdex/fs"
)

// millisPerDay converts a freshness window in days to milliseconds.
const millisPerDay = 86_400_000

// Status describes where a source stands relative to its cache.
type Status int

const (
	// StatusFresh means a valid index within its freshness window exists.
	StatusFresh Status = iota
	// StatusStale means a valid index exists but has expired.
	StatusStale
	// StatusMissing means no index file exists.
	StatusMissing
	// StatusCorrupt means an index file exists but cannot be used.
	StatusCorrupt
)

// String returns a lowercase label for s.
func (s Status) String() string {
	switch s {
	case StatusFresh:
		return "fresh"
	case StatusStale:
		return "stale"
	case StatusMissing:
		return "missing"
	case StatusCorrupt:
		return "corrupt"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// SourceIndex pairs a source with its loaded index, if any.
type SourceIndex struct {
	Source *jdex.Source
	Status Status

	// Index is nil for missing or corrupt sources. Stale sources keep
	// their previous index.
	Index *jdex.PersistedIndex
}

// State is the result of resolving every configured source.
type State struct {
	// Pending lists the sources that must be scraped, in config order.
	Pending []*jdex.Source

	// All lists every source in config order.
	All []SourceIndex
}

// Resolver classifies sources by reading their persisted indexes.
type Resolver struct {
	// Root is the configured data directory. The cache lives under
	// Root/__cache__.
	Root string

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	Logger *slog.Logger
}

// NewResolver returns a Resolver for the cache under root.
func NewResolver(root string, logger *slog.Logger) *Resolver {
	return &Resolver{Root: root, Now: time.Now, Logger: logger}
}

// Resolve reads every source's index and decides which sources are pending.
// Missing and corrupt indexes are never fatal: they only make the source
// pending.
func (r *Resolver) Resolve(ctx context.Context, sources []*jdex.Source) (*State, error) {
	now := r.now()
	state := &State{All: make([]SourceIndex, 0, len(sources))}

	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		si := r.classify(src, now)
		state.All = append(state.All, si)
		if si.Status != StatusFresh {
			state.Pending = append(state.Pending, src)
		}
	}

	return state, nil
}

func (r *Resolver) classify(src *jdex.Source, now time.Time) SourceIndex {
	path := fs.NewPaths(r.Root, src.ID()).IndexFile()

	idx, err := fs.ReadIndex(path)
	switch {
	case jdex.ErrorCode(err) == jdex.ENOTFOUND:
		r.Logger.Debug("cache miss", "source", src.ID(), "path", path)
		return SourceIndex{Source: src, Status: StatusMissing}
	case err != nil:
		r.Logger.Error("cache corrupt", "source", src.ID(), "path", path, "err", err)
		return SourceIndex{Source: src, Status: StatusCorrupt}
	}

	if IsStale(idx, src.MaxAgeDays, now) {
		r.Logger.Debug("cache stale",
			"source", src.ID(),
			"generated", idx.Generated().UTC().Format(time.RFC3339),
			"maxAgeDays", src.MaxAgeDays,
		)
		return SourceIndex{Source: src, Status: StatusStale, Index: idx}
	}

	return SourceIndex{Source: src, Status: StatusFresh, Index: idx}
}

// IsStale reports whether idx has outlived a freshness window of
// maxAgeDays. A window <= 0 never expires.
func IsStale(idx *jdex.PersistedIndex, maxAgeDays int, now time.Time) bool {
	if maxAgeDays <= 0 {
		return false
	}
	expires := idx.GeneratedAt + int64(maxAgeDays)*millisPerDay
	return expires < now.UnixMilli()
}

// Prune removes every entry in the cache directory that does not belong to
// one of the given sources. The cache directory is created if missing.
// Failures to remove individual entries are logged and skipped.
func (r *Resolver) Prune(ctx context.Context, sources []*jdex.Source) (removed []string, err error) {
	root := fs.CacheRoot(r.Root)
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	keep := make(map[string]struct{}, len(sources))
	for _, src := range sources {
		keep[src.ID()] = struct{}{}
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("listing cache directory: %w", err)
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		if _, ok := keep[entry.Name()]; ok {
			continue
		}

		path := filepath.Join(root, entry.Name())
		if err := os.RemoveAll(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			r.Logger.Warn("failed to remove orphaned cache entry", "path", path, "err", err)
			continue
		}
		r.Logger.Info("removed orphaned cache entry", "name", entry.Name())
		removed = append(removed, entry.Name())
	}

	return removed, nil
}

func (r *Resolver) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}
