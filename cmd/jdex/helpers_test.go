package main_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/jdex"
	"github.com/fwojciec/jdex/cache"
	main "github.com/fwojciec/jdex/cmd/jdex"
	"github.com/fwojciec/jdex/fs"
	"github.com/fwojciec/jdex/fuzzy"
	"github.com/fwojciec/jdex/search"
	"github.com/fwojciec/jdex/uuid"
	"github.com/stretchr/testify/require"
)

var generated = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// syncFunc adapts a function to the Syncer interface.
type syncFunc func(ctx context.Context, sources []*jdex.Source) ([]cache.SourceIndex, error)

func (f syncFunc) Sync(ctx context.Context, sources []*jdex.Source) ([]cache.SourceIndex, error) {
	return f(ctx, sources)
}

func jdkSource() *jdex.Source {
	return &jdex.Source{Name: "jdk", Title: "Java SE", Locator: "https://docs.example.com/api", MaxAgeDays: 7}
}

// writeCache persists a small index with bodies for src under root.
func writeCache(t *testing.T, root string, src *jdex.Source) *jdex.PersistedIndex {
	t.Helper()

	idx := jdex.NewPersistedIndex(generated)
	idx.Objects.Set("list", jdex.IndexEntry{Preview: "List - An ordered collection.", Name: "list", Kind: jdex.KindInterface})
	idx.Objects.Set("map", jdex.IndexEntry{Preview: "Map - Maps keys to values.", Name: "map", Kind: jdex.KindInterface})
	idx.Members.Set("listsize", jdex.IndexEntry{Preview: "List#size()", Name: "listsize", Kind: jdex.KindMethod})

	paths := fs.NewPaths(root, src.ID())
	require.NoError(t, fs.WriteBody(paths.ObjectFile("list"), "LIST BODY"))
	require.NoError(t, fs.WriteBody(paths.ObjectFile("map"), "MAP BODY"))
	require.NoError(t, fs.WriteBody(paths.MemberFile("listsize"), "SIZE BODY"))
	require.NoError(t, fs.WriteIndex(paths.IndexFile(), idx))
	return idx
}

// newDeps returns dependencies over a cache in a temporary root whose
// syncer reports the written index as fresh.
func newDeps(t *testing.T, stdin string) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	root := t.TempDir()
	src := jdkSource()
	idx := writeCache(t, root, src)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	deps := &main.Dependencies{
		Ctx:      context.Background(),
		Stdin:    strings.NewReader(stdin),
		Stdout:   stdout,
		Stderr:   stderr,
		Logger:   logger,
		Sources:  []*jdex.Source{src},
		Resolver: cache.NewResolver(root, logger),
		Syncer: syncFunc(func(context.Context, []*jdex.Source) ([]cache.SourceIndex, error) {
			return []cache.SourceIndex{{Source: src, Status: cache.StatusFresh, Index: idx}}, nil
		}),
		Catalog: search.NewCatalog(root, uuid.NewCodec(), fuzzy.NewMatcher(), search.Options{
			Prefixes: jdex.Prefixes{jdex.KindInterface: "I", jdex.KindMethod: "M"},
			Logger:   logger,
		}),
	}
	return deps, stdout, stderr
}
