package search

import (
	"log/slog"
	"sync"

	"github.com/fwojciec/jdex"
	"github.com/fwojciec/jdex/fs"
)

// Catalog holds one Index per source and resolves tokens and bodies across
// all of them. Every index shares the catalog's codec.
type Catalog struct {
	root    string
	codec   jdex.ReferenceCodec
	matcher jdex.Matcher
	opts    Options
	logger  *slog.Logger

	mu      sync.RWMutex
	order   []string
	sources map[string]*jdex.Source
	indexes map[string]*Index
}

// NewCatalog returns an empty catalog reading bodies from the cache under
// root.
func NewCatalog(root string, codec jdex.ReferenceCodec, matcher jdex.Matcher, opts Options) *Catalog {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return &Catalog{
		root:    root,
		codec:   codec,
		matcher: matcher,
		opts:    opts,
		logger:  opts.Logger,
		sources: make(map[string]*jdex.Source),
		indexes: make(map[string]*Index),
	}
}

// Load builds and registers the index for src, replacing any previous one.
func (c *Catalog) Load(src *jdex.Source, data *jdex.PersistedIndex) error {
	opts := c.opts
	opts.Logger = c.logger.With("source", src.ID())

	idx, err := NewIndex(data, c.codec, c.matcher, opts)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.indexes[src.ID()]; !ok {
		c.order = append(c.order, src.ID())
	}
	c.sources[src.ID()] = src
	c.indexes[src.ID()] = idx
	return nil
}

// Sources returns the loaded sources in load order.
func (c *Catalog) Sources() []*jdex.Source {
	c.mu.RLock()
	defer c.mu.RUnlock()

	a := make([]*jdex.Source, 0, len(c.order))
	for _, id := range c.order {
		a = append(a, c.sources[id])
	}
	return a
}

// Index returns the index of the given source.
// Returns ENOTFOUND if the source is not loaded.
func (c *Catalog) Index(sourceID string) (*Index, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx, ok := c.indexes[sourceID]
	if !ok {
		return nil, jdex.Errorf(jdex.ENOTFOUND, "source %q not loaded", sourceID)
	}
	return idx, nil
}

// Search runs query against the given source.
func (c *Catalog) Search(sourceID, query string) ([]jdex.Choice, error) {
	idx, err := c.Index(sourceID)
	if err != nil {
		return nil, err
	}
	return idx.Search(query), nil
}

// Promote records a selection in the given source's recency buffer.
// Unknown sources and tokens are logged and ignored.
func (c *Catalog) Promote(sourceID, token string, broad jdex.BroadKind) bool {
	idx, err := c.Index(sourceID)
	if err != nil {
		c.logger.Warn("promote for unknown source", "source", sourceID, "token", token)
		return false
	}
	return idx.Promote(token, broad)
}

// Resolve returns the reference behind token.
func (c *Catalog) Resolve(token string) (jdex.Reference, bool) {
	return c.codec.Deserialize(token)
}

// Body returns the persisted text body of ref within the given source.
func (c *Catalog) Body(sourceID string, ref jdex.Reference) (string, error) {
	return fs.ReadBody(fs.NewPaths(c.root, sourceID), ref)
}
