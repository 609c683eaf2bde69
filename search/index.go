// Package search serves fuzzy lookup over persisted Javadoc indexes.
package search

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"

	"github.com/fwojciec/jdex"
)

// DefaultLimit is the maximum number of choices a search returns.
const DefaultLimit = 25

// memberChars are the characters that route a query to members first.
const memberChars = ".#("

// memberCharsRegex strips member syntax before matching member names.
var memberCharsRegex = regexp.MustCompile(`[.#()]`)

// Options configures an Index.
type Options struct {
	// Limit caps the number of choices returned. Defaults to DefaultLimit.
	Limit int

	// Prefixes supplies the kind markers used in labels. Defaults to
	// jdex.DefaultPrefixes.
	Prefixes jdex.Prefixes

	Logger *slog.Logger
}

type entry struct {
	id    string
	token string
	jdex.IndexEntry
}

// category is the searchable view of one broad kind.
type category struct {
	entries []entry
	names   []string
	byToken map[string]int
}

func newCategory(src *jdex.Entries, codec jdex.ReferenceCodec) (*category, error) {
	keys := src.Keys()
	c := &category{
		entries: make([]entry, 0, len(keys)),
		names:   make([]string, 0, len(keys)),
		byToken: make(map[string]int, len(keys)),
	}
	for _, id := range keys {
		e, _ := src.Get(id)
		token, err := codec.Serialize(jdex.Reference{ID: id, Kind: e.Kind})
		if err != nil {
			return nil, fmt.Errorf("minting token for %q: %w", id, err)
		}
		c.byToken[token] = len(c.entries)
		c.entries = append(c.entries, entry{id: id, token: token, IndexEntry: e})
		c.names = append(c.names, e.Name)
	}
	return c, nil
}

// Index answers queries against one source's persisted index and keeps a
// buffer of recently promoted choices for empty queries.
type Index struct {
	objects  *category
	members  *category
	matcher  jdex.Matcher
	limit    int
	prefixes jdex.Prefixes
	logger   *slog.Logger

	mu     sync.Mutex
	recent *RecencyBuffer[jdex.Choice]
}

// NewIndex builds an Index over data, minting one token per entry through
// codec. Fails if the codec reports a token collision.
func NewIndex(data *jdex.PersistedIndex, codec jdex.ReferenceCodec, matcher jdex.Matcher, opts Options) (*Index, error) {
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}
	if opts.Prefixes == nil {
		opts.Prefixes = jdex.DefaultPrefixes()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	objects, err := newCategory(&data.Objects, codec)
	if err != nil {
		return nil, err
	}
	members, err := newCategory(&data.Members, codec)
	if err != nil {
		return nil, err
	}

	return &Index{
		objects:  objects,
		members:  members,
		matcher:  matcher,
		limit:    opts.Limit,
		prefixes: opts.Prefixes,
		logger:   opts.Logger,
		recent:   NewRecencyBuffer[jdex.Choice](opts.Limit),
	}, nil
}

// Limit returns the maximum number of choices per search.
func (idx *Index) Limit() int {
	return idx.limit
}

// Search returns up to Limit choices for query. An empty query lists
// recently promoted choices followed by objects in index order. A query
// containing '.', '#' or '(' looks at members first.
func (idx *Index) Search(query string) []jdex.Choice {
	if query == "" {
		return idx.browse()
	}
	if strings.ContainsAny(query, memberChars) {
		return idx.SearchPrioritizingMembers(query)
	}
	return idx.SearchPrioritizingObjects(query)
}

// SearchPrioritizingMembers matches members with member syntax stripped
// from query, then fills remaining slots with objects matching the raw
// query.
func (idx *Index) SearchPrioritizingMembers(query string) []jdex.Choice {
	sanitized := memberCharsRegex.ReplaceAllString(query, "")

	choices := idx.match(idx.members, sanitized, idx.limit)
	if len(choices) == idx.limit {
		return choices
	}
	return append(choices, idx.match(idx.objects, query, idx.limit-len(choices))...)
}

// SearchPrioritizingObjects matches objects, then fills remaining slots with
// members matching the same query.
func (idx *Index) SearchPrioritizingObjects(query string) []jdex.Choice {
	choices := idx.match(idx.objects, query, idx.limit)
	if len(choices) >= idx.limit {
		return choices
	}
	return append(choices, idx.match(idx.members, query, idx.limit-len(choices))...)
}

// Promote pushes the entry behind token to the front of the recency buffer.
// Reports false, and logs, when no entry of the given broad kind carries
// the token.
func (idx *Index) Promote(token string, broad jdex.BroadKind) bool {
	c := idx.category(broad)
	i, ok := c.byToken[token]
	if !ok {
		idx.logger.Warn("promote miss", "token", token, "kind", string(broad))
		return false
	}

	idx.mu.Lock()
	idx.recent.Push(idx.choice(c.entries[i]))
	idx.mu.Unlock()
	return true
}

// Recent returns the promoted choices, newest first.
func (idx *Index) Recent() []jdex.Choice {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	return idx.recent.Items()
}

func (idx *Index) browse() []jdex.Choice {
	choices := idx.Recent()

	n := min(idx.limit-len(choices), len(idx.objects.entries))
	for _, e := range idx.objects.entries[:max(n, 0)] {
		choices = append(choices, idx.choice(e))
	}
	return choices
}

// match returns up to n choices of c scored against query. An empty query,
// left over after stripping member syntax, matches every entry in index
// order.
func (idx *Index) match(c *category, query string, n int) []jdex.Choice {
	if n <= 0 {
		return nil
	}
	if query == "" {
		choices := make([]jdex.Choice, 0, min(n, len(c.entries)))
		for _, e := range c.entries[:min(n, len(c.entries))] {
			choices = append(choices, idx.choice(e))
		}
		return choices
	}
	matches := idx.matcher.Match(query, c.names)
	if len(matches) > n {
		matches = matches[:n]
	}
	choices := make([]jdex.Choice, 0, len(matches))
	for _, m := range matches {
		choices = append(choices, idx.choice(c.entries[m.Index]))
	}
	return choices
}

func (idx *Index) choice(e entry) jdex.Choice {
	return jdex.Choice{
		Label: idx.prefixes.Label(e.Kind, e.Preview),
		Token: e.token,
	}
}

func (idx *Index) category(broad jdex.BroadKind) *category {
	if broad == jdex.BroadMember {
		return idx.members
	}
	return idx.objects
}
