// Package fuzzy implements jdex.Matcher on top of github.com/sahilm/fuzzy.
package fuzzy

import (
	"sort"

	"github.com/fwojciec/jdex"
	"github.com/sahilm/fuzzy"
)

// Ensure Matcher implements jdex.Matcher at compile time.
var _ jdex.Matcher = (*Matcher)(nil)

// Matcher scores candidates with subsequence matching that rewards
// consecutive runs, word starts and camel-case boundaries.
type Matcher struct{}

// NewMatcher creates a new Matcher.
func NewMatcher() *Matcher {
	return &Matcher{}
}

// candidates adapts a string slice to fuzzy.Source.
type candidates []string

func (c candidates) String(i int) string { return c[i] }
func (c candidates) Len() int            { return len(c) }

// Match returns matching candidates best first. Equal scores keep their
// candidate order.
func (m *Matcher) Match(query string, list []string) []jdex.Match {
	if query == "" || len(list) == 0 {
		return nil
	}

	found := fuzzy.FindFrom(query, candidates(list))

	matches := make([]jdex.Match, len(found))
	for i, f := range found {
		matches[i] = jdex.Match{Index: f.Index, Score: f.Score}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Index < matches[j].Index
	})

	return matches
}
