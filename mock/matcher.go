package mock

import "github.com/fwojciec/jdex"

var _ jdex.Matcher = (*Matcher)(nil)

// Matcher is a mock implementation of jdex.Matcher.
type Matcher struct {
	MatchFn func(query string, candidates []string) []jdex.Match
}

func (m *Matcher) Match(query string, candidates []string) []jdex.Match {
	return m.MatchFn(query, candidates)
}
