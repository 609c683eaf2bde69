// Package uuid implements jdex.ReferenceCodec with random UUID tokens.
package uuid

import (
	"sync"

	"github.com/fwojciec/jdex"
	"github.com/google/uuid"
)

// Ensure Codec implements jdex.ReferenceCodec at compile time.
var _ jdex.ReferenceCodec = (*Codec)(nil)

// Codec maps random UUID tokens to references for the lifetime of the
// process. It is safe for concurrent use.
type Codec struct {
	mu    sync.RWMutex
	refs  map[string]jdex.Reference
	newID func() string
}

// Option configures a Codec.
type Option func(*Codec)

// WithGenerator replaces the token generator. Useful for forcing
// collisions in tests.
func WithGenerator(fn func() string) Option {
	return func(c *Codec) {
		c.newID = fn
	}
}

// NewCodec creates an empty Codec.
func NewCodec(opts ...Option) *Codec {
	c := &Codec{
		refs:  make(map[string]jdex.Reference),
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Serialize mints a new token for ref. A token that is already taken is
// never overwritten; ECONFLICT is returned instead.
func (c *Codec) Serialize(ref jdex.Reference) (string, error) {
	token := c.newID()

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.refs[token]; ok {
		return "", jdex.Errorf(jdex.ECONFLICT, "token %s already in use", token)
	}
	c.refs[token] = ref
	return token, nil
}

// Deserialize returns the reference behind token.
func (c *Codec) Deserialize(token string) (jdex.Reference, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ref, ok := c.refs[token]
	return ref, ok
}

// Len returns the number of minted tokens.
func (c *Codec) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.refs)
}
