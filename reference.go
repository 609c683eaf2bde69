package jdex

// Reference identifies one persisted entity within a source.
type Reference struct {
	ID   string
	Kind EntityKind
}

// Broad returns the reference's broad category.
func (r Reference) Broad() BroadKind {
	return r.Kind.Broad()
}

// Choice is a single search result handed to the transport.
type Choice struct {
	// Label is the display text: the kind prefix, a space, then the preview.
	Label string `json:"name"`

	// Token is the opaque value resolving back to the entity's Reference.
	Token string `json:"value"`
}

// ReferenceCodec mints opaque tokens for references and resolves them back.
// Tokens are only meaningful for the lifetime of the process.
type ReferenceCodec interface {
	// Serialize returns a new token for ref. Returns ECONFLICT if the minted
	// token already maps to a reference.
	Serialize(ref Reference) (string, error)

	// Deserialize returns the reference for token, or false if the token
	// was never minted.
	Deserialize(token string) (Reference, bool)
}

// Match is one scored hit from a Matcher.
type Match struct {
	// Index is the position of the hit in the candidate list.
	Index int
	Score int
}

// Matcher scores candidates against a query.
type Matcher interface {
	// Match returns the candidates that match query, best first. Equal
	// scores keep candidate order. An empty query matches nothing.
	Match(query string, candidates []string) []Match
}
