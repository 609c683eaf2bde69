package jdex

// Formatted holds the two renderings of an entity: the one-line preview
// stored in the index and the full text body stored on disk.
type Formatted struct {
	Preview string
	Body    string
}

// Formatter renders entities for the index and for display.
type Formatter interface {
	// FormatObject renders a top-level object.
	FormatObject(src *Source, obj *Object) (Formatted, error)

	// FormatMember renders a member of parent. Returns EINVALID when the
	// member's kind cannot be rendered.
	FormatMember(src *Source, parent *Object, member *Member) (Formatted, error)
}
