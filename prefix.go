package jdex

// Prefixes maps entity kinds to the short marker shown before an entry.
type Prefixes map[EntityKind]string

// DefaultPrefixes returns the built-in kind markers.
func DefaultPrefixes() Prefixes {
	return Prefixes{
		KindClass:             "🏛️",
		KindInterface:         "🧩",
		KindEnum:              "🔠",
		KindEnumConstant:      "📍",
		KindMethod:            "🛠️",
		KindField:             "🔑",
		KindAnnotation:        "🏷️",
		KindAnnotationElement: "🔖",
	}
}

// For returns the marker for kind, or an empty string if none is set.
func (p Prefixes) For(kind EntityKind) string {
	return p[kind]
}

// Label joins the marker for kind with text.
func (p Prefixes) Label(kind EntityKind, text string) string {
	prefix := p.For(kind)
	if prefix == "" {
		return text
	}
	return prefix + " " + text
}
