// Package format renders Javadoc entities as one-line previews for the
// search index and as Markdown text bodies for display.
package format

import (
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/jdex"
)

// PreviewMaxLength is the maximum length of a label: kind prefix, a space
// and the preview.
const PreviewMaxLength = 100

// ListItemLimit is the number of list entries shown before the rest is
// summarized.
const ListItemLimit = 5

// defaultRetention is shown for annotations without an explicit policy.
const defaultRetention = "CLASS"

// visibleAnnotations are nullness markers kept in rendered signatures.
var visibleAnnotations = map[string]bool{
	"@Nullable": true,
	"@NonNull":  true,
	"@NotNull":  true,
}

// Limits caps the length of rendered documentation. Zero disables a cap.
type Limits struct {
	Description                int
	ExtraPropertiesDescription int
	Deprecation                int
}

// DefaultLimits returns the built-in length caps.
func DefaultLimits() Limits {
	return Limits{
		Description:                500,
		ExtraPropertiesDescription: 150,
		Deprecation:                350,
	}
}

// Ensure Formatter implements jdex.Formatter at compile time.
var _ jdex.Formatter = (*Formatter)(nil)

// Formatter renders entities. The zero value renders plain text without
// kind prefixes or length caps.
type Formatter struct {
	// Converter turns HTML documentation into Markdown. When nil the plain
	// text is used.
	Converter jdex.Converter

	// Prefixes are the kind markers shown before previews. Their length is
	// reserved when truncating previews.
	Prefixes jdex.Prefixes

	Limits Limits
}

// NewFormatter returns a Formatter with the given converter, prefixes and
// limits.
func NewFormatter(conv jdex.Converter, prefixes jdex.Prefixes, limits Limits) *Formatter {
	return &Formatter{Converter: conv, Prefixes: prefixes, Limits: limits}
}

// FormatObject renders a class, interface, enum or annotation.
func (f *Formatter) FormatObject(src *jdex.Source, obj *jdex.Object) (jdex.Formatted, error) {
	if !obj.Kind.Valid() || obj.Kind.Broad() != jdex.BroadObject {
		return jdex.Formatted{}, jdex.Errorf(jdex.EINVALID, "unhandled object kind %s", obj.Kind)
	}

	preview := f.preview(obj.Kind, obj.Name, obj.Description)

	msg := f.newMessage(src, obj.Name, obj.URL, obj.Description, obj.Deprecation)
	if obj.Kind == jdex.KindAnnotation {
		f.annotationParts(msg, obj)
	}

	return jdex.Formatted{Preview: preview, Body: msg.build()}, nil
}

func (f *Formatter) annotationParts(msg *message, obj *jdex.Object) {
	elements := obj.MembersOfKind(jdex.KindAnnotationElement)
	items := make([]listItem, 0, len(elements))
	for _, e := range elements {
		name := inlineCode(e.Type + " " + e.Name)
		if msg.withURLs && e.URL != "" {
			name = hyperlink(name, e.URL)
		}
		items = append(items, listItem{name: name, content: e.Description})
	}
	msg.addList("Elements", items, f.Limits.ExtraPropertiesDescription, ListItemLimit)

	if len(obj.Targets) > 0 {
		var text string
		if obj.Targets[0] == "NONE" {
			text = inlineCode("{}")
		} else {
			codes := make([]string, len(obj.Targets))
			for i, t := range obj.Targets {
				codes[i] = inlineCode(t)
			}
			text = strings.Join(codes, ", ")
		}
		msg.addText("Targets", text, true)
	}

	retention := obj.Retention
	if retention == "" {
		retention = defaultRetention
	}
	msg.addText("Retention", inlineCode(retention), true)
}

// FormatMember renders a member of parent. Returns EINVALID for kinds that
// are not members.
func (f *Formatter) FormatMember(src *jdex.Source, parent *jdex.Object, member *jdex.Member) (jdex.Formatted, error) {
	sep := "#"
	if member.Static {
		sep = "."
	}

	var previewName, title string
	switch member.Kind {
	case jdex.KindAnnotationElement:
		previewName = parent.Name + "(" + member.Type + " " + member.Name + ")"
		title = previewName
	case jdex.KindField:
		previewName = parent.Name + sep + member.Name
		title = member.Type + " " + previewName
	case jdex.KindMethod:
		previewName = parent.Name + sep + member.Name + "(" + previewParams(member.Parameters) + ")"
		title = methodTitle(parent, member, sep)
	case jdex.KindEnumConstant:
		previewName = parent.Name + "." + member.Name
		title = previewName
	default:
		return jdex.Formatted{}, jdex.Errorf(jdex.EINVALID, "unhandled member kind %s", member.Kind)
	}

	preview := f.preview(member.Kind, previewName, member.Description)

	msg := f.newMessage(src, title, member.URL, member.Description, member.Deprecation)
	if member.Kind == jdex.KindMethod {
		items := make([]listItem, 0, len(member.Parameters))
		for _, p := range member.Parameters {
			items = append(items, listItem{
				name:    inlineCode(p.Type + " " + p.Name),
				content: p.Description,
			})
		}
		msg.addList("Parameters", items, f.Limits.ExtraPropertiesDescription, ListItemLimit)
		msg.addPart("Returns", member.Returns, true)
	}

	return jdex.Formatted{Preview: preview, Body: msg.build()}, nil
}

// preview joins name and the newline-free description, truncated so the
// kind prefix still fits in PreviewMaxLength.
func (f *Formatter) preview(kind jdex.EntityKind, name string, desc *jdex.Content) string {
	parts := []string{name}
	if desc != nil {
		if text := strings.ReplaceAll(desc.Text, "\n", ""); text != "" {
			parts = append(parts, "- "+text)
		}
	}
	limit := PreviewMaxLength - utf8.RuneCountInString(f.Prefixes.For(kind)) - 1
	return TruncateByWords(strings.Join(parts, " "), limit)
}

// previewParams renders "Type name" pairs with simple type names.
func previewParams(params []*jdex.Parameter) string {
	a := make([]string, len(params))
	for i, p := range params {
		a[i] = SimpleTypeName(p.Type) + " " + p.Name
	}
	return strings.Join(a, ", ")
}

// methodTitle renders a full method signature with nullness markers.
func methodTitle(parent *jdex.Object, m *jdex.Member, sep string) string {
	params := make([]string, len(m.Parameters))
	for i, p := range m.Parameters {
		words := []string{SimpleTypeName(p.Type), p.Name}
		for _, a := range p.Annotations {
			if visibleAnnotations[a] {
				words = append([]string{a}, words...)
			}
		}
		params[i] = strings.Join(words, " ")
	}

	var b strings.Builder
	for _, a := range m.Annotations {
		if visibleAnnotations[a] {
			b.WriteString(a + " ")
			break
		}
	}
	b.WriteString(m.Type + " " + parent.Name + sep + m.Name + "(" + strings.Join(params, ", ") + ")")
	return b.String()
}
