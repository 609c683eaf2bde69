package mock

import "github.com/fwojciec/jdex"

var _ jdex.Formatter = (*Formatter)(nil)

// Formatter is a mock implementation of jdex.Formatter.
type Formatter struct {
	FormatObjectFn func(src *jdex.Source, obj *jdex.Object) (jdex.Formatted, error)
	FormatMemberFn func(src *jdex.Source, parent *jdex.Object, member *jdex.Member) (jdex.Formatted, error)
}

func (f *Formatter) FormatObject(src *jdex.Source, obj *jdex.Object) (jdex.Formatted, error) {
	return f.FormatObjectFn(src, obj)
}

func (f *Formatter) FormatMember(src *jdex.Source, parent *jdex.Object, member *jdex.Member) (jdex.Formatted, error) {
	return f.FormatMemberFn(src, parent, member)
}
