package mock

import "github.com/fwojciec/jdex"

var _ jdex.ReferenceCodec = (*ReferenceCodec)(nil)

// ReferenceCodec is a mock implementation of jdex.ReferenceCodec.
type ReferenceCodec struct {
	SerializeFn   func(ref jdex.Reference) (string, error)
	DeserializeFn func(token string) (jdex.Reference, bool)
}

func (c *ReferenceCodec) Serialize(ref jdex.Reference) (string, error) {
	return c.SerializeFn(ref)
}

func (c *ReferenceCodec) Deserialize(token string) (jdex.Reference, bool) {
	return c.DeserializeFn(token)
}
