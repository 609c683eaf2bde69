package mock

import "github.com/fwojciec/jdex"

var _ jdex.Converter = (*Converter)(nil)

// Converter is a mock implementation of jdex.Converter.
type Converter struct {
	ConvertFn func(html, baseURL string) (string, error)
}

func (c *Converter) Convert(html, baseURL string) (string, error) {
	return c.ConvertFn(html, baseURL)
}
