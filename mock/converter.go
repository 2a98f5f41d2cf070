package mock

import "github.com/akarpinski/duden"

var _ duden.Converter = (*Converter)(nil)

// Converter is a mock implementation of duden.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
