package mock

import "github.com/akarpinski/duden"

var _ duden.EntryParser = (*EntryParser)(nil)

// EntryParser is a mock implementation of duden.EntryParser.
type EntryParser struct {
	ParseFn func(html string) (*duden.Word, error)
}

func (p *EntryParser) Parse(html string) (*duden.Word, error) {
	return p.ParseFn(html)
}
