// Package htmltomarkdown implements duden.Converter on top of the
// html-to-markdown library. It is used for page fragments whose
// emphasis is semantic, such as the stressed syllable in a
// pronunciation guide.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/akarpinski/duden"
)

// Ensure Converter implements duden.Converter at compile time.
var _ duden.Converter = (*Converter)(nil)

// Converter converts HTML fragments to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms an HTML fragment into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", duden.Errorf(duden.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return result, nil
}
