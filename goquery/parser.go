// Package goquery implements dictionary page extraction on top of
// goquery and x/net/html. It contains the noise-stripping rule engine,
// the definition-list field extractor, the field decoders, and the
// meaning-layout dispatch that together turn one fetched page into a
// duden.Word.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/akarpinski/duden"
)

// Ensure Parser implements duden.EntryParser at compile time.
var _ duden.EntryParser = (*Parser)(nil)

// Parser extracts word records from spelling pages.
//
// Parsing is pure computation over an already-fetched document: no I/O,
// no shared state, one call per page. Instances are safe for concurrent
// use.
type Parser struct {
	conv duden.Converter
}

// NewParser creates a new Parser. The converter renders pronunciation
// stress guides as markdown; it may be nil, in which case guides fall
// back to plain text.
func NewParser(conv duden.Converter) *Parser {
	return &Parser{conv: conv}
}

// Parse extracts a word record from the raw page HTML.
func (p *Parser) Parse(html string) (*duden.Word, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, duden.Errorf(duden.EINVALID, "failed to parse HTML: %v", err)
	}

	article := doc.Find("article").First()
	if article.Length() == 0 {
		return nil, duden.Errorf(duden.EINVALID, "page has no article element")
	}

	headword := strings.TrimSpace(Normalize(article.Find("div.lemma h1 span.lemma__main").First().Text()))
	if headword == "" {
		return nil, duden.Errorf(duden.EINVALID, "page has no headword")
	}

	fields := ExtractFields(article)

	class, err := ParseWordClass(fields)
	if err != nil {
		return nil, err
	}

	meanings, err := ParseMeanings(article)
	if err != nil {
		return nil, err
	}

	return &duden.Word{
		Word:          headword,
		Class:         class,
		Frequency:     ParseFrequency(fields),
		Hyphenation:   ParseHyphenation(fields),
		Pronunciation: ParsePronunciation(fields, p.conv),
		Meanings:      meanings,
	}, nil
}
