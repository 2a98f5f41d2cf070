package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// labelExample is the prefix of the example field label; it also matches
// the plural "Beispiele".
const labelExample = "Beispiel"

// exampleRules strip examples down to plain text. Hyperlinks inside
// examples are cross-references whose text adds nothing to the example
// itself, so they are deleted outright.
var exampleRules = []Rule{StripSpan, StripItalic, StripLexemeRef, DeleteRuleRef, DeleteIcon, DeleteAnchor}

// ParseExamples decodes the example field scoped to fields: each list
// item (or, failing a list, the whole value) is cleaned and split on
// ";" into individual examples. Absence of the field yields nil.
func ParseExamples(fields []Field) []string {
	f, ok := FieldByPrefix(fields, labelExample)
	if !ok {
		return nil
	}

	var texts []string
	items := f.Value.Find("li")
	if items.Length() > 0 {
		items.Each(func(_ int, li *goquery.Selection) {
			texts = append(texts, CleanText(children(li.Nodes[0]), exampleRules...))
		})
	} else {
		texts = append(texts, CleanText(children(f.Value.Nodes[0]), exampleRules...))
	}

	var examples []string
	for _, t := range texts {
		for _, seg := range strings.Split(t, ";") {
			if seg = strings.TrimSpace(seg); seg != "" {
				examples = append(examples, seg)
			}
		}
	}
	return examples
}
