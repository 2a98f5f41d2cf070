package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Field is a labeled fragment read from a definition-list container:
// the cleaned label text of the first dt child and the dd subtree
// holding the value.
type Field struct {
	Label string
	Value *goquery.Selection
}

// ExtractFields reads every labeled tuple list within sel, in document
// order. Labels are cleaned with the label rule set before use so that
// callers can match them as plain strings; values are returned as raw
// subtrees for the field decoders.
func ExtractFields(sel *goquery.Selection) []Field {
	var fields []Field
	sel.Find("dl.tuple").Each(func(_ int, dl *goquery.Selection) {
		dt := dl.Find("dt").First()
		dd := dl.Find("dd").First()
		if dt.Length() == 0 || dd.Length() == 0 {
			return
		}
		label := strings.TrimSpace(CleanText(children(dt.Nodes[0]), labelRules...))
		fields = append(fields, Field{Label: label, Value: dd})
	})
	return fields
}

// FieldByPrefix returns the first field whose label starts with prefix.
// Prefix matching is used because labels may carry trailing qualifiers
// (e.g. "Beispiele" vs "Beispiel").
func FieldByPrefix(fields []Field, prefix string) (Field, bool) {
	for _, f := range fields {
		if strings.HasPrefix(f.Label, prefix) {
			return f, true
		}
	}
	return Field{}, false
}
