package goquery

import (
	"strings"

	"github.com/akarpinski/duden"
)

// labelWordType is the prefix of the word-class field label.
const labelWordType = "Wortart"

// wordClassLabels maps the exact dictionary label to the word class.
// Decoding is deliberately exact-match: an unknown label means the page
// uses a variant this table does not handle yet, and guessing would
// silently mis-tag the word.
var wordClassLabels = map[string]duden.WordClass{
	"Substantiv, maskulin": duden.NounMasculine,
	"Substantiv, feminin":  duden.NounFeminine,
	"Substantiv, Neutrum":  duden.NounNeuter,
	"Substantiv, maskulin, oder Substantiv, Neutrum": duden.NounMasculineNeuter,
	"Adjektiv":            duden.Adjective,
	"Adverb":              duden.Adverb,
	"schwaches Verb":      duden.WeakVerb,
	"starkes Verb":        duden.StrongVerb,
	"unregelmäßiges Verb": duden.IrregularVerb,
	"Artikel":             duden.Article,
	"Eigenname":           duden.ProperNoun,
	"Interjektion":        duden.Interjection,
	"Konjunktion":         duden.Conjunction,
	"Partikel":            duden.Particle,
	"Präfix":              duden.Prefix,
	"Präposition":         duden.Preposition,
	"Pronomen":            duden.Pronoun,
	"Suffix":              duden.Suffix,
	"Zahlwort":            duden.Numeral,
}

// ParseWordClass decodes the word-class field. A missing field yields
// ClassUnknown without error; a present field with an unrecognized
// label is a hard failure so that unhandled page variants surface
// immediately.
func ParseWordClass(fields []Field) (duden.WordClass, error) {
	f, ok := FieldByPrefix(fields, labelWordType)
	if !ok {
		return duden.ClassUnknown, nil
	}

	kids := children(f.Value.Nodes[0])
	if len(kids) == 0 {
		return duden.ClassUnknown, nil
	}

	// The label is the last non-layout child of the value; earlier
	// children are audio widgets and similar decoration.
	label := strings.TrimSpace(Clean(kids[len(kids)-1], StripSpan, StripItalic, DeleteIcon))
	class, ok := wordClassLabels[label]
	if !ok {
		return duden.ClassUnknown, duden.Errorf(duden.EUNPROCESSABLE, "unrecognized word class %q", label)
	}
	return class, nil
}
