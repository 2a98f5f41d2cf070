package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/akarpinski/duden"
)

// labelPronunciation is the prefix of the pronunciation field label.
const labelPronunciation = "Aussprache"

// ParsePronunciation decodes the pronunciation field: the IPA
// transcription from the first span.ipa and the stress guide from the
// first span.pronunciation-guide__text. The guide's emphasis marks the
// stressed syllable, so it is rendered as markdown through conv rather
// than stripped; a nil conv falls back to plain text. Absence of the
// field yields nil.
func ParsePronunciation(fields []Field, conv duden.Converter) *duden.Pronunciation {
	f, ok := FieldByPrefix(fields, labelPronunciation)
	if !ok {
		return nil
	}

	var pron duden.Pronunciation

	if ipa := f.Value.Find("span.ipa").First(); ipa.Length() > 0 {
		pron.IPA = strings.TrimSpace(Normalize(ipa.Text()))
	}

	if guide := f.Value.Find("span.pronunciation-guide__text").First(); guide.Length() > 0 {
		pron.Stress = stressGuide(guide, conv)
	}

	if pron.IPA == "" && pron.Stress == "" {
		return nil
	}
	return &pron
}

// stressGuide renders the guide fragment as markdown when a converter is
// wired, falling back to stripped plain text otherwise.
func stressGuide(guide *goquery.Selection, conv duden.Converter) string {
	if conv != nil {
		if inner, err := guide.Html(); err == nil {
			if md, err := conv.Convert(Normalize(inner)); err == nil {
				return strings.TrimSpace(md)
			}
		}
	}
	return strings.TrimSpace(CleanText(children(guide.Nodes[0]), StripSpan, StripItalic))
}
