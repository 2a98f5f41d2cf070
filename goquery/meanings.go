package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/akarpinski/duden"
)

// Per-sense field label prefixes.
const (
	labelGrammar = "Grammatik"
	labelUsage   = "Wendungen"
)

// ruleRef matches the text of spelling-rule links ("Regel 205") that may
// appear inside meaning paragraphs. Matching links are deleted; any
// other link keeps its text.
var ruleRef = regexp.MustCompile(`Regel [0-9]+`)

// meaningRules strip a meaning paragraph down to its text.
var meaningRules = []Rule{
	StripSpan,
	StripItalic,
	StripLexemeRef,
	DeleteRuleRef,
	DeleteIcon,
	DeleteAnchorMatching(ruleRef),
}

// ParseMeanings extracts the ordered list of senses from the article.
//
// Two page layouts exist. A word with a single sense has a div#bedeutung
// holding one paragraph plus its labeled fields. A word with several
// senses has a div#bedeutungen list whose items carry sense ids. The
// single-sense container wins when present; only in its absence is the
// enumerated list inspected. Neither layout present, or every item empty
// after cleaning, is a hard failure: a word record without meanings is
// useless downstream.
func ParseMeanings(article *goquery.Selection) ([]duden.Meaning, error) {
	if single := article.Find("div#bedeutung").First(); single.Length() > 0 {
		m, ok := parseMeaningBlock(single)
		if !ok {
			return nil, duden.Errorf(duden.ENOTFOUND, "no meanings found")
		}
		return []duden.Meaning{m}, nil
	}

	var meanings []duden.Meaning
	article.Find("div#bedeutungen li[id^=Bedeutung]").Each(func(_ int, item *goquery.Selection) {
		if m, ok := parseMeaningBlock(item); ok {
			meanings = append(meanings, m)
		}
	})

	if len(meanings) == 0 {
		return nil, duden.Errorf(duden.ENOTFOUND, "no meanings found")
	}
	return meanings, nil
}

// parseMeaningBlock extracts one sense from a container holding a
// meaning paragraph and optional labeled fields (examples, grammar
// note, idioms). Containers without meaning text are dropped.
func parseMeaningBlock(sel *goquery.Selection) (duden.Meaning, bool) {
	p := sel.Find("p").First()
	if p.Length() == 0 {
		return duden.Meaning{}, false
	}

	text := strings.TrimSpace(CleanText(children(p.Nodes[0]), meaningRules...))
	if text == "" {
		return duden.Meaning{}, false
	}

	fields := ExtractFields(sel)

	return duden.Meaning{
		Text:     text,
		Examples: ParseExamples(fields),
		Grammar:  parseGrammarNote(fields),
		Usages:   parseUsages(fields),
	}, true
}

// parseGrammarNote decodes the per-sense grammar note ("Grammatik"
// field), e.g. case government. Absence yields an empty string.
func parseGrammarNote(fields []Field) string {
	f, ok := FieldByPrefix(fields, labelGrammar)
	if !ok {
		return ""
	}
	return strings.TrimSpace(CleanText(children(f.Value.Nodes[0]), labelRules...))
}

// parseUsages decodes the idioms listed under a sense ("Wendungen,
// Redensarten, Sprichwörter" field). Absence yields nil.
func parseUsages(fields []Field) []string {
	f, ok := FieldByPrefix(fields, labelUsage)
	if !ok {
		return nil
	}

	var usages []string
	f.Value.Find("li").Each(func(_ int, li *goquery.Selection) {
		if u := strings.TrimSpace(CleanText(children(li.Nodes[0]), labelRules...)); u != "" {
			usages = append(usages, u)
		}
	})
	return usages
}
