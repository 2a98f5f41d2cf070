package goquery

import "github.com/akarpinski/duden"

// labelFrequency is the prefix of the frequency field label.
const labelFrequency = "Häufigkeit"

// frequencySentences maps the accessibility label of the frequency
// gauge to a tier. The site describes the gauge with one of exactly
// five sentences; any other wording decodes to FrequencyUnknown since
// frequency is optional metadata and not worth failing a lookup over.
var frequencySentences = map[string]duden.Frequency{
	"Gehört zu den 100 häufigsten Wörtern im Dudenkorpus":                               5,
	"Gehört zu den 1000 häufigsten Wörtern im Dudenkorpus mit Ausnahme der Top 100":     4,
	"Gehört zu den 10000 häufigsten Wörtern im Dudenkorpus mit Ausnahme der Top 1000":   3,
	"Gehört zu den 100000 häufigsten Wörtern im Dudenkorpus mit Ausnahme der Top 10000": 2,
	"Gehört nicht zu den 100000 häufigsten Wörtern im Dudenkorpus":                      1,
}

// ParseFrequency decodes the frequency field from the aria-label of its
// first meaningful child. Absence of the field or an unrecognized
// sentence both yield FrequencyUnknown.
func ParseFrequency(fields []Field) duden.Frequency {
	f, ok := FieldByPrefix(fields, labelFrequency)
	if !ok {
		return duden.FrequencyUnknown
	}

	kids := children(f.Value.Nodes[0])
	if len(kids) == 0 {
		return duden.FrequencyUnknown
	}

	for _, a := range kids[0].Attr {
		if a.Key == "aria-label" {
			return frequencySentences[Normalize(a.Val)]
		}
	}
	return duden.FrequencyUnknown
}
