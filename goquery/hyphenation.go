package goquery

import "strings"

// labelHyphenation is the prefix of the hyphenation field label.
const labelHyphenation = "Worttrennung"

// ParseHyphenation decodes the hyphenation field: the normalized text of
// its value's first child. Absence yields an empty string.
func ParseHyphenation(fields []Field) string {
	f, ok := FieldByPrefix(fields, labelHyphenation)
	if !ok {
		return ""
	}

	kids := children(f.Value.Nodes[0])
	if len(kids) == 0 {
		return ""
	}
	return strings.TrimSpace(Clean(kids[0], StripSpan, StripItalic))
}
