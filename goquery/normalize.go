package goquery

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

var displayChars = strings.NewReplacer(
	" ", " ", // non-breaking space
	" ", " ", // narrow no-break space
	"­", "", // soft hyphen
)

// Normalize canonicalizes raw page text: Unicode NFC composition,
// non-breaking and narrow no-break spaces replaced with regular spaces,
// and soft hyphens removed. The site intermixes composed and decomposed
// accents and uses these characters purely for display, so every piece
// of text must pass through here before it is matched or concatenated.
func Normalize(text string) string {
	return displayChars.Replace(norm.NFC.String(text))
}
