package duden

import "net/url"

// DefaultBaseURL is the dictionary site.
const DefaultBaseURL = "https://www.duden.de"

// EntryURL builds the spelling-page URL for a word.
func EntryURL(baseURL, word string) string {
	return baseURL + "/rechtschreibung/" + url.PathEscape(word)
}
