package duden

// EntryParser extracts a word record from a fetched dictionary page.
// Implementations hide the page structure: noise stripping, labeled
// field extraction, and the meaning-layout dispatch.
type EntryParser interface {
	// Parse processes the raw page HTML and returns the extracted word.
	// Returns EUNPROCESSABLE if the page carries an unrecognized
	// word-class label, and ENOTFOUND if no meanings could be extracted
	// (a word record without meanings is not useful).
	Parse(html string) (*Word, error)
}
