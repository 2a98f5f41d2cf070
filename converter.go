package duden

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML fragment into Markdown. Used for page
	// fragments whose emphasis carries meaning (e.g. the stressed
	// syllable in a pronunciation guide).
	Convert(html string) (string, error)
}
