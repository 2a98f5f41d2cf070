package duden

import (
	"context"
	"time"
)

// WordClass is the grammatical category of a word as labeled by the
// dictionary. The set is closed: pages carrying a word-class label
// outside of it are rejected rather than mis-tagged.
type WordClass int

// WordClass values.
const (
	ClassUnknown WordClass = iota
	NounMasculine
	NounFeminine
	NounNeuter
	NounMasculineNeuter
	Adjective
	Adverb
	WeakVerb
	StrongVerb
	IrregularVerb
	Article
	ProperNoun
	Interjection
	Conjunction
	Particle
	Prefix
	Preposition
	Pronoun
	Suffix
	Numeral
)

var wordClassNames = map[WordClass]string{
	NounMasculine:       "Substantiv, maskulin",
	NounFeminine:        "Substantiv, feminin",
	NounNeuter:          "Substantiv, Neutrum",
	NounMasculineNeuter: "Substantiv, maskulin, oder Substantiv, Neutrum",
	Adjective:           "Adjektiv",
	Adverb:              "Adverb",
	WeakVerb:            "schwaches Verb",
	StrongVerb:          "starkes Verb",
	IrregularVerb:       "unregelmäßiges Verb",
	Article:             "Artikel",
	ProperNoun:          "Eigenname",
	Interjection:        "Interjektion",
	Conjunction:         "Konjunktion",
	Particle:            "Partikel",
	Prefix:              "Präfix",
	Preposition:         "Präposition",
	Pronoun:             "Pronomen",
	Suffix:              "Suffix",
	Numeral:             "Zahlwort",
}

// String returns the German dictionary label for the word class.
func (c WordClass) String() string {
	if s, ok := wordClassNames[c]; ok {
		return s
	}
	return "unbekannt"
}

// IsNoun reports whether the word class is one of the noun variants.
func (c WordClass) IsNoun() bool {
	switch c {
	case NounMasculine, NounFeminine, NounNeuter, NounMasculineNeuter:
		return true
	}
	return false
}

// IsVerb reports whether the word class is one of the verb variants.
func (c WordClass) IsVerb() bool {
	switch c {
	case WeakVerb, StrongVerb, IrregularVerb:
		return true
	}
	return false
}

// DefiniteArticle returns the definite article for a noun class
// ("der", "die", "das", or "der oder das"). Non-noun classes return
// an empty string.
func (c WordClass) DefiniteArticle() string {
	switch c {
	case NounMasculine:
		return "der"
	case NounFeminine:
		return "die"
	case NounNeuter:
		return "das"
	case NounMasculineNeuter:
		return "der oder das"
	}
	return ""
}

// Frequency is the corpus usage-frequency tier of a word, from 1
// (rarest) to 5 (among the 100 most frequent words). FrequencyUnknown
// means the page carried no recognizable frequency marker; that is
// expected and not an error.
type Frequency int

// Frequency bounds.
const (
	FrequencyUnknown Frequency = 0
	FrequencyMin     Frequency = 1
	FrequencyMax     Frequency = 5
)

// Pronunciation holds the phonetic information of a word: the IPA
// transcription and the stress guide with emphasis rendered as markdown.
type Pronunciation struct {
	IPA    string `json:"ipa"`
	Stress string `json:"stress"`
}

// Meaning represents one sense of a word.
type Meaning struct {
	// Text is the meaning itself. Always non-empty; senses that come
	// out empty after markup cleaning are dropped during extraction.
	Text string `json:"text"`

	// Examples holds usage examples for this sense, nil when the page
	// lists none.
	Examples []string `json:"examples,omitempty"`

	// Grammar is a per-sense grammar note (e.g. case government), empty
	// when absent.
	Grammar string `json:"grammar,omitempty"`

	// Usages holds idioms and proverbs listed under this sense.
	Usages []string `json:"usages,omitempty"`
}

// Word is a fully extracted dictionary entry.
type Word struct {
	ID string `json:"id"`

	// Word is the normalized headword as printed on the page.
	Word string `json:"word"`

	Class         WordClass      `json:"class"`
	Frequency     Frequency      `json:"frequency"`
	Hyphenation   string         `json:"hyphenation,omitempty"`
	Pronunciation *Pronunciation `json:"pronunciation,omitempty"`

	// Meanings is ordered as on the page and never empty for a valid
	// word: an entry without meanings is useless for flashcards.
	Meanings []Meaning `json:"meanings"`

	// SourceHash identifies the page content the entry was extracted
	// from. Set by the storage layer.
	SourceHash string    `json:"sourceHash,omitempty"`
	FetchedAt  time.Time `json:"fetchedAt"`
}

// Validate returns an error if the word contains invalid fields.
func (w *Word) Validate() error {
	if w.Word == "" {
		return Errorf(EINVALID, "word headword required")
	}
	if len(w.Meanings) == 0 {
		return Errorf(EINVALID, "word requires at least one meaning")
	}
	return nil
}

// WordFilter represents a filter for FindWords.
type WordFilter struct {
	ID   *string `json:"id"`
	Word *string `json:"word"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// WordService manages the local cache of looked-up words.
type WordService interface {
	// CreateWord stores a new word. The word must validate.
	CreateWord(ctx context.Context, word *Word, sourceHTML string) error

	// FindWordByName retrieves a word by its headword.
	// Returns ENOTFOUND if the word has not been cached.
	FindWordByName(ctx context.Context, name string) (*Word, error)

	// FindWords retrieves words matching the filter, ordered by fetch time.
	FindWords(ctx context.Context, filter WordFilter) ([]*Word, error)

	// DeleteWord permanently removes a cached word.
	// Returns ENOTFOUND if the word does not exist.
	DeleteWord(ctx context.Context, name string) error
}
