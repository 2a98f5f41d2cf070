package duden

// Card is a single flashcard built from one sense of a word.
type Card struct {
	Word       string
	Definition string
	Hint       string
	Grammar    string
	Example    string
}

// Deck is an ordered collection of flashcards.
type Deck struct {
	Name  string
	Cards []Card
}

// Validate returns an error if the deck cannot be exported.
func (d *Deck) Validate() error {
	if d.Name == "" {
		return Errorf(EINVALID, "deck name required")
	}
	if len(d.Cards) == 0 {
		return Errorf(EINVALID, "deck requires at least one card")
	}
	return nil
}

// DeckWriter exports a deck to a flashcard package file.
type DeckWriter interface {
	// WriteDeck writes the deck to the given path, creating or
	// truncating the file.
	WriteDeck(path string, deck *Deck) error
}
