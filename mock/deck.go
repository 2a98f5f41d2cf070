package mock

import "github.com/akarpinski/duden"

var _ duden.DeckWriter = (*DeckWriter)(nil)

// DeckWriter is a mock implementation of duden.DeckWriter.
type DeckWriter struct {
	WriteDeckFn func(path string, deck *duden.Deck) error
}

func (w *DeckWriter) WriteDeck(path string, deck *duden.Deck) error {
	return w.WriteDeckFn(path, deck)
}
