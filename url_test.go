package duden_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akarpinski/duden"
)

func TestEntryURL(t *testing.T) {
	t.Parallel()

	t.Run("builds the spelling page URL", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t,
			"https://www.duden.de/rechtschreibung/W%C3%B6rterbuch",
			duden.EntryURL(duden.DefaultBaseURL, "Wörterbuch"),
		)
	})

	t.Run("escapes unsafe characters", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t,
			"https://www.duden.de/rechtschreibung/a%2Fb",
			duden.EntryURL(duden.DefaultBaseURL, "a/b"),
		)
	})
}
