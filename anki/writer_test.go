package anki_test

import (
	"archive/zip"
	"database/sql"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarpinski/duden"
	"github.com/akarpinski/duden/anki"
)

func testDeck() *duden.Deck {
	return &duden.Deck{
		Name: "Deutsch Test",
		Cards: []duden.Card{
			{
				Word:       "Haus",
				Definition: "Gebäude, das Menschen zum Wohnen dient",
				Hint:       "/Wohnen/",
				Grammar:    "Artikel - das, die Häuser",
				Example:    "ein Haus bauen",
			},
			{
				Word:       "laufen",
				Definition: "sich schnell zu Fuß fortbewegen",
			},
		},
	}
}

// extractCollection unpacks collection.anki2 from the package at path and
// returns the location of the extracted database.
func extractCollection(t *testing.T, path string) string {
	t.Helper()

	r, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	names := make([]string, 0, len(r.File))
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	require.Contains(t, names, "collection.anki2")
	require.Contains(t, names, "media")

	for _, f := range r.File {
		if f.Name != "collection.anki2" {
			continue
		}
		src, err := f.Open()
		require.NoError(t, err)
		defer src.Close()

		dst := filepath.Join(t.TempDir(), "collection.anki2")
		out, err := os.Create(dst)
		require.NoError(t, err)
		_, err = io.Copy(out, src)
		require.NoError(t, err)
		require.NoError(t, out.Close())
		return dst
	}

	t.Fatal("collection.anki2 not found in package")
	return ""
}

func TestWriter_WriteDeck(t *testing.T) {
	t.Parallel()

	t.Run("writes a package with notes and cards", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "deck.apkg")
		w := anki.NewWriter()
		require.NoError(t, w.WriteDeck(path, testDeck()))

		db, err := sql.Open("sqlite3", extractCollection(t, path))
		require.NoError(t, err)
		defer db.Close()

		var notes int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM notes").Scan(&notes))
		assert.Equal(t, 2, notes)

		// Two templates produce two cards per note.
		var cards int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM cards").Scan(&cards))
		assert.Equal(t, 4, cards)
	})

	t.Run("stores card fields in order", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "deck.apkg")
		w := anki.NewWriter()
		require.NoError(t, w.WriteDeck(path, testDeck()))

		db, err := sql.Open("sqlite3", extractCollection(t, path))
		require.NoError(t, err)
		defer db.Close()

		var flds string
		err = db.QueryRow("SELECT flds FROM notes WHERE sfld = 'Haus'").Scan(&flds)
		require.NoError(t, err)

		fields := strings.Split(flds, "\x1f")
		require.Len(t, fields, 5)
		assert.Equal(t, "Haus", fields[0])
		assert.Equal(t, "Gebäude, das Menschen zum Wohnen dient", fields[1])
		assert.Equal(t, "/Wohnen/", fields[2])
		assert.Equal(t, "Artikel - das, die Häuser", fields[3])
		assert.Equal(t, "ein Haus bauen", fields[4])
	})

	t.Run("names the deck in the collection", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "deck.apkg")
		w := anki.NewWriter()
		require.NoError(t, w.WriteDeck(path, testDeck()))

		db, err := sql.Open("sqlite3", extractCollection(t, path))
		require.NoError(t, err)
		defer db.Close()

		var decks string
		require.NoError(t, db.QueryRow("SELECT decks FROM col").Scan(&decks))
		assert.Contains(t, decks, "Deutsch Test")
	})

	t.Run("rejects an invalid deck", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "deck.apkg")
		w := anki.NewWriter()

		err := w.WriteDeck(path, &duden.Deck{})
		require.Error(t, err)
		assert.Equal(t, duden.EINVALID, duden.ErrorCode(err))

		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})
}
