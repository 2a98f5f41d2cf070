package sqlite_test

import (
	"context"
	"testing"

	"github.com/akarpinski/duden"
	"github.com/akarpinski/duden/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWord(name string) *duden.Word {
	return &duden.Word{
		Word:        name,
		Class:       duden.NounNeuter,
		Frequency:   4,
		Hyphenation: "Haus",
		Pronunciation: &duden.Pronunciation{
			IPA:    "[haʊ̯s]",
			Stress: "H*au*s",
		},
		Meanings: []duden.Meaning{
			{
				Text:     "Gebäude, das Menschen zum Wohnen dient",
				Examples: []string{"ein Haus bauen", "im Haus bleiben"},
			},
		},
	}
}

func TestWordService_CreateWord(t *testing.T) {
	t.Parallel()

	t.Run("creates word with generated ID, hash and timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewWordService(db)
		ctx := context.Background()

		word := testWord("Haus")
		err := svc.CreateWord(ctx, word, "<html>source</html>")
		require.NoError(t, err)

		assert.NotEmpty(t, word.ID)
		assert.NotEmpty(t, word.SourceHash)
		assert.False(t, word.FetchedAt.IsZero())
	})

	t.Run("returns error for invalid word", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewWordService(db)

		err := svc.CreateWord(context.Background(), &duden.Word{}, "")
		require.Error(t, err)
		assert.Equal(t, duden.EINVALID, duden.ErrorCode(err))
	})

	t.Run("replaces existing entry for the same headword", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewWordService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateWord(ctx, testWord("Haus"), "v1"))

		updated := testWord("Haus")
		updated.Frequency = 5
		require.NoError(t, svc.CreateWord(ctx, updated, "v2"))

		got, err := svc.FindWordByName(ctx, "Haus")
		require.NoError(t, err)
		assert.Equal(t, duden.Frequency(5), got.Frequency)

		words, err := svc.FindWords(ctx, duden.WordFilter{})
		require.NoError(t, err)
		assert.Len(t, words, 1)
	})
}

func TestWordService_FindWordByName(t *testing.T) {
	t.Parallel()

	t.Run("round-trips all fields", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewWordService(db)
		ctx := context.Background()

		created := testWord("Haus")
		require.NoError(t, svc.CreateWord(ctx, created, "<html>source</html>"))

		got, err := svc.FindWordByName(ctx, "Haus")
		require.NoError(t, err)

		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "Haus", got.Word)
		assert.Equal(t, duden.NounNeuter, got.Class)
		assert.Equal(t, duden.Frequency(4), got.Frequency)
		assert.Equal(t, created.Hyphenation, got.Hyphenation)
		require.NotNil(t, got.Pronunciation)
		assert.Equal(t, created.Pronunciation.IPA, got.Pronunciation.IPA)
		assert.Equal(t, created.Pronunciation.Stress, got.Pronunciation.Stress)
		assert.Equal(t, created.Meanings, got.Meanings)
		assert.Equal(t, created.SourceHash, got.SourceHash)
	})

	t.Run("missing pronunciation round-trips as nil", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewWordService(db)
		ctx := context.Background()

		word := testWord("tja")
		word.Pronunciation = nil
		require.NoError(t, svc.CreateWord(ctx, word, ""))

		got, err := svc.FindWordByName(ctx, "tja")
		require.NoError(t, err)
		assert.Nil(t, got.Pronunciation)
	})

	t.Run("returns ENOTFOUND for unknown word", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewWordService(db)

		_, err := svc.FindWordByName(context.Background(), "xyzzy")
		require.Error(t, err)
		assert.Equal(t, duden.ENOTFOUND, duden.ErrorCode(err))
	})
}

func TestWordService_FindWords(t *testing.T) {
	t.Parallel()

	t.Run("filters by word", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewWordService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateWord(ctx, testWord("Haus"), ""))
		require.NoError(t, svc.CreateWord(ctx, testWord("Baum"), ""))

		name := "Baum"
		words, err := svc.FindWords(ctx, duden.WordFilter{Word: &name})
		require.NoError(t, err)

		require.Len(t, words, 1)
		assert.Equal(t, "Baum", words[0].Word)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewWordService(db)
		ctx := context.Background()

		for _, name := range []string{"eins", "zwei", "drei"} {
			require.NoError(t, svc.CreateWord(ctx, testWord(name), ""))
		}

		words, err := svc.FindWords(ctx, duden.WordFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, words, 2)

		words, err = svc.FindWords(ctx, duden.WordFilter{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Len(t, words, 1)
	})
}

func TestWordService_DeleteWord(t *testing.T) {
	t.Parallel()

	t.Run("deletes existing word", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewWordService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateWord(ctx, testWord("Haus"), ""))
		require.NoError(t, svc.DeleteWord(ctx, "Haus"))

		_, err := svc.FindWordByName(ctx, "Haus")
		assert.Equal(t, duden.ENOTFOUND, duden.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for unknown word", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewWordService(db)

		err := svc.DeleteWord(context.Background(), "xyzzy")
		require.Error(t, err)
		assert.Equal(t, duden.ENOTFOUND, duden.ErrorCode(err))
	})
}
