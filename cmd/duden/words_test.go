package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarpinski/duden"
	main "github.com/akarpinski/duden/cmd/duden"
	"github.com/akarpinski/duden/mock"
)

func TestWordsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists cached words", func(t *testing.T) {
		t.Parallel()

		words := &mock.WordService{
			FindWordsFn: func(_ context.Context, filter duden.WordFilter) ([]*duden.Word, error) {
				assert.Equal(t, 10, filter.Limit)
				return []*duden.Word{
					{
						Word:      "Haus",
						Class:     duden.NounNeuter,
						Frequency: 5,
						FetchedAt: time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
					},
					{
						Word:      "laufen",
						Class:     duden.StrongVerb,
						FetchedAt: time.Date(2026, 8, 29, 11, 0, 0, 0, time.UTC),
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Words:  words,
		}

		cmd := &main.WordsCmd{Limit: 10}

		err := cmd.Run(deps)
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "Haus")
		assert.Contains(t, output, "Substantiv, Neutrum")
		assert.Contains(t, output, "laufen")
		assert.Contains(t, output, "starkes Verb")
	})

	t.Run("shows helpful message when the cache is empty", func(t *testing.T) {
		t.Parallel()

		words := &mock.WordService{
			FindWordsFn: func(_ context.Context, _ duden.WordFilter) ([]*duden.Word, error) {
				return []*duden.Word{}, nil
			},
		}

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Words:  words,
		}

		cmd := &main.WordsCmd{}

		err := cmd.Run(deps)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No cached words")
	})

	t.Run("returns error when FindWords fails", func(t *testing.T) {
		t.Parallel()

		words := &mock.WordService{
			FindWordsFn: func(_ context.Context, _ duden.WordFilter) ([]*duden.Word, error) {
				return nil, duden.Errorf(duden.EINTERNAL, "database gone")
			},
		}

		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Words:  words,
		}

		cmd := &main.WordsCmd{}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
