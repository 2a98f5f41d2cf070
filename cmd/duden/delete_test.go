package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarpinski/duden"
	main "github.com/akarpinski/duden/cmd/duden"
	"github.com/akarpinski/duden/mock"
)

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("requires force flag", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
		}

		cmd := &main.DeleteCmd{Word: "Haus"}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, duden.EINVALID, duden.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("deletes the word", func(t *testing.T) {
		t.Parallel()

		var deleted string
		words := &mock.WordService{
			DeleteWordFn: func(_ context.Context, name string) error {
				deleted = name
				return nil
			},
		}

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Words:  words,
		}

		cmd := &main.DeleteCmd{Word: "Haus", Force: true}

		err := cmd.Run(deps)
		require.NoError(t, err)
		assert.Equal(t, "Haus", deleted)
		assert.Contains(t, stdout.String(), `Deleted "Haus"`)
	})

	t.Run("reports a word that is not cached", func(t *testing.T) {
		t.Parallel()

		words := &mock.WordService{
			DeleteWordFn: func(_ context.Context, name string) error {
				return duden.Errorf(duden.ENOTFOUND, "word %q not found", name)
			},
		}

		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Words:  words,
		}

		cmd := &main.DeleteCmd{Word: "xyzzy", Force: true}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, duden.ENOTFOUND, duden.ErrorCode(err))
		assert.Contains(t, stderr.String(), "not cached")
	})
}
