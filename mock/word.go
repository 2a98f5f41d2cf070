package mock

import (
	"context"

	"github.com/akarpinski/duden"
)

var _ duden.WordService = (*WordService)(nil)

// WordService is a mock implementation of duden.WordService.
type WordService struct {
	CreateWordFn     func(ctx context.Context, word *duden.Word, sourceHTML string) error
	FindWordByNameFn func(ctx context.Context, name string) (*duden.Word, error)
	FindWordsFn      func(ctx context.Context, filter duden.WordFilter) ([]*duden.Word, error)
	DeleteWordFn     func(ctx context.Context, name string) error
}

func (s *WordService) CreateWord(ctx context.Context, word *duden.Word, sourceHTML string) error {
	return s.CreateWordFn(ctx, word, sourceHTML)
}

func (s *WordService) FindWordByName(ctx context.Context, name string) (*duden.Word, error) {
	return s.FindWordByNameFn(ctx, name)
}

func (s *WordService) FindWords(ctx context.Context, filter duden.WordFilter) ([]*duden.Word, error) {
	return s.FindWordsFn(ctx, filter)
}

func (s *WordService) DeleteWord(ctx context.Context, name string) error {
	return s.DeleteWordFn(ctx, name)
}
