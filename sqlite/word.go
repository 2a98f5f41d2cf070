package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/akarpinski/duden"
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ duden.WordService = (*WordService)(nil)

// WordService implements duden.WordService using SQLite.
type WordService struct {
	db *DB
}

// NewWordService creates a new WordService.
func NewWordService(db *DB) *WordService {
	return &WordService{db: db}
}

// hashSource computes xxHash of the source page and returns a hex string.
func hashSource(html string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(html))
	return hex.EncodeToString(b[:])
}

// CreateWord stores a word, replacing any earlier cached entry for the
// same headword.
func (s *WordService) CreateWord(ctx context.Context, word *duden.Word, sourceHTML string) error {
	if err := word.Validate(); err != nil {
		return err
	}

	word.ID = uuid.New().String()
	word.FetchedAt = time.Now().UTC()
	word.SourceHash = hashSource(sourceHTML)

	meanings, err := json.Marshal(word.Meanings)
	if err != nil {
		return fmt.Errorf("failed to encode meanings: %w", err)
	}

	var ipa, stress string
	if word.Pronunciation != nil {
		ipa = word.Pronunciation.IPA
		stress = word.Pronunciation.Stress
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO words (id, word, class, frequency, hyphenation, ipa, stress, meanings, source_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(word) DO UPDATE SET
			id = excluded.id,
			class = excluded.class,
			frequency = excluded.frequency,
			hyphenation = excluded.hyphenation,
			ipa = excluded.ipa,
			stress = excluded.stress,
			meanings = excluded.meanings,
			source_hash = excluded.source_hash,
			fetched_at = excluded.fetched_at
	`, word.ID, word.Word, int(word.Class), int(word.Frequency), word.Hyphenation,
		ipa, stress, string(meanings), word.SourceHash, word.FetchedAt.Format(time.RFC3339))

	return err
}

// FindWordByName retrieves a cached word by its headword.
func (s *WordService) FindWordByName(ctx context.Context, name string) (*duden.Word, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, word, class, frequency, hyphenation, ipa, stress, meanings, source_hash, fetched_at
		FROM words
		WHERE word = ?
	`, name)

	word, err := scanWord(row.Scan)
	if err == sql.ErrNoRows {
		return nil, duden.Errorf(duden.ENOTFOUND, "word %q not found", name)
	}
	return word, err
}

// FindWords retrieves cached words matching the filter, most recently
// fetched first.
func (s *WordService) FindWords(ctx context.Context, filter duden.WordFilter) ([]*duden.Word, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, word, class, frequency, hyphenation, ipa, stress, meanings, source_hash, fetched_at FROM words WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Word != nil {
		query.WriteString(" AND word = ?")
		args = append(args, *filter.Word)
	}

	query.WriteString(" ORDER BY fetched_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []*duden.Word
	for rows.Next() {
		word, err := scanWord(rows.Scan)
		if err != nil {
			return nil, err
		}
		words = append(words, word)
	}

	return words, rows.Err()
}

// DeleteWord permanently removes a cached word.
func (s *WordService) DeleteWord(ctx context.Context, name string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM words WHERE word = ?`, name)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return duden.Errorf(duden.ENOTFOUND, "word %q not found", name)
	}
	return nil
}

// scanWord reads one words row via the given scan function.
func scanWord(scan func(dest ...any) error) (*duden.Word, error) {
	var word duden.Word
	var class, frequency int
	var ipa, stress, meanings, fetchedAt string

	if err := scan(&word.ID, &word.Word, &class, &frequency, &word.Hyphenation,
		&ipa, &stress, &meanings, &word.SourceHash, &fetchedAt); err != nil {
		return nil, err
	}

	word.Class = duden.WordClass(class)
	word.Frequency = duden.Frequency(frequency)
	if ipa != "" || stress != "" {
		word.Pronunciation = &duden.Pronunciation{IPA: ipa, Stress: stress}
	}

	if err := json.Unmarshal([]byte(meanings), &word.Meanings); err != nil {
		return nil, fmt.Errorf("failed to decode meanings: %w", err)
	}

	var err error
	word.FetchedAt, err = time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fetched_at: %w", err)
	}

	return &word, nil
}
