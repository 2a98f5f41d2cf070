// Package lookup coordinates fetching, parsing, and caching of dictionary
// entries. It resolves words against the cache first and falls back to the
// network, writing fresh entries back to the cache.
package lookup

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/akarpinski/duden"
)

// Lookuper resolves headwords to parsed dictionary entries.
type Lookuper struct {
	Fetcher duden.Fetcher
	Parser  duden.EntryParser

	// Words is the lookup cache. Optional: when nil every lookup goes
	// to the network.
	Words duden.WordService

	// BaseURL is the dictionary site. Defaults to duden.DefaultBaseURL.
	BaseURL string

	// Refresh bypasses the cache read, forcing a fresh fetch. The
	// result is still written back to the cache.
	Refresh bool

	Concurrency int
	RetryDelays []time.Duration
}

// ProgressEvent reports progress during a batch lookup.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Word      string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch lookup progress.
type ProgressFunc func(event ProgressEvent)

// Lookup resolves a single word, consulting the cache before the network.
func (l *Lookuper) Lookup(ctx context.Context, word string) (*duden.Word, error) {
	if l.Words != nil && !l.Refresh {
		cached, err := l.Words.FindWordByName(ctx, word)
		if err == nil {
			return cached, nil
		}
		if duden.ErrorCode(err) != duden.ENOTFOUND {
			return nil, err
		}
	}

	baseURL := l.BaseURL
	if baseURL == "" {
		baseURL = duden.DefaultBaseURL
	}

	delays := l.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	fetchFn := func(ctx context.Context, url string) (string, error) {
		return l.Fetcher.Fetch(ctx, url)
	}
	html, err := FetchWithRetryDelays(ctx, duden.EntryURL(baseURL, word), fetchFn, delays)
	if err != nil {
		return nil, err
	}

	w, err := l.Parser.Parse(html)
	if err != nil {
		return nil, err
	}

	if l.Words != nil {
		if err := l.Words.CreateWord(ctx, w, html); err != nil {
			return nil, err
		}
	}

	return w, nil
}

// lookupResult holds the outcome of resolving a single word.
type lookupResult struct {
	position int
	word     *duden.Word
	err      error
}

// LookupAll resolves words concurrently. The returned slice is aligned
// with the input: a failed lookup leaves a nil entry. The progress
// callback, if provided, receives events as lookups complete.
func (l *Lookuper) LookupAll(ctx context.Context, words []string, progress ProgressFunc) ([]*duden.Word, error) {
	concurrency := l.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	total := len(words)
	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	resultCh := make(chan lookupResult, total)

	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, word := range words {
			g.Go(func() error {
				w, err := l.Lookup(gctx, word)
				resultCh <- lookupResult{position: i, word: w, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]*duden.Word, total)
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result.word

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Completed: int(completed.Load()),
			Total:     total,
			Word:      words[result.position],
		}
		if result.err != nil {
			event.Type = ProgressFailed
			event.Error = result.err
		} else {
			event.Type = ProgressCompleted
		}
		progress(event)
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return results, ctx.Err()
}
