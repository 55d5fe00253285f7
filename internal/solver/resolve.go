package solver

import (
	"context"
	"fmt"

	"github.com/samber/lo"
)

// Corpus is the read-only universe of valid words the solver draws
// candidates from. Implementations live in internal/store.
type Corpus interface {
	// Count returns the number of words currently available.
	Count(ctx context.Context) (int, error)

	// Query returns the words that satisfy c structurally, in the corpus'
	// canonical order. It may return extra words but must never omit a
	// word that satisfies c.
	Query(ctx context.Context, c Constraints) ([]string, error)

	// EnsureLoaded populates the corpus if needed. It is idempotent and
	// safe to call concurrently.
	EnsureLoaded(ctx context.Context) error
}

// Resolve returns every corpus word consistent with the whole history, in
// the corpus' canonical order. An empty history yields the full corpus.
// The store query is the only blocking call; its error is returned as is
// (wrapped) and nothing is retried here.
func Resolve(ctx context.Context, corpus Corpus, history []Guess) ([]string, error) {
	words, err := corpus.Query(ctx, Extract(history))
	if err != nil {
		return nil, fmt.Errorf("query corpus: %w", err)
	}
	if len(history) == 0 {
		return words, nil
	}
	return lo.Filter(words, func(w string, _ int) bool {
		return MatchesAll(w, history)
	}), nil
}
