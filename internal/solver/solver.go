package solver

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Solver ties the pieces together: it makes sure the corpus is loaded,
// resolves the candidate set for a history and selects a guess.
// It holds no per-request state and is safe for concurrent use as long as
// the Corpus is.
type Solver struct {
	corpus    Corpus
	threshold int
}

// New returns a Solver over corpus. A threshold <= 0 means LargeThreshold.
func New(corpus Corpus, threshold int) *Solver {
	if threshold <= 0 {
		threshold = LargeThreshold
	}
	return &Solver{corpus: corpus, threshold: threshold}
}

// Suggest recommends the next guess for history. An empty candidate set is
// reported through Suggestion.Message, not as an error; only corpus
// failures are returned as errors.
func (s *Solver) Suggest(ctx context.Context, history []Guess) (Suggestion, error) {
	if err := s.corpus.EnsureLoaded(ctx); err != nil {
		return Suggestion{}, fmt.Errorf("load corpus: %w", err)
	}
	start := time.Now()
	candidates, err := Resolve(ctx, s.corpus, history)
	if err != nil {
		return Suggestion{}, err
	}
	sug := SelectWithThreshold(candidates, s.threshold)

	log.Ctx(ctx).Debug().
		Int("guesses", len(history)).
		Int("candidates", len(candidates)).
		Str("method", string(sug.Method)).
		Dur("took", time.Since(start)).
		Msg("solve")
	return sug, nil
}

// Count reports the corpus size, loading it first if needed.
func (s *Solver) Count(ctx context.Context) (int, error) {
	if err := s.corpus.EnsureLoaded(ctx); err != nil {
		return 0, fmt.Errorf("load corpus: %w", err)
	}
	return s.corpus.Count(ctx)
}
