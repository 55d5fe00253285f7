// internal/store/store.go
//
// Word Corpus Store implementations.
// A Store owns the universe of valid five-letter words and answers the
// solver's structural queries over it.
//
// Implementations:
//   - memory: insertion-ordered slice, filtered in process.
//   - sqlite: one row per word with an indexed column per position.
//
// Both load lazily from a words.Source on the first EnsureLoaded call.
// Concurrent callers share a single load; a successful load latches, a
// failed one is retried by the next caller.

package store

import (
	"context"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/gae-22/wordle/internal/solver"
)

// Store is a solver.Corpus that can also describe itself.
type Store interface {
	solver.Corpus

	// Info reports backend, source and load state (for /health).
	Info() Info
}

// Info is a point-in-time description of a Store.
type Info struct {
	Backend string `json:"backend"`
	Source  string `json:"source"`
	Loaded  bool   `json:"loaded"`
}

// loader makes a load function idempotent and single-flight.
type loader struct {
	group  singleflight.Group
	loaded atomic.Bool
}

// ensure runs load at most once concurrently and never again after it
// succeeds. The load is detached from ctx cancellation because other
// callers may be waiting on it.
func (l *loader) ensure(ctx context.Context, load func(context.Context) (int, error)) error {
	if l.loaded.Load() {
		return nil
	}
	_, err, shared := l.group.Do("load", func() (any, error) {
		if l.loaded.Load() {
			return nil, nil
		}
		n, err := load(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		l.loaded.Store(true)
		log.Info().Int("words", n).Msg("corpus ready")
		return nil, nil
	})
	if shared {
		log.Debug().Msg("joined in-flight corpus load")
	}
	return err
}
