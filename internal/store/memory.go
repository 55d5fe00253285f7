// internal/store/memory.go
//
// In-memory Store implementation.
// Used for development, tests, or small corpora where durability is not
// required.
//
// Characteristics:
//   - Words kept in insertion order (the canonical candidate order).
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Contents are lost when the process restarts; the source is re-read.

package store

import (
	"context"
	"slices"
	"sync"

	"github.com/samber/lo"

	"github.com/gae-22/wordle/internal/solver"
	"github.com/gae-22/wordle/internal/words"
)

type memory struct {
	loader
	src  words.Source
	mu   sync.RWMutex // guards list
	list []string
}

// NewMemory constructs an in-memory Store fed by src.
func NewMemory(src words.Source) Store {
	return &memory{src: src}
}

// EnsureLoaded reads the whole source into memory once.
func (m *memory) EnsureLoaded(ctx context.Context) error {
	return m.ensure(ctx, func(ctx context.Context) (int, error) {
		list, err := words.Collect(ctx, m.src)
		if err != nil {
			return 0, err
		}
		m.mu.Lock()
		m.list = list
		m.mu.Unlock()
		return len(list), nil
	})
}

// Count returns the number of loaded words.
func (m *memory) Count(context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.list), nil
}

// Query filters the loaded words with c.Allows, preserving order.
func (m *memory) Query(_ context.Context, c solver.Constraints) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c.Empty() {
		return slices.Clone(m.list), nil
	}
	return lo.Filter(m.list, func(w string, _ int) bool { return c.Allows(w) }), nil
}

func (m *memory) Info() Info {
	return Info{Backend: "memory", Source: m.src.Name(), Loaded: m.loaded.Load()}
}
