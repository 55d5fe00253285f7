// internal/store/sqlite.go
//
// SQLite-backed Store.
// The words table (see internal/database/sql) has one indexed column per
// letter position, so every structural constraint maps to a simple
// predicate:
//   - fixed letter at i        → <col_i> = ?
//   - letter excluded at i     → <col_i> != ?
//   - letter required anywhere → ? IN (first, second, third, fourth, fifth)
//   - letter excluded anywhere → ? NOT IN (first, second, third, fourth, fifth)
//
// Population happens once, when the table is empty: the source is streamed
// and inserted in batches inside a single transaction, so a failed load
// leaves the table empty and is retried on the next call.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/gae-22/wordle/internal/solver"
	"github.com/gae-22/wordle/internal/words"
)

// insertBatch rows per INSERT; 6 params each keeps us under SQLite's
// default limit of 999 bound parameters.
const insertBatch = 120

var positionColumns = [solver.WordLength]string{"first", "second", "third", "fourth", "fifth"}

type sqliteStore struct {
	loader
	db  *sql.DB
	src words.Source
}

// NewSQLite constructs a Store over db, which must already be migrated.
// src is only read if the words table is empty.
func NewSQLite(db *sql.DB, src words.Source) Store {
	return &sqliteStore{db: db, src: src}
}

// Count returns the number of rows in the words table.
func (s *sqliteStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM words`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count words: %w", err)
	}
	return n, nil
}

// EnsureLoaded populates the table from the source if it is empty.
func (s *sqliteStore) EnsureLoaded(ctx context.Context) error {
	return s.ensure(ctx, s.populate)
}

func (s *sqliteStore) populate(ctx context.Context) (int, error) {
	n, err := s.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		log.Info().Int("words", n).Msg("corpus already present")
		return n, nil
	}

	log.Info().Str("source", s.src.Name()).Msg("loading corpus")
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	batch := make([]string, 0, insertBatch)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		q, args := insertQuery(batch)
		batch = batch[:0]
		_, err := tx.ExecContext(ctx, q, args...)
		return err
	}

	total, err := words.Scan(ctx, s.src, func(w string) error {
		batch = append(batch, w)
		if len(batch) >= insertBatch {
			return flush()
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("load corpus: %w", err)
	}
	if err := flush(); err != nil {
		return 0, fmt.Errorf("load corpus: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit corpus: %w", err)
	}
	log.Info().Int("words", total).Str("source", s.src.Name()).Msg("loaded corpus")
	return total, nil
}

// insertQuery builds one multi-row INSERT OR IGNORE for batch.
func insertQuery(batch []string) (string, []any) {
	var b strings.Builder
	b.WriteString(`INSERT OR IGNORE INTO words (word, first, second, third, fourth, fifth) VALUES `)
	args := make([]any, 0, len(batch)*6)
	for i, w := range batch {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString("(?,?,?,?,?,?)")
		args = append(args, w, w[0:1], w[1:2], w[2:3], w[3:4], w[4:5])
	}
	return b.String(), args
}

// Query returns the words satisfying c in insertion order.
func (s *sqliteStore) Query(ctx context.Context, c solver.Constraints) ([]string, error) {
	q, args := selectQuery(c)
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query words: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// selectQuery turns c into a parameterized SELECT.
func selectQuery(c solver.Constraints) (string, []any) {
	var (
		where []string
		args  []any
	)
	for i, col := range positionColumns {
		if f := c.FixedAt[i]; f != 0 {
			where = append(where, col+" = ?")
			args = append(args, string(f))
		}
		for _, l := range c.ExcludedAt[i] {
			where = append(where, col+" != ?")
			args = append(args, string(l))
		}
	}
	all := strings.Join(positionColumns[:], ", ")
	for _, l := range c.MustContain {
		where = append(where, "? IN ("+all+")")
		args = append(args, string(l))
	}
	for _, l := range c.GloballyExcluded {
		where = append(where, "? NOT IN ("+all+")")
		args = append(args, string(l))
	}

	q := "SELECT word FROM words"
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	return q + " ORDER BY id", args
}

func (s *sqliteStore) Info() Info {
	return Info{Backend: "sqlite", Source: s.src.Name(), Loaded: s.loaded.Load()}
}
