package solver

import (
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Constraints is the structural summary of a guess history that a corpus
// store can turn into a query. It is necessary but not sufficient: it does
// not capture exact letter multiplicities, so every word a store returns
// for it must still be replayed with MatchesAll.
type Constraints struct {
	// FixedAt holds the letter known at each position; 0 means unknown.
	FixedAt [WordLength]byte
	// ExcludedAt lists, per position, letters that received BITE there.
	ExcludedAt [WordLength][]byte
	// MustContain lists letters that received HIT or BITE anywhere.
	MustContain []byte
	// GloballyExcluded lists letters that were only ever ABSENT.
	GloballyExcluded []byte
}

// Extract derives Constraints from a guess history. Guess order does not
// matter. Letter lists are de-duplicated and sorted so the result is
// deterministic for equal histories.
//
// Contradictory HITs for the same position keep the last one seen; such a
// history simply resolves to no candidates once MatchesAll replays it.
func Extract(history []Guess) Constraints {
	var (
		c       Constraints
		present []byte
		absent  []byte
	)
	for _, g := range history {
		for i, it := range g.Items {
			switch it.Result {
			case Hit:
				c.FixedAt[i] = it.Letter
				present = append(present, it.Letter)
			case Bite:
				c.ExcludedAt[i] = append(c.ExcludedAt[i], it.Letter)
				present = append(present, it.Letter)
			case Absent:
				absent = append(absent, it.Letter)
			}
		}
	}

	for i := range c.ExcludedAt {
		c.ExcludedAt[i] = sortedSet(c.ExcludedAt[i])
	}
	c.MustContain = sortedSet(present)
	// A repeated letter can be ABSENT at one position and still be in the
	// answer, so anything seen as HIT/BITE is exempt from global exclusion.
	c.GloballyExcluded = sortedSet(lo.Without(absent, c.MustContain...))
	return c
}

// Empty reports whether c places no restriction at all.
func (c Constraints) Empty() bool {
	for i := 0; i < WordLength; i++ {
		if c.FixedAt[i] != 0 || len(c.ExcludedAt[i]) > 0 {
			return false
		}
	}
	return len(c.MustContain) == 0 && len(c.GloballyExcluded) == 0
}

// Allows reports whether word satisfies c structurally. Stores without a
// query language use it as their filter.
func (c Constraints) Allows(word string) bool {
	if len(word) != WordLength {
		return false
	}
	for i := 0; i < WordLength; i++ {
		if f := c.FixedAt[i]; f != 0 && word[i] != f {
			return false
		}
		if slices.Contains(c.ExcludedAt[i], word[i]) {
			return false
		}
	}
	for _, l := range c.MustContain {
		if strings.IndexByte(word, l) < 0 {
			return false
		}
	}
	for _, l := range c.GloballyExcluded {
		if strings.IndexByte(word, l) >= 0 {
			return false
		}
	}
	return true
}

func sortedSet(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	out := lo.Uniq(b)
	slices.Sort(out)
	return out
}
