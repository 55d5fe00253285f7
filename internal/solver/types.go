// internal/solver/types.go
//
// Core type definitions for the solving engine.
// Defines:
//   - Outcome: per-letter feedback for a guess (HIT/BITE/ABSENT).
//   - Guess / GuessItem: one recorded guess and its feedback.
//   - Suggestion: the recommended next guess (or an empty-set message).

package solver

// WordLength is the fixed number of letters in every word and guess.
const WordLength = 5

// Outcome represents the feedback for a single letter in a guess.
// Possible values:
//   - "HIT":    letter is correct and in the correct position.
//   - "BITE":   letter exists in the answer but at a different position.
//   - "ABSENT": letter is not in the answer at this position, after
//     duplicate-letter accounting.
type Outcome string

const (
	Hit    Outcome = "HIT"
	Bite   Outcome = "BITE"
	Absent Outcome = "ABSENT"
)

// Valid reports whether o is one of the three known outcomes.
func (o Outcome) Valid() bool {
	return o == Hit || o == Bite || o == Absent
}

// Pattern is the full feedback for one guess, indexed by position.
// It is comparable and used directly as a map key when partitioning.
type Pattern [WordLength]Outcome

// GuessItem is one letter of a guess together with its outcome.
type GuessItem struct {
	Letter byte
	Result Outcome
}

// Guess is a recorded guess. Items[i].Letter == Word[i] for every i.
type Guess struct {
	Word  string
	Items [WordLength]GuessItem
}

// Pattern returns the recorded outcomes as a Pattern.
func (g Guess) Pattern() Pattern {
	var p Pattern
	for i, it := range g.Items {
		p[i] = it.Result
	}
	return p
}

// Method records how a Suggestion was produced.
type Method string

const (
	MethodSingle    Method = "single"    // exactly one candidate left
	MethodExact     Method = "exact"     // full expected-entropy search
	MethodHeuristic Method = "heuristic" // positional-frequency fallback
)

// NoCandidatesMessage is reported when no corpus word fits the history.
const NoCandidatesMessage = "No candidates left"

// Suggestion is the solver's answer for a history.
// Either Word is set (with Entropy and Method) or Message is set.
type Suggestion struct {
	Word    string
	Entropy float64
	Method  Method
	Message string
}

// Empty reports whether the suggestion signals an empty candidate set.
func (s Suggestion) Empty() bool { return s.Word == "" }

// NewGuess builds a Guess for word with the given feedback.
// word must be WordLength lower-case letters.
func NewGuess(word string, p Pattern) Guess {
	g := Guess{Word: word}
	for i := range g.Items {
		g.Items[i] = GuessItem{Letter: word[i], Result: p[i]}
	}
	return g
}
