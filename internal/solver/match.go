package solver

// Matches reports whether word is consistent with a single recorded guess,
// i.e. whether word as the answer would have produced exactly that feedback.
func Matches(word string, g Guess) bool {
	return Evaluate(word, g.Word) == g.Pattern()
}

// MatchesAll reports whether word is consistent with every guess in history.
// An empty history matches everything.
func MatchesAll(word string, history []Guess) bool {
	for _, g := range history {
		if !Matches(word, g) {
			return false
		}
	}
	return true
}
