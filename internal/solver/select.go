package solver

import "math"

// LargeThreshold is the candidate count above which Select switches from
// exact entropy search (quadratic in the number of candidates) to the
// positional-frequency heuristic.
const LargeThreshold = 3000

// Select picks the next guess among candidates using LargeThreshold.
func Select(candidates []string) Suggestion {
	return SelectWithThreshold(candidates, LargeThreshold)
}

// SelectWithThreshold picks the next guess among candidates.
//
//   - one candidate: that word, entropy 0.
//   - more than threshold: positional-frequency heuristic, entropy 0.
//   - otherwise: the candidate with the highest expected entropy.
//
// Ties always go to the earliest candidate in slice order.
func SelectWithThreshold(candidates []string, threshold int) Suggestion {
	switch n := len(candidates); {
	case n == 0:
		return Suggestion{Message: NoCandidatesMessage}
	case n == 1:
		return Suggestion{Word: candidates[0], Entropy: 0, Method: MethodSingle}
	case n > threshold:
		return Suggestion{Word: bestByFrequency(candidates), Entropy: 0, Method: MethodHeuristic}
	}

	best, bestH := candidates[0], -1.0
	for _, g := range candidates {
		if h := Entropy(g, candidates); h > bestH {
			best, bestH = g, h
		}
	}
	return Suggestion{Word: best, Entropy: bestH, Method: MethodExact}
}

// Entropy returns the Shannon entropy, in bits, of the distribution of
// feedback patterns guess would produce across candidates taken as equally
// likely answers. The result lies in [0, log2(len(candidates))].
func Entropy(guess string, candidates []string) float64 {
	if len(candidates) == 0 {
		return 0
	}
	counts := make(map[Pattern]int)
	for _, ans := range candidates {
		counts[Evaluate(ans, guess)]++
	}
	total := float64(len(candidates))
	h := 0.0
	for _, n := range counts {
		p := float64(n) / total
		h -= p * math.Log2(p)
	}
	return h
}

// bestByFrequency scores each candidate by how common its letters are at
// their positions across all candidates. A repeated letter only counts at
// its first position.
func bestByFrequency(candidates []string) string {
	var freq [WordLength][26]int
	for _, w := range candidates {
		for i := 0; i < WordLength; i++ {
			freq[i][w[i]-'a']++
		}
	}

	best, bestScore := candidates[0], -1
	for _, w := range candidates {
		score := 0
		var seen [26]bool
		for i := 0; i < WordLength; i++ {
			l := w[i] - 'a'
			if !seen[l] {
				score += freq[i][l]
			}
			seen[l] = true
		}
		if score > bestScore {
			best, bestScore = w, score
		}
	}
	return best
}
