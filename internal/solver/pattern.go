package solver

// Evaluate computes the feedback pattern guess would receive if answer
// were the solution.
//
// Pass 1 marks exact matches as Hit and claims those answer positions.
// Pass 2 walks the remaining guess letters left to right and claims the
// first unclaimed answer position holding the same letter as a Bite.
// Anything left over stays Absent. Hits must all be claimed before any
// Bite is considered, otherwise repeated letters are double counted.
func Evaluate(answer, guess string) Pattern {
	var (
		res  Pattern
		used [WordLength]bool
	)
	for i := range res {
		res[i] = Absent
	}

	for i := 0; i < WordLength; i++ {
		if guess[i] == answer[i] {
			res[i] = Hit
			used[i] = true
		}
	}

	for i := 0; i < WordLength; i++ {
		if res[i] == Hit {
			continue
		}
		for j := 0; j < WordLength; j++ {
			if !used[j] && answer[j] == guess[i] {
				res[i] = Bite
				used[j] = true
				break
			}
		}
	}
	return res
}
