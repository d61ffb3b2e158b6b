package quiz

import "math/rand"

// buildOptions assembles the choice list for one question: the correct
// answer plus up to MaxOptions-1 distinct distractors drawn from the
// pool, shuffled together. Duplicates of the answer and of each other
// are removed before drawing, so small pools yield short lists rather
// than repeats.
func buildOptions(correct string, pool []string, rng *rand.Rand) []string {
	seen := map[string]bool{correct: true}
	candidates := make([]string, 0, len(pool))
	for _, a := range pool {
		if a == "" || seen[a] {
			continue
		}
		seen[a] = true
		candidates = append(candidates, a)
	}

	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > MaxOptions-1 {
		candidates = candidates[:MaxOptions-1]
	}

	options := append(candidates, correct)
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}
