package match

import (
	"strings"

	"datamodel-generator/internal/common"
)

// MinSimilarity is the default threshold of Closest.
const MinSimilarity = 0.6

// Closest returns the candidate most similar to name. It reports false when
// no candidate reaches minScore, when the best score is shared, or when name
// itself is a candidate.
func Closest(name string, candidates []string, minScore float64) (string, bool) {
	key := strings.ToLower(name)
	bestScore := -1.0

	var best []string

	for _, c := range candidates {
		if c == name {
			return "", false
		}

		score := Similarity(key, strings.ToLower(c))

		switch {
		case score > bestScore:
			bestScore = score
			best = append(best[:0], c)
		case score == bestScore:
			best = append(best, c)
		}
	}

	if bestScore < minScore || !common.IsSingle(best) {
		return "", false
	}

	return common.First(best)
}

// Hint formats the suggestion suffix for a diagnostic message, or returns ""
// when there is none.
func Hint(name string, candidates []string) string {
	s, ok := Closest(name, candidates, MinSimilarity)
	if !ok {
		return ""
	}

	return ", did you mean '" + s + "'?"
}
