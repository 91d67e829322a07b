// Package quality computes an advisory confidence score for a translation.
// The score is a heuristic built from the length ratio, trailing sentence
// punctuation and the presence of common provider artifacts. It is never
// used to reject or retry a translation.
package quality

import (
	"strings"
	"unicode/utf8"
)

// DefaultScore is returned when scoring cannot complete.
const DefaultScore = 0.5

const artifactPenalty = 0.1

// artifacts are checked for presence only; repeated occurrences of the same
// marker cost nothing extra.
var artifacts = []string{"[", "]", "...", "??", "!!"}

// Score rates translated against original and always returns a value in
// [0, 1]. An empty original yields a length ratio of 0.
func Score(original, translated string) (score float64) {
	defer func() {
		if recover() != nil {
			score = DefaultScore
		}
	}()

	ratio := 0.0
	if n := utf8.RuneCountInString(original); n > 0 {
		ratio = float64(utf8.RuneCountInString(translated)) / float64(n)
	}

	penalty := 0.0
	for _, a := range artifacts {
		if strings.Contains(translated, a) {
			penalty += artifactPenalty
		}
	}

	return clamp((lengthScore(ratio)+sentenceScore(translated)-penalty)/2, 0, 1)
}

func lengthScore(ratio float64) float64 {
	switch {
	case ratio < 0.1 || ratio > 3.0:
		return 0.3
	case ratio >= 0.5 && ratio <= 2.0:
		return 1.0
	default:
		return 0.7
	}
}

func sentenceScore(translated string) float64 {
	if strings.HasSuffix(translated, ".") ||
		strings.HasSuffix(translated, "!") ||
		strings.HasSuffix(translated, "?") {
		return 1.0
	}
	return 0.8
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
