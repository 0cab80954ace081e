// Package suggest finds the closest known word to a mistyped one.
package suggest

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// limit is the largest edit distance accepted for a candidate of the given
// length.
func limit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// Closest returns the candidate nearest to word, comparing case-insensitively.
// A candidate that starts with word wins outright. Ties go to the earlier
// candidate. ok is false when nothing is close enough or word matches a
// candidate exactly.
func Closest(word string, candidates []string) (best string, ok bool) {
	w := strings.ToLower(strings.TrimSpace(word))
	if w == "" {
		return "", false
	}

	bestDist := -1
	for _, cand := range candidates {
		c := strings.ToLower(cand)
		if cand == word {
			return "", false
		}
		var dist int
		switch {
		case c == w:
			dist = 0
		case strings.HasPrefix(c, w) && len(w) >= 2:
			dist = 0
		default:
			dist = levenshtein.ComputeDistance(w, c)
			if dist > limit(len(c)) {
				continue
			}
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = cand, dist
		}
	}
	return best, bestDist >= 0
}
