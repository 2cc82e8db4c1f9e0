package catalog

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns the candidate closest to name, or "" when nothing is close
// enough to be a likely typo
func Suggest(name string, candidates []string) string {
	target := strings.ToLower(name)
	limit := suggestionLimit(len(target))

	best := ""
	bestDist := limit + 1
	for _, cand := range candidates {
		dist := levenshtein.ComputeDistance(target, strings.ToLower(cand))
		if dist < bestDist || (dist == bestDist && cand < best) {
			best, bestDist = cand, dist
		}
	}
	if bestDist > limit {
		return ""
	}
	return best
}

func suggestionLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
