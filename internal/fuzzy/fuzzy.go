// Package fuzzy is for approximate string comparison: edit distances and
// finding names similar to a misspelled one
package fuzzy

import (
	"sort"
	"strings"
)

// cutoff is the largest edit distance at which two names are still similar
const cutoff = 2

// Distance returns the levenshtein distance between two strings: the fewest
// substitutions, insertions and deletions that turn s into t.
// Only two rows of the edit matrix are kept, one per prefix length of t
func Distance(s, t string, ignoreCase bool) int {
	if ignoreCase {
		s = strings.ToUpper(s)
		t = strings.ToUpper(t)
	}

	prev := make([]int, len(t)+1)
	curr := make([]int, len(t)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(s); i++ {
		curr[0] = i
		for j := 1; j <= len(t); j++ {
			if s[i-1] == t[j-1] {
				curr[j] = prev[j-1]
				continue
			}
			lowest := min(prev[j], curr[j-1], prev[j-1])
			curr[j] = lowest + 1
		}
		prev, curr = curr, prev
	}
	return prev[len(t)]
}

// Similar returns the candidates that are similar to name, sorted.
//
// if several candidates contain the name, they are all returned.
// otherwise candidates beneath a levenshtein distance cutoff are returned
func Similar(name string, candidates []string) []string {
	lowerName := strings.ToLower(strings.TrimSpace(name))
	if lowerName == "" {
		return nil
	}

	containing := []string{}
	lowDistance := []string{}
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c), lowerName) {
			containing = append(containing, c)
		} else if len(c) > cutoff && Distance(lowerName, c, true) <= cutoff {
			lowDistance = append(lowDistance, c)
		}
	}

	if len(containing) < 3 {
		lowDistance = append(lowDistance, containing...)
		containing = []string{} // clear
	}

	similar := lowDistance
	if len(containing) > 0 {
		similar = containing
	}
	sort.Strings(similar)
	return similar
}
