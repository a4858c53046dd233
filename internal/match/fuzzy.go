package match

import (
	"regexp"
	"strings"
)

// numberVariantRe splits "<base> <digits> <trailing>" so "HBO 2" and
// "HBO 2 Feed" can be retried as "HBO2". The single most common formatting
// divergence in premium channel naming.
var numberVariantRe = regexp.MustCompile(`^(.+?)\s*(\d+)\s*(.*)$`)

// Match finds the best premium candidate for a comparison string.
// Three stages, first success wins:
//  1. exact normalized-key match (score 100)
//  2. number-variant rewrite ("HBO 2" -> "HBO2"), then exact match again
//  3. Levenshtein-ratio scoring against every key, accepted at or above
//     threshold; ties go to the shortest canonical name, then lexicographic
//     order, so identical input always yields identical output
//
// No candidate is a defined outcome, not an error.
func (ix *Index) Match(comparison string, threshold int) (PremiumEntry, int, bool) {
	key := NormalizeKey(comparison)
	if key == "" {
		return PremiumEntry{}, 0, false
	}

	if i, ok := ix.byKey[key]; ok {
		return ix.entries[i], 100, true
	}

	if m := numberVariantRe.FindStringSubmatch(comparison); m != nil {
		variant := NormalizeKey(m[1] + m[2])
		if variant != "" && variant != key {
			if i, ok := ix.byKey[variant]; ok {
				return ix.entries[i], 100, true
			}
		}
	}

	best := -1
	bestScore := 0
	for i, e := range ix.entries {
		score := ratio(key, e.NormalizedKey)
		if score < bestScore || score < threshold {
			continue
		}
		if score > bestScore || best < 0 || betterTie(e, ix.entries[best]) {
			best = i
			bestScore = score
		}
	}
	if best < 0 {
		return PremiumEntry{}, 0, false
	}
	return ix.entries[best], bestScore, true
}

// betterTie reports whether a should replace b at equal score.
func betterTie(a, b PremiumEntry) bool {
	if len(a.CanonicalName) != len(b.CanonicalName) {
		return len(a.CanonicalName) < len(b.CanonicalName)
	}
	return strings.Compare(a.CanonicalName, b.CanonicalName) < 0
}

// ratio converts edit distance into a 0-100 similarity score:
// 100 * (1 - dist/maxLen), truncated. Symmetric in its arguments.
func ratio(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	if maxLen == 0 {
		return 100
	}
	dist := levenshtein(ra, rb)
	return (maxLen - dist) * 100 / maxLen
}

// levenshtein computes edit distance with the two-row method.
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			curr[j] = minOf(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func minOf(x, y, z int) int {
	if x < y {
		if x < z {
			return x
		}
		return z
	}
	if y < z {
		return y
	}
	return z
}
