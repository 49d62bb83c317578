// ABOUTME: Field-level relevance scoring with exact/prefix/substring/fuzzy tiers
// ABOUTME: Provides the single-field scorer and the fuzzy subsequence matcher

package search

import "strings"

// Score tiers, evaluated in order with first match winning. Exact and prefix
// matches deliberately dominate partial and fuzzy ones.
const (
	exactMatchScore     = 1.0
	prefixMatchScore    = 0.8
	substringMatchScore = 0.6
	fuzzyMatchCeiling   = 0.4
)

// scoreField computes the similarity of a single text field to the query,
// returning a score in [0,1]. An empty field always scores 0.
func scoreField(query, field string) float64 {
	if field == "" || query == "" {
		return 0
	}

	q := strings.ToLower(query)
	f := strings.ToLower(field)

	switch {
	case f == q:
		return exactMatchScore
	case strings.HasPrefix(f, q):
		return prefixMatchScore
	case strings.Contains(f, q):
		return substringMatchScore
	}

	return fuzzyMatchCeiling * fuzzySubsequenceScore(q, f)
}

// fuzzySubsequenceScore returns the fraction of query characters that appear
// in order within text, or 0 if the query never completes as a subsequence.
// A match that does not consume the whole query contributes nothing.
// Single pass over text, no backtracking.
func fuzzySubsequenceScore(query, text string) float64 {
	q := []rune(query)
	if len(q) == 0 {
		return 0
	}

	matched := 0
	for _, r := range text {
		if matched == len(q) {
			break
		}
		if r == q[matched] {
			matched++
		}
	}

	if matched < len(q) {
		return 0
	}

	return float64(matched) / float64(len(q))
}
