// ABOUTME: Highlighter that wraps query matches in markup for UI display
// ABOUTME: Treats the query as a literal string and is safe to re-apply

package search

import (
	"regexp"
	"strings"
)

// HighlightMatches wraps every case-insensitive occurrence of query in text
// with <mark> tags. The query is treated as a literal string; characters
// significant to regular expressions are escaped first, so queries like
// "a.b" or "x*y" highlight literally. Occurrences that are already wrapped
// are left as they are, which makes re-application with the same query a
// no-op. Highlighting is cosmetic and never affects scoring.
func HighlightMatches(text, query string) string {
	if text == "" || strings.TrimSpace(query) == "" {
		return text
	}

	// QuoteMeta guarantees the pattern compiles regardless of query content.
	pattern := regexp.MustCompile(`(?i)(<mark>)?(` + regexp.QuoteMeta(query) + `)(</mark>)?`)

	return pattern.ReplaceAllString(text, "<mark>${2}</mark>")
}
