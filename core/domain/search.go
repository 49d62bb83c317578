// ABOUTME: Search domain models for unified multi-entity search
// ABOUTME: Defines the query options and ranked result structures

package domain

// ResultType identifies which kind of entity a search result refers to
type ResultType string

// Supported result types
const (
	ResultTypePost    ResultType = "post"
	ResultTypeTag     ResultType = "tag"
	ResultTypeProject ResultType = "project"
)

// AllResultTypes lists every searchable entity type, in aggregation order
var AllResultTypes = []ResultType{ResultTypePost, ResultTypeTag, ResultTypeProject}

// Search defaults
const (
	// DefaultSearchLimit is the maximum result count when none is requested
	DefaultSearchLimit = 20

	// DefaultSearchThreshold is the minimum relevance score a result must
	// exceed to appear in the final list
	DefaultSearchThreshold = 0.3
)

// SearchQuery holds the normalized options for a single search invocation
type SearchQuery struct {
	// Text is the trimmed query text with original casing preserved
	Text string

	// Types restricts which entity types to search; empty means all
	Types []ResultType

	// Limit is the maximum number of results to return
	Limit int

	// Threshold is the minimum score (exclusive) for a result to qualify
	Threshold float64
}

// ApplyDefaults fills unset query options with their defaults
func (q *SearchQuery) ApplyDefaults() {
	if q.Limit <= 0 {
		q.Limit = DefaultSearchLimit
	}
	if q.Threshold <= 0 {
		q.Threshold = DefaultSearchThreshold
	}
	if len(q.Types) == 0 {
		q.Types = AllResultTypes
	}
}

// WantsType reports whether the query includes the given entity type
func (q *SearchQuery) WantsType(t ResultType) bool {
	for _, qt := range q.Types {
		if qt == t {
			return true
		}
	}
	return false
}

// Highlight carries display fields with query occurrences wrapped in markup
type Highlight struct {
	// Title is the result title with matches marked
	Title string

	// Description is the result description with matches marked
	Description string
}

// SearchResult represents a single ranked search hit
type SearchResult struct {
	// ID is unique across all types; tags and projects are type-prefixed
	ID string

	// Title is the entity's display title
	Title string

	// Description is the entity's description; may be empty
	Description string

	// Type identifies the entity kind
	Type ResultType

	// Slug is the URL-friendly identifier used to build URL
	Slug string

	// URL is the canonical link to the entity
	URL string

	// Highlight holds display fields with matches marked
	Highlight Highlight

	// Metadata holds type-specific attributes (publish date, tech stack, ...)
	Metadata map[string]interface{}

	// Score is the relevance score in [0,1]; drives ordering
	Score float64
}

// PopularSummary is a lightweight view of a frequently-read article
type PopularSummary struct {
	// ID is the article's identifier
	ID string

	// Title is the article's title
	Title string

	// Slug is the URL-friendly identifier
	Slug string

	// URL is the canonical link
	URL string

	// Views is the accumulated view count
	Views int
}
