// ABOUTME: Response DTOs for search-related API endpoints
// ABOUTME: Provides structured responses with JSON serialization

package responses

// HighlightResponse carries display fields with query matches marked
type HighlightResponse struct {
	Title       string `json:"title,omitempty" doc:"Result title with matches wrapped in <mark> tags"`
	Description string `json:"description,omitempty" doc:"Result description with matches wrapped in <mark> tags"`
}

// SearchResultResponse represents a single ranked result in API responses
type SearchResultResponse struct {
	ID          string                 `json:"id" doc:"Unique identifier across all result types"`
	Title       string                 `json:"title" doc:"Entity display title"`
	Description string                 `json:"description,omitempty" doc:"Entity description"`
	Type        string                 `json:"type" enum:"post,tag,project" doc:"Entity kind"`
	Slug        string                 `json:"slug" doc:"URL-friendly identifier"`
	URL         string                 `json:"url" doc:"Canonical link to the entity"`
	Highlight   HighlightResponse      `json:"highlight" doc:"Display fields with matches marked"`
	Metadata    map[string]interface{} `json:"metadata,omitempty" doc:"Type-specific attributes"`
	Score       float64                `json:"score" minimum:"0" maximum:"1" doc:"Relevance score"`
}

// SearchResponse represents the response for a search request
type SearchResponse struct {
	Results []SearchResultResponse `json:"results" doc:"Ranked search results"`
	Query   string                 `json:"query" doc:"The query text that was searched"`
	Total   int                    `json:"total" doc:"Number of results returned"`
}

// SuggestResponse represents the response for a suggestion request
type SuggestResponse struct {
	Suggestions []string `json:"suggestions" maxItems:"5" doc:"Suggested completion titles"`
	Query       string   `json:"query" doc:"The partial query the suggestions are for"`
}

// PopularArticleResponse represents a frequently-read article summary
type PopularArticleResponse struct {
	ID    string `json:"id" doc:"Article identifier"`
	Title string `json:"title" doc:"Article title"`
	Slug  string `json:"slug" doc:"URL-friendly identifier"`
	URL   string `json:"url" doc:"Canonical link to the article"`
	Views int    `json:"views" doc:"Accumulated view count"`
}

// PopularResponse represents the response for a popular content request
type PopularResponse struct {
	Results []PopularArticleResponse `json:"results" doc:"Most viewed articles"`
}
