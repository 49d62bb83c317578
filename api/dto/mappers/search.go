// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"strings"

	"sitesearch-api/api/dto/responses"
	"sitesearch-api/core/domain"
)

// ToSearchResultResponse converts a domain SearchResult to its DTO
func ToSearchResultResponse(result *domain.SearchResult) *responses.SearchResultResponse {
	if result == nil {
		return nil
	}

	return &responses.SearchResultResponse{
		ID:          result.ID,
		Title:       result.Title,
		Description: result.Description,
		Type:        string(result.Type),
		Slug:        result.Slug,
		URL:         result.URL,
		Highlight: responses.HighlightResponse{
			Title:       result.Highlight.Title,
			Description: result.Highlight.Description,
		},
		Metadata: result.Metadata,
		Score:    result.Score,
	}
}

// ToSearchResponse converts ranked domain results to a SearchResponse DTO
func ToSearchResponse(query string, results []domain.SearchResult) responses.SearchResponse {
	out := make([]responses.SearchResultResponse, 0, len(results))

	for i := range results {
		if r := ToSearchResultResponse(&results[i]); r != nil {
			out = append(out, *r)
		}
	}

	return responses.SearchResponse{
		Results: out,
		Query:   query,
		Total:   len(out),
	}
}

// ToPopularResponse converts popular article summaries to a PopularResponse DTO
func ToPopularResponse(summaries []domain.PopularSummary) responses.PopularResponse {
	out := make([]responses.PopularArticleResponse, 0, len(summaries))

	for _, s := range summaries {
		out = append(out, responses.PopularArticleResponse{
			ID:    s.ID,
			Title: s.Title,
			Slug:  s.Slug,
			URL:   s.URL,
			Views: s.Views,
		})
	}

	return responses.PopularResponse{Results: out}
}

// ParseResultTypes parses a comma separated types filter into domain types.
// Unknown type names are ignored; an empty filter yields nil (all types).
func ParseResultTypes(raw string) []domain.ResultType {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var types []domain.ResultType
	for _, part := range strings.Split(raw, ",") {
		switch domain.ResultType(strings.TrimSpace(part)) {
		case domain.ResultTypePost:
			types = append(types, domain.ResultTypePost)
		case domain.ResultTypeTag:
			types = append(types, domain.ResultTypeTag)
		case domain.ResultTypeProject:
			types = append(types, domain.ResultTypeProject)
		}
	}

	return types
}
