// ABOUTME: Search handlers for the Huma API
// ABOUTME: Provides HTTP endpoints for unified search, suggestions, and popular content

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"sitesearch-api/api/dto/mappers"
	"sitesearch-api/api/dto/responses"
	"sitesearch-api/core/domain"
)

// SearchService interface defines the methods needed from the search service
type SearchService interface {
	Search(ctx context.Context, query domain.SearchQuery) ([]domain.SearchResult, error)
	Suggest(ctx context.Context, query string) ([]string, error)
	Popular(ctx context.Context, limit int) ([]domain.PopularSummary, error)
}

// SearchHandler handles search-related HTTP requests
type SearchHandler struct {
	searchService SearchService
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService SearchService) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
	}
}

// RegisterRoutes registers all search-related routes
func (h *SearchHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "search",
		Method:      http.MethodGet,
		Path:        "/search",
		Summary:     "Search posts, tags, and projects",
		Description: "Runs a relevance-ranked search across all content types",
		Tags:        []string{"Search"},
	}, h.Search)

	huma.Register(api, huma.Operation{
		OperationID: "searchSuggest",
		Method:      http.MethodGet,
		Path:        "/search/suggest",
		Summary:     "Get search suggestions",
		Description: "Returns up to five title suggestions for a partial query",
		Tags:        []string{"Search"},
	}, h.Suggest)

	huma.Register(api, huma.Operation{
		OperationID: "searchPopular",
		Method:      http.MethodGet,
		Path:        "/search/popular",
		Summary:     "Get popular articles",
		Description: "Returns the most viewed articles as a fallback for empty queries",
		Tags:        []string{"Search"},
	}, h.Popular)
}

// SearchInput defines the input for the Search operation
type SearchInput struct {
	Query     string  `query:"q" required:"true" maxLength:"100" doc:"Query text"`
	Types     string  `query:"types,omitempty" doc:"Comma separated type filter (post, tag, project)"`
	Limit     int     `query:"limit,omitempty" minimum:"1" maximum:"100" default:"20" doc:"Maximum number of results"`
	Threshold float64 `query:"threshold,omitempty" minimum:"0" maximum:"1" doc:"Minimum relevance score (exclusive)"`
}

// SearchOutput defines the output for the Search operation
type SearchOutput struct {
	Body responses.SearchResponse
}

// Search handles the GET /search endpoint
func (h *SearchHandler) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	query := domain.SearchQuery{
		Text:      input.Query,
		Types:     mappers.ParseResultTypes(input.Types),
		Limit:     input.Limit,
		Threshold: input.Threshold,
	}

	results, err := h.searchService.Search(ctx, query)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &SearchOutput{
		Body: mappers.ToSearchResponse(input.Query, results),
	}, nil
}

// SuggestInput defines the input for the Suggest operation
type SuggestInput struct {
	Query string `query:"q" required:"true" maxLength:"100" doc:"Partial query text"`
}

// SuggestOutput defines the output for the Suggest operation
type SuggestOutput struct {
	Body responses.SuggestResponse
}

// Suggest handles the GET /search/suggest endpoint
func (h *SearchHandler) Suggest(ctx context.Context, input *SuggestInput) (*SuggestOutput, error) {
	suggestions, err := h.searchService.Suggest(ctx, input.Query)
	if err != nil {
		return nil, toHumaError(err)
	}

	// Never serialize suggestions as null
	if suggestions == nil {
		suggestions = []string{}
	}

	return &SuggestOutput{
		Body: responses.SuggestResponse{
			Suggestions: suggestions,
			Query:       input.Query,
		},
	}, nil
}

// PopularInput defines the input for the Popular operation
type PopularInput struct {
	Limit int `query:"limit,omitempty" minimum:"1" maximum:"20" default:"5" doc:"Maximum number of articles"`
}

// PopularOutput defines the output for the Popular operation
type PopularOutput struct {
	Body responses.PopularResponse
}

// Popular handles the GET /search/popular endpoint
func (h *SearchHandler) Popular(ctx context.Context, input *PopularInput) (*PopularOutput, error) {
	summaries, err := h.searchService.Popular(ctx, input.Limit)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &PopularOutput{
		Body: mappers.ToPopularResponse(summaries),
	}, nil
}
