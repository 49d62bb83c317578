// ABOUTME: Search service providing unified ranked search across content entities
// ABOUTME: Fans out per-source matchers, merges and sorts scored results

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"sitesearch-api/core/domain"
	coreerrors "sitesearch-api/core/errors"
	"sitesearch-api/core/interfaces"
	"sitesearch-api/pkg/featureflags"
)

// Query length bounds. Queries shorter than the minimum short-circuit to an
// empty result list without touching the content store; this is not an error.
const (
	minQueryLength = 2
	maxQueryLength = 100
)

// cacheTTL is how long serialized search responses stay cached
const cacheTTL = 5 * time.Minute

// SearchService handles unified search operations
type SearchService struct {
	deps  interfaces.Dependencies
	store interfaces.ContentStore
}

// NewSearchService creates a new search service instance
func NewSearchService(deps interfaces.Dependencies, store interfaces.ContentStore) *SearchService {
	return &SearchService{
		deps:  deps,
		store: store,
	}
}

// validateQuery validates search query text beyond the short-circuit minimum
func (s *SearchService) validateQuery(query string) error {
	if len(query) > maxQueryLength {
		return &coreerrors.ValidationError{
			Field:   "q",
			Message: "search query cannot exceed 100 characters",
		}
	}
	return nil
}

// Search scores and ranks entities matching the query across the requested
// entity types. Matchers for each type run concurrently; the join is
// fail-fast unless the partial_results feature flag opts into degrading
// gracefully, in which case failed sources are logged and skipped.
func (s *SearchService) Search(ctx context.Context, query domain.SearchQuery) ([]domain.SearchResult, error) {
	query.Text = strings.TrimSpace(query.Text)
	if len(query.Text) < minQueryLength {
		return []domain.SearchResult{}, nil
	}

	if err := s.validateQuery(query.Text); err != nil {
		return nil, err
	}

	query.ApplyDefaults()

	cacheKey := searchCacheKey(query)
	if cached, ok := s.cachedResults(ctx, cacheKey); ok {
		return cached, nil
	}

	partial := featureflags.IsEnabled(ctx, featureflags.PartialResults)

	// One bucket per requested type keeps per-source ordering deterministic
	// for the stable sort below.
	buckets := make([][]domain.SearchResult, len(query.Types))

	g, gctx := errgroup.WithContext(ctx)
	for i, t := range query.Types {
		i, t := i, t
		g.Go(func() error {
			matched, err := s.matchSource(gctx, t, query)
			if err != nil {
				recallErr := &coreerrors.RecallError{Source: string(t), Err: err}
				if partial {
					if s.deps.Logger != nil {
						s.deps.Logger.Warn("Search source failed, degrading", map[string]interface{}{
							"source": string(t),
							"error":  err.Error(),
						})
					}
					return nil
				}
				return recallErr
			}
			buckets[i] = matched
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make([]domain.SearchResult, 0)
	for _, bucket := range buckets {
		merged = append(merged, bucket...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Score > merged[j].Score
	})

	if len(merged) > query.Limit {
		merged = merged[:query.Limit]
	}

	s.cacheResults(ctx, cacheKey, merged)

	return merged, nil
}

// Suggestion limits per source. Articles take priority over tags, tags over
// projects when the combined list is truncated.
const (
	maxSuggestions         = 5
	articleSuggestionLimit = 3
	tagSuggestionLimit     = 3
	projectSuggestionLimit = 2
)

// Suggest returns up to five de-duplicated completion candidates drawn from
// article titles, tag names, and project titles. Uses the same substring
// recall as Search but no scoring.
func (s *SearchService) Suggest(ctx context.Context, query string) ([]string, error) {
	query = strings.TrimSpace(query)
	if len(query) < minQueryLength {
		return []string{}, nil
	}

	if err := s.validateQuery(query); err != nil {
		return nil, err
	}

	articles, err := s.store.FindArticles(ctx, query, articleSuggestionLimit)
	if err != nil {
		return nil, &coreerrors.RecallError{Source: string(domain.ResultTypePost), Err: err}
	}

	tags, err := s.store.FindTags(ctx, query, tagSuggestionLimit)
	if err != nil {
		return nil, &coreerrors.RecallError{Source: string(domain.ResultTypeTag), Err: err}
	}

	projects, err := s.store.FindProjects(ctx, query, projectSuggestionLimit)
	if err != nil {
		return nil, &coreerrors.RecallError{Source: string(domain.ResultTypeProject), Err: err}
	}

	seen := make(map[string]struct{})
	suggestions := make([]string, 0, maxSuggestions)

	add := func(text string) {
		if text == "" || len(suggestions) >= maxSuggestions {
			return
		}
		if _, dup := seen[text]; dup {
			return
		}
		seen[text] = struct{}{}
		suggestions = append(suggestions, text)
	}

	for _, a := range articles {
		add(a.Title)
	}
	for _, tag := range tags {
		add(tag.Name)
	}
	for _, p := range projects {
		add(p.Title)
	}

	return suggestions, nil
}

// defaultPopularLimit is the popular-article count when none is requested
const defaultPopularLimit = 5

// Popular returns lightweight summaries of the most-viewed articles. The
// ordering comes entirely from the store's view counts; no scoring happens
// here.
func (s *SearchService) Popular(ctx context.Context, limit int) ([]domain.PopularSummary, error) {
	if limit <= 0 {
		limit = defaultPopularLimit
	}

	articles, err := s.store.PopularArticles(ctx, limit)
	if err != nil {
		return nil, &coreerrors.RecallError{Source: string(domain.ResultTypePost), Err: err}
	}

	summaries := make([]domain.PopularSummary, 0, len(articles))
	for _, a := range articles {
		summaries = append(summaries, domain.PopularSummary{
			ID:    a.ID,
			Title: a.Title,
			Slug:  a.Slug,
			URL:   "/blog/" + a.Slug,
			Views: a.Views,
		})
	}

	return summaries, nil
}

// searchCacheKey builds a deterministic cache key for the normalized query
func searchCacheKey(query domain.SearchQuery) string {
	types := make([]string, 0, len(query.Types))
	for _, t := range query.Types {
		types = append(types, string(t))
	}
	return fmt.Sprintf("search:q:%s:types=%s:limit=%d:threshold=%g",
		strings.ToLower(query.Text), strings.Join(types, ","), query.Limit, query.Threshold)
}

// cachedResults returns a cached response for the key, if caching is active
func (s *SearchService) cachedResults(ctx context.Context, key string) ([]domain.SearchResult, bool) {
	if s.deps.Cache == nil || !featureflags.IsEnabled(ctx, featureflags.SearchCache) {
		return nil, false
	}

	data, err := s.deps.Cache.Get(ctx, key)
	if err != nil || data == nil {
		return nil, false
	}

	var results []domain.SearchResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, false
	}
	return results, true
}

// cacheResults stores a response under the key, if caching is active
func (s *SearchService) cacheResults(ctx context.Context, key string, results []domain.SearchResult) {
	if s.deps.Cache == nil || !featureflags.IsEnabled(ctx, featureflags.SearchCache) {
		return
	}
	if len(results) == 0 {
		return
	}

	if data, err := json.Marshal(results); err == nil {
		_ = s.deps.Cache.Set(ctx, key, data, cacheTTL)
	}
}
