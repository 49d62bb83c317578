// ABOUTME: Per-source matchers that score recall candidates into search results
// ABOUTME: Applies type-specific field weights combined by max, never sum

package search

import (
	"context"

	"sitesearch-api/core/domain"
	"sitesearch-api/pkg/utils/duration"
	"sitesearch-api/pkg/utils/html"
)

// Field weights per entity type. A candidate's score is the maximum of its
// weighted field scores; weights are tunable without touching the matching
// logic.
const (
	articleTitleWeight   = 1.0
	articleExcerptWeight = 0.7
	articleTagWeight     = 0.5

	tagNameWeight        = 1.0
	tagDescriptionWeight = 0.7

	projectTitleWeight       = 1.0
	projectDescriptionWeight = 0.7
	projectTechWeight        = 0.5
)

// Coarse recall bounds. The recall cap is raised well above the final result
// limit so that database-order truncation rarely drops relevant candidates.
const (
	recallMultiplier = 3
	recallFloor      = 50
)

// recallLimit returns the row cap for the coarse recall query
func recallLimit(limit int) int {
	if n := recallMultiplier * limit; n > recallFloor {
		return n
	}
	return recallFloor
}

// matchSource runs the matcher for a single entity type
func (s *SearchService) matchSource(ctx context.Context, t domain.ResultType, query domain.SearchQuery) ([]domain.SearchResult, error) {
	switch t {
	case domain.ResultTypePost:
		return s.matchArticles(ctx, query)
	case domain.ResultTypeTag:
		return s.matchTags(ctx, query)
	case domain.ResultTypeProject:
		return s.matchProjects(ctx, query)
	}
	return nil, nil
}

// matchArticles scores article candidates by title, excerpt, and tag names
func (s *SearchService) matchArticles(ctx context.Context, query domain.SearchQuery) ([]domain.SearchResult, error) {
	candidates, err := s.store.FindArticles(ctx, query.Text, recallLimit(query.Limit))
	if err != nil {
		return nil, err
	}

	results := make([]domain.SearchResult, 0, len(candidates))
	for _, a := range candidates {
		excerpt := html.StripHTML(a.Excerpt)

		score := articleTitleWeight * scoreField(query.Text, a.Title)
		if es := articleExcerptWeight * scoreField(query.Text, excerpt); es > score {
			score = es
		}
		for _, tag := range a.Tags {
			if ts := articleTagWeight * scoreField(query.Text, tag); ts > score {
				score = ts
			}
		}

		if score <= query.Threshold {
			continue
		}

		results = append(results, domain.SearchResult{
			ID:          a.ID,
			Title:       a.Title,
			Description: excerpt,
			Type:        domain.ResultTypePost,
			Slug:        a.Slug,
			URL:         "/blog/" + a.Slug,
			Highlight: domain.Highlight{
				Title:       HighlightMatches(a.Title, query.Text),
				Description: HighlightMatches(excerpt, query.Text),
			},
			Metadata: articleMetadata(a),
			Score:    score,
		})
	}

	return results, nil
}

// matchTags scores tag candidates by name and description
func (s *SearchService) matchTags(ctx context.Context, query domain.SearchQuery) ([]domain.SearchResult, error) {
	candidates, err := s.store.FindTags(ctx, query.Text, recallLimit(query.Limit))
	if err != nil {
		return nil, err
	}

	results := make([]domain.SearchResult, 0, len(candidates))
	for _, tag := range candidates {
		score := tagNameWeight * scoreField(query.Text, tag.Name)
		if ds := tagDescriptionWeight * scoreField(query.Text, tag.Description); ds > score {
			score = ds
		}

		if score <= query.Threshold {
			continue
		}

		results = append(results, domain.SearchResult{
			ID:          "tag:" + tag.Slug,
			Title:       tag.Name,
			Description: tag.Description,
			Type:        domain.ResultTypeTag,
			Slug:        tag.Slug,
			URL:         "/blog/tag/" + tag.Slug,
			Highlight: domain.Highlight{
				Title:       HighlightMatches(tag.Name, query.Text),
				Description: HighlightMatches(tag.Description, query.Text),
			},
			Metadata: tagMetadata(tag),
			Score:    score,
		})
	}

	return results, nil
}

// matchProjects scores project candidates by title, description, and tech stack
func (s *SearchService) matchProjects(ctx context.Context, query domain.SearchQuery) ([]domain.SearchResult, error) {
	candidates, err := s.store.FindProjects(ctx, query.Text, recallLimit(query.Limit))
	if err != nil {
		return nil, err
	}

	results := make([]domain.SearchResult, 0, len(candidates))
	for _, p := range candidates {
		score := projectTitleWeight * scoreField(query.Text, p.Title)
		if ds := projectDescriptionWeight * scoreField(query.Text, p.Description); ds > score {
			score = ds
		}
		for _, tech := range p.TechStack {
			if ts := projectTechWeight * scoreField(query.Text, tech); ts > score {
				score = ts
			}
		}

		if score <= query.Threshold {
			continue
		}

		results = append(results, domain.SearchResult{
			ID:          "project:" + p.Slug,
			Title:       p.Title,
			Description: p.Description,
			Type:        domain.ResultTypeProject,
			Slug:        p.Slug,
			URL:         "/projects/" + p.Slug,
			Highlight: domain.Highlight{
				Title:       HighlightMatches(p.Title, query.Text),
				Description: HighlightMatches(p.Description, query.Text),
			},
			Metadata: map[string]interface{}{
				"techStack": p.TechStack,
			},
			Score: score,
		})
	}

	return results, nil
}

// articleMetadata shapes the type-specific metadata bag for an article result
func articleMetadata(a domain.Article) map[string]interface{} {
	meta := map[string]interface{}{
		"author": a.Author,
		"tags":   a.Tags,
		"views":  a.Views,
	}
	if !a.PublishedAt.IsZero() {
		meta["publishedAt"] = a.PublishedAt
	}
	if a.ReadingTime > 0 {
		meta["readingTime"] = duration.SecondsToHumanReadable(a.ReadingTime)
	}
	return meta
}

// tagMetadata shapes the metadata bag for a tag result
func tagMetadata(tag domain.Tag) map[string]interface{} {
	if tag.PostCount <= 0 {
		return nil
	}
	return map[string]interface{}{
		"postCount": tag.PostCount,
	}
}
