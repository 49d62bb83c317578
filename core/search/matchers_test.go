package search

import (
	"context"
	"strings"
	"testing"
	"time"

	"sitesearch-api/core/domain"
	"sitesearch-api/core/interfaces"
)

func TestMatchArticles_WeightedFieldScores(t *testing.T) {
	store := &mockContentStore{
		findArticlesFunc: func(ctx context.Context, filter string, limit int) ([]domain.Article, error) {
			return []domain.Article{
				// Title misses entirely; excerpt contains the query
				{ID: "excerpt", Slug: "excerpt", Title: "Weekly roundup", Excerpt: "All about react this week"},
				// Title misses; a tag name equals the query
				{ID: "tag", Slug: "tag", Title: "Weekly digest", Tags: []string{"react"}},
			}, nil
		},
	}
	service := NewSearchService(interfaces.Dependencies{}, store)

	query := domain.SearchQuery{Text: "react"}
	query.ApplyDefaults()

	results, err := service.matchArticles(context.Background(), query)
	if err != nil {
		t.Fatalf("matchArticles returned error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("matchArticles returned %d results, want 2", len(results))
	}

	// excerpt: substring (0.6) weighted 0.7 -> 0.42
	if results[0].Score != articleExcerptWeight*substringMatchScore {
		t.Errorf("excerpt-matched score = %v, want %v", results[0].Score, articleExcerptWeight*substringMatchScore)
	}
	// tag: exact (1.0) weighted 0.5 -> 0.5
	if results[1].Score != articleTagWeight*exactMatchScore {
		t.Errorf("tag-matched score = %v, want %v", results[1].Score, articleTagWeight*exactMatchScore)
	}
}

func TestMatchArticles_StripsHTMLFromExcerpt(t *testing.T) {
	store := &mockContentStore{
		findArticlesFunc: func(ctx context.Context, filter string, limit int) ([]domain.Article, error) {
			return []domain.Article{
				{ID: "1", Slug: "post", Title: "react", Excerpt: "<p>Learn <em>react</em> fast</p>"},
			}, nil
		},
	}
	service := NewSearchService(interfaces.Dependencies{}, store)

	query := domain.SearchQuery{Text: "react"}
	query.ApplyDefaults()

	results, err := service.matchArticles(context.Background(), query)
	if err != nil {
		t.Fatalf("matchArticles returned error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("matchArticles returned %d results, want 1", len(results))
	}
	if strings.Contains(results[0].Description, "<p>") || strings.Contains(results[0].Description, "<em>") {
		t.Errorf("Description should have HTML stripped, got %q", results[0].Description)
	}
	if !strings.Contains(results[0].Highlight.Description, "<mark>react</mark>") {
		t.Errorf("Highlight should mark the match, got %q", results[0].Highlight.Description)
	}
}

func TestMatchArticles_MetadataAndURL(t *testing.T) {
	published := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	store := &mockContentStore{
		findArticlesFunc: func(ctx context.Context, filter string, limit int) ([]domain.Article, error) {
			return []domain.Article{
				{
					ID:          "42",
					Slug:        "react-guide",
					Title:       "react",
					Author:      "Ada",
					PublishedAt: published,
					ReadingTime: 240,
					Views:       1337,
					Tags:        []string{"react", "frontend"},
				},
			}, nil
		},
	}
	service := NewSearchService(interfaces.Dependencies{}, store)

	query := domain.SearchQuery{Text: "react"}
	query.ApplyDefaults()

	results, err := service.matchArticles(context.Background(), query)
	if err != nil {
		t.Fatalf("matchArticles returned error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("matchArticles returned %d results, want 1", len(results))
	}

	r := results[0]
	if r.ID != "42" {
		t.Errorf("Article ID = %v, want natural id 42", r.ID)
	}
	if r.URL != "/blog/react-guide" {
		t.Errorf("Article URL = %v, want /blog/react-guide", r.URL)
	}
	if r.Type != domain.ResultTypePost {
		t.Errorf("Article type = %v, want post", r.Type)
	}
	if r.Metadata["author"] != "Ada" {
		t.Errorf("author metadata = %v, want Ada", r.Metadata["author"])
	}
	if r.Metadata["views"] != 1337 {
		t.Errorf("views metadata = %v, want 1337", r.Metadata["views"])
	}
	if r.Metadata["publishedAt"] != published {
		t.Errorf("publishedAt metadata = %v, want %v", r.Metadata["publishedAt"], published)
	}
	if r.Metadata["readingTime"] != "4 minutes" {
		t.Errorf("readingTime metadata = %v, want '4 minutes'", r.Metadata["readingTime"])
	}
}

func TestMatchTags_PrefixedIDAndURL(t *testing.T) {
	store := &mockContentStore{
		findTagsFunc: func(ctx context.Context, filter string, limit int) ([]domain.Tag, error) {
			return []domain.Tag{
				{Slug: "react", Name: "react", Description: "UI library posts", PostCount: 12},
			}, nil
		},
	}
	service := NewSearchService(interfaces.Dependencies{}, store)

	query := domain.SearchQuery{Text: "react"}
	query.ApplyDefaults()

	results, err := service.matchTags(context.Background(), query)
	if err != nil {
		t.Fatalf("matchTags returned error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("matchTags returned %d results, want 1", len(results))
	}

	r := results[0]
	if r.ID != "tag:react" {
		t.Errorf("Tag ID = %v, want tag:react", r.ID)
	}
	if r.URL != "/blog/tag/react" {
		t.Errorf("Tag URL = %v, want /blog/tag/react", r.URL)
	}
	if r.Score != 1.0 {
		t.Errorf("Exact tag name score = %v, want 1.0", r.Score)
	}
	if r.Metadata["postCount"] != 12 {
		t.Errorf("postCount metadata = %v, want 12", r.Metadata["postCount"])
	}
}

func TestMatchTags_DescriptionWeight(t *testing.T) {
	store := &mockContentStore{
		findTagsFunc: func(ctx context.Context, filter string, limit int) ([]domain.Tag, error) {
			return []domain.Tag{
				{Slug: "frontend", Name: "frontend", Description: "react and friends"},
			}, nil
		},
	}
	service := NewSearchService(interfaces.Dependencies{}, store)

	query := domain.SearchQuery{Text: "react"}
	query.ApplyDefaults()

	results, err := service.matchTags(context.Background(), query)
	if err != nil {
		t.Fatalf("matchTags returned error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("matchTags returned %d results, want 1", len(results))
	}

	// Description prefix match (0.8) weighted 0.7 -> 0.56
	want := tagDescriptionWeight * prefixMatchScore
	if results[0].Score != want {
		t.Errorf("Tag description score = %v, want %v", results[0].Score, want)
	}
}

func TestMatchProjects_TechStackMatch(t *testing.T) {
	store := &mockContentStore{
		findProjectsFunc: func(ctx context.Context, filter string, limit int) ([]domain.Project, error) {
			return []domain.Project{
				{Slug: "dashboard", Title: "Analytics Dashboard", Description: "Charts and widgets", TechStack: []string{"react", "d3"}},
			}, nil
		},
	}
	service := NewSearchService(interfaces.Dependencies{}, store)

	query := domain.SearchQuery{Text: "react"}
	query.ApplyDefaults()

	results, err := service.matchProjects(context.Background(), query)
	if err != nil {
		t.Fatalf("matchProjects returned error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("matchProjects returned %d results, want 1", len(results))
	}

	r := results[0]
	if r.ID != "project:dashboard" {
		t.Errorf("Project ID = %v, want project:dashboard", r.ID)
	}
	if r.URL != "/projects/dashboard" {
		t.Errorf("Project URL = %v, want /projects/dashboard", r.URL)
	}
	// Tech exact match (1.0) weighted 0.5 -> 0.5
	if r.Score != projectTechWeight*exactMatchScore {
		t.Errorf("Project tech score = %v, want %v", r.Score, projectTechWeight*exactMatchScore)
	}

	stack, ok := r.Metadata["techStack"].([]string)
	if !ok || len(stack) != 2 {
		t.Errorf("techStack metadata = %v, want the project's stack", r.Metadata["techStack"])
	}
}

func TestMatchProjects_BelowThresholdFiltered(t *testing.T) {
	store := &mockContentStore{
		findProjectsFunc: func(ctx context.Context, filter string, limit int) ([]domain.Project, error) {
			return []domain.Project{
				// Tech fuzzy-at-best: "rct" is a subsequence of "react",
				// 0.4 weighted by 0.5 -> 0.2, below the default threshold
				{Slug: "app", Title: "Some App", Description: "utilities", TechStack: []string{"react"}},
			}, nil
		},
	}
	service := NewSearchService(interfaces.Dependencies{}, store)

	query := domain.SearchQuery{Text: "rct"}
	query.ApplyDefaults()

	results, err := service.matchProjects(context.Background(), query)
	if err != nil {
		t.Fatalf("matchProjects returned error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("matchProjects should filter sub-threshold candidates, got %v", results)
	}
}

func TestRecallLimit(t *testing.T) {
	if got := recallLimit(10); got != recallFloor {
		t.Errorf("recallLimit(10) = %d, want floor %d", got, recallFloor)
	}
	if got := recallLimit(20); got != 60 {
		t.Errorf("recallLimit(20) = %d, want 60", got)
	}
}
