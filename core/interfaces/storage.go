// ABOUTME: Storage interfaces for querying content entities
// ABOUTME: Defines the coarse-recall contract the search engine depends on

package interfaces

import (
	"context"

	"sitesearch-api/core/domain"
)

// ContentStore defines the interface for candidate retrieval from the
// content store. All Find methods perform case-insensitive substring
// containment over the type's searchable text fields; they are a recall
// mechanism only and must not rank results.
type ContentStore interface {
	// FindArticles returns up to limit articles whose title, excerpt, or
	// attached tag names contain the filter text. Tags are loaded with
	// each article.
	FindArticles(ctx context.Context, filter string, limit int) ([]domain.Article, error)

	// FindTags returns up to limit tags whose name or description
	// contains the filter text.
	FindTags(ctx context.Context, filter string, limit int) ([]domain.Tag, error)

	// FindProjects returns up to limit projects whose title, description,
	// or tech-stack entries contain the filter text.
	FindProjects(ctx context.Context, filter string, limit int) ([]domain.Project, error)

	// PopularArticles returns up to limit articles ordered by view count
	// descending.
	PopularArticles(ctx context.Context, limit int) ([]domain.Article, error)
}
