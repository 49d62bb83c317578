// ABOUTME: SQLite-backed content store for articles, tags, and projects
// ABOUTME: Serves coarse substring recall queries; never ranks results

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"sitesearch-api/core/domain"
	timeutil "sitesearch-api/pkg/utils/time"
)

// Client implements the ContentStore interface using SQLite
type Client struct {
	db       *sql.DB
	filePath string
}

// NewContentStore creates a new SQLite content store client
func NewContentStore(filePath string) (*Client, error) {
	if filePath == "" {
		filePath = "content.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	client := &Client{
		db:       db,
		filePath: filePath,
	}

	if err := client.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return client, nil
}

// initSchema creates the content tables if they don't exist
func (c *Client) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS articles (
			id TEXT PRIMARY KEY,
			slug TEXT NOT NULL UNIQUE,
			title TEXT NOT NULL,
			excerpt TEXT NOT NULL DEFAULT '',
			author TEXT NOT NULL DEFAULT '',
			published_at TEXT NOT NULL DEFAULT '',
			reading_time INTEGER NOT NULL DEFAULT 0,
			views INTEGER NOT NULL DEFAULT 0
		);
		CREATE TABLE IF NOT EXISTS tags (
			slug TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT ''
		);
		CREATE TABLE IF NOT EXISTS article_tags (
			article_id TEXT NOT NULL REFERENCES articles(id),
			tag_slug TEXT NOT NULL REFERENCES tags(slug),
			PRIMARY KEY (article_id, tag_slug)
		);
		CREATE TABLE IF NOT EXISTS projects (
			slug TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT ''
		);
		CREATE TABLE IF NOT EXISTS project_tech (
			project_slug TEXT NOT NULL REFERENCES projects(slug),
			tech TEXT NOT NULL,
			PRIMARY KEY (project_slug, tech)
		);
		CREATE INDEX IF NOT EXISTS idx_articles_views ON articles(views);
	`

	_, err := c.db.Exec(query)
	return err
}

// escapeLike escapes LIKE wildcards so the filter matches literally
func escapeLike(filter string) string {
	filter = strings.ReplaceAll(filter, `\`, `\\`)
	filter = strings.ReplaceAll(filter, `%`, `\%`)
	filter = strings.ReplaceAll(filter, `_`, `\_`)
	return filter
}

// containsPattern builds the LIKE pattern for substring containment
func containsPattern(filter string) string {
	return "%" + escapeLike(filter) + "%"
}

// FindArticles returns articles whose title, excerpt, or tag names contain
// the filter text, up to limit rows in storage order
func (c *Client) FindArticles(ctx context.Context, filter string, limit int) ([]domain.Article, error) {
	if limit <= 0 {
		return nil, errors.New("limit must be positive")
	}

	pattern := containsPattern(filter)
	query := `
		SELECT a.id, a.slug, a.title, a.excerpt, a.author, a.published_at, a.reading_time, a.views
		FROM articles a
		WHERE a.title LIKE ? ESCAPE '\'
		   OR a.excerpt LIKE ? ESCAPE '\'
		   OR EXISTS (
			SELECT 1 FROM article_tags at
			JOIN tags t ON t.slug = at.tag_slug
			WHERE at.article_id = a.id AND t.name LIKE ? ESCAPE '\'
		   )
		ORDER BY a.published_at DESC
		LIMIT ?
	`

	rows, err := c.db.QueryContext(ctx, query, pattern, pattern, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	defer rows.Close()

	articles := make([]domain.Article, 0)
	for rows.Next() {
		var a domain.Article
		var publishedAt string
		if err := rows.Scan(&a.ID, &a.Slug, &a.Title, &a.Excerpt, &a.Author, &publishedAt, &a.ReadingTime, &a.Views); err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		a.PublishedAt = timeutil.ParseFlexibleTime(publishedAt)
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read articles: %w", err)
	}

	for i := range articles {
		tags, err := c.articleTagNames(ctx, articles[i].ID)
		if err != nil {
			return nil, err
		}
		articles[i].Tags = tags
	}

	return articles, nil
}

// articleTagNames loads the tag names attached to one article
func (c *Client) articleTagNames(ctx context.Context, articleID string) ([]string, error) {
	query := `
		SELECT t.name FROM tags t
		JOIN article_tags at ON at.tag_slug = t.slug
		WHERE at.article_id = ?
		ORDER BY t.name
	`

	rows, err := c.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query article tags: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan tag name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// FindTags returns tags whose name or description contains the filter text
func (c *Client) FindTags(ctx context.Context, filter string, limit int) ([]domain.Tag, error) {
	if limit <= 0 {
		return nil, errors.New("limit must be positive")
	}

	pattern := containsPattern(filter)
	query := `
		SELECT t.slug, t.name, t.description,
		       (SELECT COUNT(*) FROM article_tags at WHERE at.tag_slug = t.slug) AS post_count
		FROM tags t
		WHERE t.name LIKE ? ESCAPE '\'
		   OR t.description LIKE ? ESCAPE '\'
		ORDER BY t.name
		LIMIT ?
	`

	rows, err := c.db.QueryContext(ctx, query, pattern, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	defer rows.Close()

	tags := make([]domain.Tag, 0)
	for rows.Next() {
		var t domain.Tag
		if err := rows.Scan(&t.Slug, &t.Name, &t.Description, &t.PostCount); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

// FindProjects returns projects whose title, description, or tech entries
// contain the filter text
func (c *Client) FindProjects(ctx context.Context, filter string, limit int) ([]domain.Project, error) {
	if limit <= 0 {
		return nil, errors.New("limit must be positive")
	}

	pattern := containsPattern(filter)
	query := `
		SELECT p.slug, p.title, p.description
		FROM projects p
		WHERE p.title LIKE ? ESCAPE '\'
		   OR p.description LIKE ? ESCAPE '\'
		   OR EXISTS (
			SELECT 1 FROM project_tech pt
			WHERE pt.project_slug = p.slug AND pt.tech LIKE ? ESCAPE '\'
		   )
		ORDER BY p.title
		LIMIT ?
	`

	rows, err := c.db.QueryContext(ctx, query, pattern, pattern, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	projects := make([]domain.Project, 0)
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.Slug, &p.Title, &p.Description); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read projects: %w", err)
	}

	for i := range projects {
		tech, err := c.projectTech(ctx, projects[i].Slug)
		if err != nil {
			return nil, err
		}
		projects[i].TechStack = tech
	}

	return projects, nil
}

// projectTech loads the tech-stack entries attached to one project
func (c *Client) projectTech(ctx context.Context, slug string) ([]string, error) {
	query := `SELECT tech FROM project_tech WHERE project_slug = ? ORDER BY tech`

	rows, err := c.db.QueryContext(ctx, query, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to query project tech: %w", err)
	}
	defer rows.Close()

	var tech []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("failed to scan tech entry: %w", err)
		}
		tech = append(tech, t)
	}
	return tech, rows.Err()
}

// PopularArticles returns articles ordered by view count descending
func (c *Client) PopularArticles(ctx context.Context, limit int) ([]domain.Article, error) {
	if limit <= 0 {
		return nil, errors.New("limit must be positive")
	}

	query := `
		SELECT id, slug, title, excerpt, author, published_at, reading_time, views
		FROM articles
		ORDER BY views DESC
		LIMIT ?
	`

	rows, err := c.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query popular articles: %w", err)
	}
	defer rows.Close()

	articles := make([]domain.Article, 0)
	for rows.Next() {
		var a domain.Article
		var publishedAt string
		if err := rows.Scan(&a.ID, &a.Slug, &a.Title, &a.Excerpt, &a.Author, &publishedAt, &a.ReadingTime, &a.Views); err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		a.PublishedAt = timeutil.ParseFlexibleTime(publishedAt)
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// Close closes the underlying database connection
func (c *Client) Close() error {
	return c.db.Close()
}
