package search

import (
	"context"
	"sync"
	"time"

	"sitesearch-api/core/domain"
)

// mockContentStore is a mock implementation of the ContentStore interface.
// Matchers run concurrently, so call counters are guarded.
type mockContentStore struct {
	findArticlesFunc    func(ctx context.Context, filter string, limit int) ([]domain.Article, error)
	findTagsFunc        func(ctx context.Context, filter string, limit int) ([]domain.Tag, error)
	findProjectsFunc    func(ctx context.Context, filter string, limit int) ([]domain.Project, error)
	popularArticlesFunc func(ctx context.Context, limit int) ([]domain.Article, error)

	mu           sync.Mutex
	articleCalls int
	tagCalls     int
	projectCalls int
}

func (m *mockContentStore) FindArticles(ctx context.Context, filter string, limit int) ([]domain.Article, error) {
	m.mu.Lock()
	m.articleCalls++
	m.mu.Unlock()
	if m.findArticlesFunc != nil {
		return m.findArticlesFunc(ctx, filter, limit)
	}
	return nil, nil
}

func (m *mockContentStore) FindTags(ctx context.Context, filter string, limit int) ([]domain.Tag, error) {
	m.mu.Lock()
	m.tagCalls++
	m.mu.Unlock()
	if m.findTagsFunc != nil {
		return m.findTagsFunc(ctx, filter, limit)
	}
	return nil, nil
}

func (m *mockContentStore) FindProjects(ctx context.Context, filter string, limit int) ([]domain.Project, error) {
	m.mu.Lock()
	m.projectCalls++
	m.mu.Unlock()
	if m.findProjectsFunc != nil {
		return m.findProjectsFunc(ctx, filter, limit)
	}
	return nil, nil
}

func (m *mockContentStore) PopularArticles(ctx context.Context, limit int) ([]domain.Article, error) {
	if m.popularArticlesFunc != nil {
		return m.popularArticlesFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockContentStore) calls() (articles, tags, projects int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.articleCalls, m.tagCalls, m.projectCalls
}

// mockCache is a mock implementation of the Cache interface
type mockCache struct {
	getFunc    func(ctx context.Context, key string) ([]byte, error)
	setFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	deleteFunc func(ctx context.Context, key string) error
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, key)
	}
	return nil, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFunc != nil {
		return m.setFunc(ctx, key, value, ttl)
	}
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, key)
	}
	return nil
}

// mockLogger is a no-op logger that records warning messages
type mockLogger struct {
	mu       sync.Mutex
	warnings []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warnings = append(m.warnings, msg)
}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

func (m *mockLogger) warnCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.warnings)
}
