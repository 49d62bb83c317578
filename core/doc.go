// Package core contains the business logic for the site search service.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (Article, Tag, Project, SearchResult)
// - search: Relevance scoring, ranking, suggestions, and popular content
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, storage, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "sitesearch-api/core/interfaces"
//	    "sitesearch-api/core/search"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:  myCache,  // implements interfaces.Cache
//	    Logger: myLogger, // implements interfaces.Logger
//	}
//
//	// Create service
//	searchService := search.NewSearchService(deps, store)
//
//	// Run a search
//	results, err := searchService.Search(ctx, domain.SearchQuery{Text: "docker"})
package core
