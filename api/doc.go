// Package api provides the HTTP API layer for the site search service.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Key Features
//
// 1. Automatic OpenAPI Generation
//
// The API automatically generates OpenAPI 3.0 documentation:
// - JSON spec available at /openapi.json
// - Interactive Swagger UI at /docs
//
// 2. Request/Response Validation
//
// Huma provides automatic validation based on struct tags:
//
//	type SearchInput struct {
//	    Query string `query:"q" required:"true" maxLength:"100"`
//	    Limit int    `query:"limit,omitempty" minimum:"1" maximum:"100" default:"20"`
//	}
//
// 3. Middleware Support
//
// The API includes middleware for:
// - Request logging with unique request IDs
// - Per-client token bucket rate limiting
// - Feature flag injection into request contexts
// - CORS handling
//
// # Usage Example
//
//	// Create API with middleware
//	cfg := api.APIConfig{
//	    Logger:            logger,
//	    FeatureFlags:      flags,
//	    RequestsPerMinute: 100,
//	    Burst:             20,
//	}
//	humaAPI, router := api.NewAPIWithMiddleware(cfg)
//
//	// Register handlers
//	searchHandler := handlers.NewSearchHandler(searchService)
//	searchHandler.RegisterRoutes(humaAPI)
//
//	// Start server
//	http.ListenAndServe(":8080", router)
//
// # Error Handling
//
// The API uses a consistent error format based on RFC 7807:
//
//	{
//	    "status": 400,
//	    "title": "Bad Request",
//	    "detail": "query text exceeds the maximum length",
//	    "instance": "/search"
//	}
//
// Domain errors are automatically mapped to appropriate HTTP status codes.
package api
