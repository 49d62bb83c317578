// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation and request/response validation

package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"sitesearch-api/api/middleware"
	"sitesearch-api/core/interfaces"
	"sitesearch-api/pkg/featureflags"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger            interfaces.Logger
	FeatureFlags      featureflags.Manager
	RequestsPerMinute int // sustained rate limit per client; 0 disables
	Burst             int // rate limit burst size per client
}

// NewAPI creates and configures a new Huma API instance
func NewAPI() (huma.API, chi.Router) {
	// Create Chi router
	router := chi.NewRouter()

	// Configure CORS
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"}, // Allow all origins in development
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	// Create Huma API configuration
	config := huma.DefaultConfig("Site Search API", "1.0.0")
	config.Info.Description = "Unified search API for posts, tags, and projects"

	// Create Huma API with Chi adapter
	api := humachi.New(router, config)

	// The OpenAPI spec is automatically available at /openapi.json
	// The Swagger UI is automatically available at /docs

	return api, router
}

// NewAPIWithMiddleware creates a new API with middleware configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	// Create Chi router
	router := chi.NewRouter()

	// Configure CORS (should be first middleware)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"}, // Allow all origins in development
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	// Apply middleware
	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.FeatureFlags != nil {
		router.Use(featureFlagMiddleware(cfg.FeatureFlags))
	}

	rateLimitEnabled := true
	if cfg.FeatureFlags != nil {
		rateLimitEnabled = cfg.FeatureFlags.IsEnabled(context.Background(), featureflags.RateLimitEnabled)
	}
	if rateLimitEnabled && cfg.RequestsPerMinute > 0 && cfg.Burst > 0 {
		limiter := middleware.NewRateLimiter(cfg.RequestsPerMinute, cfg.Burst)
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	// Create Huma API configuration
	config := huma.DefaultConfig("Site Search API", "1.0.0")
	config.Info.Description = "Unified search API for posts, tags, and projects"

	// Create Huma API with Chi adapter
	api := humachi.New(router, config)

	return api, router
}

// featureFlagMiddleware injects the flag manager into each request context
func featureFlagMiddleware(manager featureflags.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := featureflags.WithManager(r.Context(), manager)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
