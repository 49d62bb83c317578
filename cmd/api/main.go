// ABOUTME: Main entry point for the Site Search API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sitesearch-api/api"
	"sitesearch-api/api/handlers"
	"sitesearch-api/core/interfaces"
	"sitesearch-api/core/search"
	"sitesearch-api/infrastructure/cache/memory"
	"sitesearch-api/infrastructure/cache/redis"
	stdlogger "sitesearch-api/infrastructure/logger/standard"
	"sitesearch-api/infrastructure/storage/sqlite"
	"sitesearch-api/pkg/config"
	"sitesearch-api/pkg/featureflags"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := stdlogger.NewStandardLogger()
	logger.Info("Starting Site Search API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"database":   cfg.Database.Path,
	})

	// Create content store
	store, err := sqlite.NewContentStore(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open content store: %v", err)
	}
	defer store.Close()

	// Create cache
	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache()
		} else {
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	default:
		cache = memory.NewMemoryCache()
		logger.Info("Using memory cache", nil)
	}

	// Create feature flag manager. Rate limiting defaults on; the env flag
	// acts as a kill switch.
	flags := featureflags.NewEnvManager("FEATURE_")
	if os.Getenv("FEATURE_RATE_LIMIT_ENABLED") == "" {
		flags.SetEnabled(featureflags.RateLimitEnabled, true)
	}

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:  cache,
		Logger: logger,
	}

	// Create services
	searchService := search.NewSearchService(deps, store)

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger:            logger,
		FeatureFlags:      flags,
		RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
		Burst:             cfg.RateLimit.Burst,
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	searchHandler := handlers.NewSearchHandler(searchService)
	searchHandler.RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
