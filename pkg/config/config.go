// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, database, cache, and rate limit settings

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Database contains content store configuration
	Database DatabaseConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// RateLimit contains rate limiting configuration
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string
}

// DatabaseConfig holds content store configuration
type DatabaseConfig struct {
	// Path is the SQLite database file path
	Path string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// RateLimitConfig holds per-client rate limiting configuration
type RateLimitConfig struct {
	// RequestsPerMinute is the sustained request rate allowed per client
	RequestsPerMinute int

	// Burst is the short-term burst size allowed per client
	Burst int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8000"),
		},
		Database: DatabaseConfig{
			Path: getEnvOrDefault("DATABASE_PATH", "content.db"),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: getEnvAsIntOrDefault("RATE_LIMIT_PER_MINUTE", 100),
			Burst:             getEnvAsIntOrDefault("RATE_LIMIT_BURST", 20),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Database.Path == "" {
		return errors.New("database path cannot be empty")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" {
		return errors.New("cache type must be 'redis' or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.RateLimit.RequestsPerMinute < 1 {
		return errors.New("rate limit requests per minute must be at least 1")
	}

	if c.RateLimit.Burst < 1 {
		return errors.New("rate limit burst must be at least 1")
	}

	return nil
}
