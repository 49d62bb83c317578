package featureflags

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartialResults_DisabledByDefault(t *testing.T) {
	manager := NewEnvManager("TEST_FEATURE_")
	ctx := context.Background()

	// Should be disabled when env var not set
	assert.False(t, manager.IsEnabled(ctx, PartialResults))
}

func TestPartialResults_EnabledWhenFlagSet(t *testing.T) {
	// Set environment variable
	os.Setenv("TEST_FEATURE_PARTIAL_RESULTS", "true")
	defer os.Unsetenv("TEST_FEATURE_PARTIAL_RESULTS")

	manager := NewEnvManager("TEST_FEATURE_")
	ctx := context.Background()

	assert.True(t, manager.IsEnabled(ctx, PartialResults))
}

func TestEnvManager_MultipleValues(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"true lowercase", "true", true},
		{"TRUE uppercase", "TRUE", true},
		{"1 numeric", "1", true},
		{"enabled", "enabled", true},
		{"ENABLED", "ENABLED", true},
		{"false", "false", false},
		{"0", "0", false},
		{"empty", "", false},
		{"other", "yes", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Setenv("TEST_FLAG", tt.value)
			defer os.Unsetenv("TEST_FLAG")

			manager := NewEnvManager("TEST_")
			ctx := context.Background()

			assert.Equal(t, tt.expected, manager.IsEnabled(ctx, "FLAG"))
		})
	}
}

func TestEnvManager_SetEnabled(t *testing.T) {
	manager := NewEnvManager("TEST_")
	ctx := context.Background()

	// Initially disabled
	assert.False(t, manager.IsEnabled(ctx, SearchCache))

	// Enable via SetEnabled
	manager.SetEnabled(SearchCache, true)
	assert.True(t, manager.IsEnabled(ctx, SearchCache))

	// Disable via SetEnabled
	manager.SetEnabled(SearchCache, false)
	assert.False(t, manager.IsEnabled(ctx, SearchCache))
}

func TestEnvManager_OverrideTakesPrecedence(t *testing.T) {
	// Set env var to true
	os.Setenv("TEST_FEATURE_SEARCH_CACHE", "true")
	defer os.Unsetenv("TEST_FEATURE_SEARCH_CACHE")

	manager := NewEnvManager("TEST_FEATURE_")
	ctx := context.Background()

	// Should be true from env
	assert.True(t, manager.IsEnabled(ctx, SearchCache))

	// Override to false
	manager.SetEnabled(SearchCache, false)

	// Override should take precedence
	assert.False(t, manager.IsEnabled(ctx, SearchCache))
}

func TestStaticManager(t *testing.T) {
	flags := map[FeatureFlag]bool{
		PartialResults: true,
		SearchCache:    false,
	}

	manager := NewStaticManager(flags)
	ctx := context.Background()

	assert.True(t, manager.IsEnabled(ctx, PartialResults))
	assert.False(t, manager.IsEnabled(ctx, SearchCache))
	assert.False(t, manager.IsEnabled(ctx, RateLimitEnabled)) // Not in initial map
}

func TestStaticManager_SetEnabled(t *testing.T) {
	manager := NewStaticManager(nil)
	ctx := context.Background()

	// All disabled by default
	assert.False(t, manager.IsEnabled(ctx, RateLimitEnabled))

	// Enable flag
	manager.SetEnabled(RateLimitEnabled, true)
	assert.True(t, manager.IsEnabled(ctx, RateLimitEnabled))
}

func TestGetAllFlags(t *testing.T) {
	flags := map[FeatureFlag]bool{
		PartialResults:   true,
		SearchCache:      true,
		RateLimitEnabled: false,
	}

	manager := NewStaticManager(flags)
	allFlags := manager.GetAllFlags()

	assert.Equal(t, flags, allFlags)
}

func TestContextIntegration(t *testing.T) {
	manager := NewStaticManager(map[FeatureFlag]bool{
		PartialResults: true,
	})

	ctx := context.Background()
	ctx = WithManager(ctx, manager)

	// Using convenience functions
	assert.True(t, IsEnabled(ctx, PartialResults))
	assert.False(t, IsEnabled(ctx, SearchCache))
}

func TestFromContext_DefaultManager(t *testing.T) {
	ctx := context.Background()

	// Without manager in context, should return default (all disabled)
	assert.False(t, IsEnabled(ctx, PartialResults))
	assert.False(t, IsEnabled(ctx, SearchCache))
}

func TestIsEnabledForUser(t *testing.T) {
	manager := NewStaticManager(map[FeatureFlag]bool{
		SearchCache: true,
	})

	ctx := context.Background()

	// For both EnvManager and StaticManager, user-specific is same as global
	assert.True(t, manager.IsEnabledForUser(ctx, SearchCache, "user123"))
	assert.False(t, manager.IsEnabledForUser(ctx, PartialResults, "user123"))
}

func TestConcurrentAccess(t *testing.T) {
	manager := NewStaticManager(nil)
	ctx := context.Background()

	// Run concurrent reads and writes
	done := make(chan bool)

	// Writers
	for i := 0; i < 5; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				manager.SetEnabled(PartialResults, j%2 == 0)
			}
			done <- true
		}()
	}

	// Readers
	for i := 0; i < 5; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				_ = manager.IsEnabled(ctx, PartialResults)
			}
			done <- true
		}()
	}

	// Wait for all goroutines
	for i := 0; i < 10; i++ {
		<-done
	}
}

func TestFeatureFlagNames(t *testing.T) {
	// Ensure flag names are what we expect
	assert.Equal(t, FeatureFlag("partial_results"), PartialResults)
	assert.Equal(t, FeatureFlag("search_cache"), SearchCache)
	assert.Equal(t, FeatureFlag("rate_limit_enabled"), RateLimitEnabled)
}
