package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiter_AllowsWithinBurst(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled: true,
		EndpointConfigs: []EndpointConfig{
			{Path: "/api/v1/compare", Method: "POST", Limit: 10, Window: time.Hour, Burst: 2},
		},
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
	})
	defer limiter.Stop()

	allowed, info := limiter.Allow("1.2.3.4", "/api/v1/compare", "POST")
	assert.True(t, allowed)
	assert.Equal(t, 10, info.Limit)

	allowed, _ = limiter.Allow("1.2.3.4", "/api/v1/compare", "POST")
	assert.True(t, allowed)

	// Burst of 2 exhausted, refill is far too slow to matter here.
	allowed, info = limiter.Allow("1.2.3.4", "/api/v1/compare", "POST")
	assert.False(t, allowed)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_PerClientBuckets(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled: true,
		EndpointConfigs: []EndpointConfig{
			{Path: "/api/v1/compare", Method: "POST", Limit: 10, Window: time.Hour, Burst: 1},
		},
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
	})
	defer limiter.Stop()

	allowed, _ := limiter.Allow("1.2.3.4", "/api/v1/compare", "POST")
	require.True(t, allowed)
	allowed, _ = limiter.Allow("1.2.3.4", "/api/v1/compare", "POST")
	require.False(t, allowed)

	// A different client has its own bucket.
	allowed, _ = limiter.Allow("5.6.7.8", "/api/v1/compare", "POST")
	assert.True(t, allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for range 100 {
		allowed, _ := limiter.Allow("1.2.3.4", "/api/v1/compare", "POST")
		assert.True(t, allowed)
	}
}

func TestMatchEndpoint(t *testing.T) {
	configs := DefaultEndpointConfigs()

	match := MatchEndpoint("/api/v1/compare", "POST", configs)
	require.NotNil(t, match)
	assert.Equal(t, 10, match.Limit)

	// Health is always unlimited.
	match = MatchEndpoint("/health", "GET", configs)
	require.NotNil(t, match)
	assert.Equal(t, 0, match.Limit)

	// Unknown routes fall back to the caller's default.
	assert.Nil(t, MatchEndpoint("/api/v1/unknown", "GET", configs))
}

func TestMatchEndpoint_Prefix(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/api/v1/", Method: "POST", Limit: 5, Window: time.Minute},
	}

	match := MatchEndpoint("/api/v1/anything", "POST", configs)
	require.NotNil(t, match)
	assert.Equal(t, 5, match.Limit)

	assert.Nil(t, MatchEndpoint("/api/v1/anything", "GET", configs))
}
