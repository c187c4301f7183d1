package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("RIOT_API_KEY", "RGAPI-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "RGAPI-test", cfg.Riot.ApiKey)
	assert.Equal(t, DefaultBaseURL, cfg.Riot.BaseURL)
	assert.Equal(t, 8*time.Second, cfg.Riot.RequestTimeout)
	assert.Equal(t, 3, cfg.Riot.MaxRetries)
	assert.Equal(t, 600, cfg.Fetch.MatchCacheSize)
	assert.Equal(t, 5, cfg.Fetch.LanePhaseLimit)
	assert.Equal(t, time.Minute, cfg.Fetch.SummaryCacheTTL)
	assert.Equal(t, 64, cfg.Fetch.MemoryCacheMB)
	assert.Equal(t, DefaultRateLimits, cfg.Riot.RateLimits)
	assert.False(t, cfg.RedisEnabled())
	assert.False(t, cfg.BucketEnabled())
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "missing api key",
			env:  map[string]string{"RIOT_API_KEY": ""},
		},
		{
			name: "invalid timeout",
			env:  map[string]string{"RIOT_API_KEY": "key", "REQUEST_TIMEOUT_MS": "soon"},
		},
		{
			name: "invalid ttl",
			env:  map[string]string{"RIOT_API_KEY": "key", "SUMMARY_CACHE_TTL": "60"},
		},
		{
			name: "zero cache size",
			env:  map[string]string{"RIOT_API_KEY": "key", "MATCH_CACHE_SIZE": "0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("RIOT_API_KEY", "key")
	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("BUCKET_LOG_BUCKET", "logs")
	t.Setenv("LANE_PHASE_LIMIT", "0")
	t.Setenv("SUMMARY_CACHE_TTL", "2m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.RedisEnabled())
	assert.True(t, cfg.BucketEnabled())
	assert.Equal(t, 0, cfg.Fetch.LanePhaseLimit)
	assert.Equal(t, 2*time.Minute, cfg.Fetch.SummaryCacheTTL)
}
