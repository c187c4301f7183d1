package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// RiotConfiguration holds everything the upstream client needs.
type RiotConfiguration struct {
	ApiKey         string
	BaseURL        string // Host template, formatted with the routing value.
	RequestTimeout time.Duration
	MaxRetries     int
	RateLimits     string // Application windows, like "20:1s,100:2m".
}

// FetchConfiguration controls the match fetching and report building.
type FetchConfiguration struct {
	MatchCacheSize  int
	LanePhaseLimit  int
	SummaryCacheTTL time.Duration
	MemoryCacheMB   int // Size of the in memory summaries, without redis.
}

// RedisConfiguration struct.
type RedisConfiguration struct {
	Host     string
	Port     string
	Password string
}

// BucketConfiguration is the S3 compatible bucket used for the logs.
type BucketConfiguration struct {
	Region       string
	AccessKey    string
	AccessSecret string
	Endpoint     string
	LogBucket    string
}

// ServerConfiguration has the listening addresses.
type ServerConfiguration struct {
	HTTPAddr string
	GRPCAddr string
}

// LogConfiguration for the logger and the upload job.
type LogConfiguration struct {
	Level          string
	UploadInterval time.Duration
}

// Config is the full application configuration.
type Config struct {
	Riot   RiotConfiguration
	Fetch  FetchConfiguration
	Redis  RedisConfiguration
	Bucket BucketConfiguration
	Server ServerConfiguration
	Log    LogConfiguration
}

// Default values.
const (
	DefaultBaseURL         = "https://%s.api.riotgames.com"
	DefaultRateLimits      = "20:1s,100:2m"
	DefaultRequestTimeout  = 8000 * time.Millisecond
	DefaultMaxRetries      = 3
	DefaultMatchCacheSize  = 600
	DefaultLanePhaseLimit  = 5
	DefaultSummaryCacheTTL = 60 * time.Second
	DefaultMemoryCacheMB   = 64
	DefaultUploadInterval  = time.Hour
)

// Load the configuration from the environment.
// The .env file, if any, must be loaded before calling it.
func Load() (*Config, error) {
	cfg := &Config{
		Riot: RiotConfiguration{
			ApiKey:     os.Getenv("RIOT_API_KEY"),
			BaseURL:    getString("RIOT_BASE_URL_TEMPLATE", DefaultBaseURL),
			RateLimits: getString("RIOT_RATE_LIMITS", DefaultRateLimits),
		},
		Redis: RedisConfiguration{
			Host:     os.Getenv("REDIS_HOST"),
			Port:     getString("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		Bucket: BucketConfiguration{
			Region:       os.Getenv("BUCKET_REGION"),
			AccessKey:    os.Getenv("BUCKET_ACCESS_KEY"),
			AccessSecret: os.Getenv("BUCKET_ACCESS_SECRET"),
			Endpoint:     os.Getenv("BUCKET_ENDPOINT"),
			LogBucket:    os.Getenv("BUCKET_LOG_BUCKET"),
		},
		Server: ServerConfiguration{
			HTTPAddr: getString("HTTP_ADDR", ":8080"),
			GRPCAddr: getString("GRPC_ADDR", ":50051"),
		},
		Log: LogConfiguration{
			Level: getString("LOG_LEVEL", "info"),
		},
	}

	if cfg.Riot.ApiKey == "" {
		return nil, errors.New("missing RIOT_API_KEY")
	}

	timeoutMs, err := getInt("REQUEST_TIMEOUT_MS", int(DefaultRequestTimeout/time.Millisecond))
	if err != nil {
		return nil, err
	}
	cfg.Riot.RequestTimeout = time.Duration(timeoutMs) * time.Millisecond

	if cfg.Riot.MaxRetries, err = getInt("MAX_RETRIES", DefaultMaxRetries); err != nil {
		return nil, err
	}
	if cfg.Fetch.MatchCacheSize, err = getInt("MATCH_CACHE_SIZE", DefaultMatchCacheSize); err != nil {
		return nil, err
	}
	if cfg.Fetch.LanePhaseLimit, err = getInt("LANE_PHASE_LIMIT", DefaultLanePhaseLimit); err != nil {
		return nil, err
	}
	if cfg.Fetch.SummaryCacheTTL, err = getDuration("SUMMARY_CACHE_TTL", DefaultSummaryCacheTTL); err != nil {
		return nil, err
	}
	if cfg.Fetch.MemoryCacheMB, err = getInt("MEMORY_CACHE_MB", DefaultMemoryCacheMB); err != nil {
		return nil, err
	}
	if cfg.Log.UploadInterval, err = getDuration("LOG_UPLOAD_INTERVAL", DefaultUploadInterval); err != nil {
		return nil, err
	}

	if cfg.Fetch.MatchCacheSize <= 0 {
		return nil, fmt.Errorf("MATCH_CACHE_SIZE must be positive, got %d", cfg.Fetch.MatchCacheSize)
	}

	return cfg, nil
}

// RedisEnabled reports if a redis host was configured.
func (c *Config) RedisEnabled() bool {
	return c.Redis.Host != ""
}

// BucketEnabled reports if the log bucket was configured.
func (c *Config) BucketEnabled() bool {
	return c.Bucket.LogBucket != ""
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
