package cache

import (
	"context"
	"fmt"
	"time"

	"leaguestats/api/dto"
	"leaguestats/pkg/logger"
	"leaguestats/pkg/metrics"
	"leaguestats/pkg/redis"

	"github.com/goccy/go-json"
)

// Key of a cached summary, built from the normalized request.
const summaryKey = "summary:%s"

// RedisStore is the part of the redis client used by the summary cache.
type RedisStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// SummaryCache is the public interface for the cached summaries.
type SummaryCache interface {
	GetSummary(ctx context.Context, key string) (*dto.PlayerSummary, bool)
	SetSummary(ctx context.Context, key string, summary *dto.PlayerSummary) error
}

// Summaries are kept on redis when available, in memory otherwise.
type summaryCache struct {
	redis      RedisStore
	memory     *MemCache
	compressor *zstdCompressor
	ttl        time.Duration
	metrics    metrics.Recorder
	logger     *logger.NewLogger
}

// SummaryCacheDeps for the summary cache.
type SummaryCacheDeps struct {
	Redis   RedisStore
	Memory  *MemCache
	TTL     time.Duration
	Metrics metrics.Recorder
	Logger  *logger.NewLogger
}

// NewSummaryCache creates the cache, a ttl <= 0 disables it.
func NewSummaryCache(deps *SummaryCacheDeps) (SummaryCache, error) {
	compressor, err := newZstdCompressor()
	if err != nil {
		return nil, err
	}

	sc := &summaryCache{
		redis:      deps.Redis,
		memory:     deps.Memory,
		compressor: compressor,
		ttl:        deps.TTL,
		metrics:    deps.Metrics,
		logger:     deps.Logger,
	}
	if sc.metrics == nil {
		sc.metrics = metrics.Noop{}
	}
	if sc.logger == nil {
		sc.logger = logger.Discard()
	}
	return sc, nil
}

// GetSummary returns a cached summary, any failure is a miss.
func (sc *summaryCache) GetSummary(ctx context.Context, key string) (*dto.PlayerSummary, bool) {
	if sc.ttl <= 0 {
		return nil, false
	}

	raw, err := sc.load(ctx, fmt.Sprintf(summaryKey, key))
	if err != nil || raw == nil {
		if err != nil && !redis.IsNil(err) {
			sc.logger.Warnf("Couldn't read the cached summary %s: %v", key, err)
		}
		sc.metrics.IncCacheMisses()
		return nil, false
	}

	var summary dto.PlayerSummary
	if err := sc.decode(raw, &summary); err != nil {
		sc.logger.Warnf("Discarding invalid cached summary %s: %v", key, err)
		sc.metrics.IncCacheMisses()
		return nil, false
	}

	sc.metrics.IncCacheHits()
	return &summary, true
}

// SetSummary saves a summary for the configured ttl.
func (sc *summaryCache) SetSummary(ctx context.Context, key string, summary *dto.PlayerSummary) error {
	if sc.ttl <= 0 {
		return nil
	}

	j, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	value := sc.compressor.Compress(j)

	key = fmt.Sprintf(summaryKey, key)
	if sc.redis != nil {
		return sc.redis.Set(ctx, key, string(value), sc.ttl)
	}
	if sc.memory != nil {
		return sc.memory.Set(key, value, sc.ttl)
	}
	return nil
}

func (sc *summaryCache) decode(raw []byte, summary *dto.PlayerSummary) error {
	j, err := sc.compressor.Decompress(raw)
	if err != nil {
		return err
	}
	return json.Unmarshal(j, summary)
}

func (sc *summaryCache) load(ctx context.Context, key string) ([]byte, error) {
	if sc.redis != nil {
		value, err := sc.redis.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		return []byte(value), nil
	}
	if sc.memory != nil {
		return sc.memory.Get(key), nil
	}
	return nil, nil
}
