package modules

import (
	"leaguestats/api/cache"
	matchservice "leaguestats/api/services/match"
	summaryservice "leaguestats/api/services/summary"
	timelineservice "leaguestats/api/services/timeline"
	"leaguestats/fetcher/data"
	matchfetcher "leaguestats/fetcher/data/match"
	"leaguestats/fetcher/requests"
	"leaguestats/pkg/config"
	"leaguestats/pkg/logger"
	"leaguestats/pkg/metrics"
	"leaguestats/pkg/redis"
)

type summaryServiceDependencies struct {
	config     *config.Config
	logger     *logger.NewLogger
	client     *requests.Client
	redis      *redis.RedisClient
	memCache   *cache.MemCache
	matchCache *cache.LRU[string, *matchfetcher.MatchData]
	metrics    metrics.Recorder
}

func initializeSummaryService(deps *summaryServiceDependencies) (*summaryservice.SummaryService, error) {
	fetcher := data.NewMainFetcher(deps.client)

	orchestrator := matchservice.NewOrchestrator(&matchservice.OrchestratorDeps{
		Fetcher: fetcher.Match,
		Cache:   deps.matchCache,
		Metrics: deps.metrics,
		Logger:  deps.logger,
	})

	lanePhase := timelineservice.NewLanePhaseService(&timelineservice.LanePhaseServiceDeps{
		Fetcher: fetcher.Match,
		Limit:   deps.config.Fetch.LanePhaseLimit,
		Logger:  deps.logger,
	})

	cacheDeps := &cache.SummaryCacheDeps{
		Memory:  deps.memCache,
		TTL:     deps.config.Fetch.SummaryCacheTTL,
		Metrics: deps.metrics,
		Logger:  deps.logger,
	}
	// A nil *RedisClient must not become a non nil interface.
	if deps.redis != nil {
		cacheDeps.Redis = deps.redis
	}

	summaryCache, err := cache.NewSummaryCache(cacheDeps)
	if err != nil {
		return nil, err
	}

	return summaryservice.NewSummaryService(&summaryservice.SummaryServiceDeps{
		Players:   fetcher.Player,
		Leagues:   fetcher.League,
		Lister:    fetcher.Match,
		Matches:   orchestrator,
		LanePhase: lanePhase,
		Cache:     summaryCache,
		Metrics:   deps.metrics,
		Logger:    deps.logger,
	}), nil
}
