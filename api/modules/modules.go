package modules

import (
	"fmt"
	"net/http"

	"leaguestats/api/cache"
	grpcservice "leaguestats/api/grpc"
	"leaguestats/api/handlers"
	matchfetcher "leaguestats/fetcher/data/match"
	"leaguestats/fetcher/requests"
	"leaguestats/pkg/config"
	"leaguestats/pkg/logger"
	"leaguestats/pkg/metrics"
	"leaguestats/pkg/redis"
	"leaguestats/scheduler/jobs"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ModuleDependencies are the shared clients created on the startup.
type ModuleDependencies struct {
	Config   *config.Config
	Logger   *logger.NewLogger
	Redis    *redis.RedisClient // Nil keeps the summaries in memory.
	Registry *prometheus.Registry
}

// Module containing the necessary handlers.
type Module struct {
	Router         *gin.Engine
	SummaryHandler *handlers.SummaryHandler
	HealthHandler  *handlers.HealthHandler
	SummaryServer  grpcservice.SummaryServiceServer
	MetricsHandler http.Handler
	CacheStats     *jobs.CacheStats
}

// Create a new module with all the necessary handlers initialized.
func NewModule(deps *ModuleDependencies) (*Module, error) {
	registry := deps.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	recorder := metrics.NewPrometheus(registry)

	client, err := requests.NewClientFromConfig(deps.Config, deps.Logger, recorder)
	if err != nil {
		return nil, fmt.Errorf("couldn't start the Riot API client: %w", err)
	}

	matchCache := cache.NewLRU[string, *matchfetcher.MatchData](deps.Config.Fetch.MatchCacheSize)

	// Only used when redis is not configured.
	var memCache *cache.MemCache
	if deps.Redis == nil {
		memCache = cache.NewMemCache(deps.Config.Fetch.MemoryCacheMB * 1024 * 1024)
	}

	summaryService, err := initializeSummaryService(&summaryServiceDependencies{
		config:     deps.Config,
		logger:     deps.Logger,
		client:     client,
		redis:      deps.Redis,
		memCache:   memCache,
		matchCache: matchCache,
		metrics:    recorder,
	})
	if err != nil {
		return nil, fmt.Errorf("couldn't start the summary service: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	stats := &jobs.CacheStats{
		Matches:       matchCache,
		MatchCapacity: matchCache.Cap(),
		Backoff:       client.Backoff().Current,
	}
	if memCache != nil {
		stats.Summaries = memCache
	}

	summaryHandler := handlers.NewSummaryHandler(&handlers.SummaryHandlerDependencies{
		SummaryService: summaryService,
		Logger:         deps.Logger,
	})

	return &Module{
		Router:         router,
		SummaryHandler: summaryHandler,
		HealthHandler:  handlers.NewHealthHandler(),
		SummaryServer:  grpcservice.NewSummaryServer(summaryService, deps.Logger),
		MetricsHandler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}),
		CacheStats:     stats,
	}, nil
}
