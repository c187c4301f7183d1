package matchservice

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"leaguestats/api/cache"
	matchfetcher "leaguestats/fetcher/data/match"
	"leaguestats/fetcher/requests"
	"leaguestats/pkg/logger"
	"leaguestats/pkg/metrics"
	"leaguestats/pkg/regions"

	"golang.org/x/sync/singleflight"
)

// Deadline of a shared match request, whatever the callers do.
const DefaultFlightTimeout = 30 * time.Second

// MatchGetter is the upstream call returning a single match.
type MatchGetter interface {
	GetMatch(ctx context.Context, region regions.MainRegion, matchId string) (*matchfetcher.MatchData, error)
}

// Orchestrator fetches matches with a pool of workers over a shared cache.
// Concurrent misses of the same match are collapsed on a single request.
type Orchestrator struct {
	fetcher       MatchGetter
	cache         *cache.LRU[string, *matchfetcher.MatchData]
	group         singleflight.Group
	flightTimeout time.Duration
	metrics       metrics.Recorder
	logger        *logger.NewLogger
}

// OrchestratorDeps is the dependency list for the orchestrator.
type OrchestratorDeps struct {
	Fetcher       MatchGetter
	Cache         *cache.LRU[string, *matchfetcher.MatchData]
	FlightTimeout time.Duration // Zero uses DefaultFlightTimeout.
	Metrics       metrics.Recorder
	Logger        *logger.NewLogger
}

// NewOrchestrator creates a orchestrator, a nil cache uses a default sized one.
func NewOrchestrator(deps *OrchestratorDeps) *Orchestrator {
	o := &Orchestrator{
		fetcher:       deps.Fetcher,
		cache:         deps.Cache,
		flightTimeout: deps.FlightTimeout,
		metrics:       deps.Metrics,
		logger:        deps.Logger,
	}
	if o.flightTimeout <= 0 {
		o.flightTimeout = DefaultFlightTimeout
	}
	if o.cache == nil {
		o.cache = cache.NewLRU[string, *matchfetcher.MatchData](cache.DefaultLRUCapacity)
	}
	if o.metrics == nil {
		o.metrics = metrics.Noop{}
	}
	if o.logger == nil {
		o.logger = logger.Discard()
	}
	return o
}

// Cache used by the orchestrator.
func (o *Orchestrator) Cache() *cache.LRU[string, *matchfetcher.MatchData] {
	return o.cache
}

// BatchPolicy returns the concurrency and the request spacing for a batch size.
// Bigger batches use less workers and a wider spacing.
func BatchPolicy(n int) (int, time.Duration) {
	switch {
	case n <= 20:
		return 16, 0
	case n <= 50:
		return 10, 35 * time.Millisecond
	case n <= 120:
		return 8, 60 * time.Millisecond
	default:
		return 6, 60 * time.Millisecond
	}
}

// FetchMatches returns the matches of the ids, in the same order.
// Failed matches are logged and left out. Once ctx is done no new id is claimed.
func (o *Orchestrator) FetchMatches(ctx context.Context, region regions.MainRegion, ids []string, concurrency int, rate time.Duration) []*matchfetcher.MatchData {
	results := make([]*matchfetcher.MatchData, len(ids))
	workers := min(concurrency, len(ids))
	if workers <= 0 && len(ids) > 0 {
		workers = 1
	}

	// The throttle is owned by this call only.
	throttle := requests.NewThrottle(rate)

	var cursor atomic.Int64
	var wg sync.WaitGroup

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				if ctx.Err() != nil {
					return
				}

				idx := int(cursor.Add(1) - 1)
				if idx >= len(ids) {
					return
				}
				matchId := ids[idx]

				if match, found := o.cache.Get(matchId); found {
					o.metrics.IncCacheHits()
					results[idx] = match
					continue
				}
				o.metrics.IncCacheMisses()

				match, err := o.fetch(ctx, region, matchId, throttle)
				if err != nil {
					o.metrics.IncFetchFailures()
					o.logger.Warnf("Couldn't fetch match %s: %v", matchId, err)
					continue
				}
				results[idx] = match
			}
		}()
	}
	wg.Wait()

	matches := make([]*matchfetcher.MatchData, 0, len(ids))
	for _, match := range results {
		if match != nil {
			matches = append(matches, match)
		}
	}
	return matches
}

// fetch a single match, sharing the request with any concurrent miss of the same id.
// The shared request outlives the callers, each caller only stops waiting on its own ctx.
func (o *Orchestrator) fetch(ctx context.Context, region regions.MainRegion, matchId string, throttle *requests.Throttle) (*matchfetcher.MatchData, error) {
	// Spacing is per batch, even when joining a running flight.
	if err := throttle.Wait(ctx); err != nil {
		return nil, err
	}

	flight := o.group.DoChan(matchId, func() (any, error) {
		// Another flight may have finished while this one waited.
		if match, found := o.cache.Get(matchId); found {
			return match, nil
		}

		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), o.flightTimeout)
		defer cancel()

		match, err := o.fetcher.GetMatch(fetchCtx, region, matchId)
		if err != nil {
			return nil, err
		}
		o.cache.Set(matchId, match)
		return match, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result := <-flight:
		if result.Err != nil {
			return nil, result.Err
		}
		return result.Val.(*matchfetcher.MatchData), nil
	}
}
