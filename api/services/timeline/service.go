package timelineservice

import (
	"context"

	"leaguestats/api/dto"
	matchfetcher "leaguestats/fetcher/data/match"
	"leaguestats/pkg/logger"
	"leaguestats/pkg/regions"

	"golang.org/x/sync/errgroup"
)

// Timelines fetched at the same time for a single report.
const DefaultTimelineConcurrency = 3

// TimelineGetter is the upstream call returning a match timeline.
type TimelineGetter interface {
	GetMatchTimeline(ctx context.Context, region regions.MainRegion, matchId string) (*matchfetcher.MatchTimeline, error)
}

// LanePhaseService attaches the lane phase to the newest history rows.
type LanePhaseService struct {
	fetcher     TimelineGetter
	limit       int
	concurrency int
	logger      *logger.NewLogger
}

// LanePhaseServiceDeps is the dependency list for the lane phase service.
type LanePhaseServiceDeps struct {
	Fetcher     TimelineGetter
	Limit       int // Rows with a lane phase, 0 disables it.
	Concurrency int
	Logger      *logger.NewLogger
}

// NewLanePhaseService creates the service.
func NewLanePhaseService(deps *LanePhaseServiceDeps) *LanePhaseService {
	s := &LanePhaseService{
		fetcher:     deps.Fetcher,
		limit:       deps.Limit,
		concurrency: deps.Concurrency,
		logger:      deps.Logger,
	}
	if s.concurrency <= 0 {
		s.concurrency = DefaultTimelineConcurrency
	}
	if s.logger == nil {
		s.logger = logger.Discard()
	}
	return s
}

// Attach fetches the timelines of the first rows and sets their lane phase.
// A failed timeline leaves the row lane phase as nil.
func (s *LanePhaseService) Attach(ctx context.Context, region regions.MainRegion, puuid string, rows []dto.HistoryRow) {
	count := min(s.limit, len(rows))
	if count <= 0 || s.fetcher == nil {
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i := range count {
		g.Go(func() error {
			timeline, err := s.fetcher.GetMatchTimeline(gctx, region, rows[i].Id)
			if err != nil {
				s.logger.Warnf("Couldn't fetch the timeline of %s: %v", rows[i].Id, err)
				return nil
			}
			lanePhase := ComputeLanePhase(timeline, puuid)
			rows[i].LanePhase = &lanePhase
			return nil
		})
	}

	// Workers never return errors.
	_ = g.Wait()
}
