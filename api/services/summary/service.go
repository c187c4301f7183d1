package summaryservice

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"leaguestats/api/cache"
	"leaguestats/api/dto"
	"leaguestats/api/filters"
	matchservice "leaguestats/api/services/match"
	leaguefetcher "leaguestats/fetcher/data/league"
	matchfetcher "leaguestats/fetcher/data/match"
	playerfetcher "leaguestats/fetcher/data/player"
	"leaguestats/pkg/logger"
	"leaguestats/pkg/metrics"
	"leaguestats/pkg/regions"
	tiervalues "leaguestats/pkg/riotvalues/tier"
)

// Champions listed on the mastery.
const masteryLimit = 3

// PlayerGetter has the account and profile calls.
type PlayerGetter interface {
	GetAccountByRiotId(ctx context.Context, region regions.MainRegion, gameName string, tagLine string) (*playerfetcher.Account, error)
	GetSummonerByPuuid(ctx context.Context, region regions.SubRegion, puuid string) (*playerfetcher.Summoner, error)
	GetMasteryByPuuid(ctx context.Context, region regions.SubRegion, puuid string) ([]playerfetcher.Mastery, error)
}

// LeagueGetter returns the ranked entries of a summoner.
type LeagueGetter interface {
	GetEntriesBySummoner(ctx context.Context, region regions.SubRegion, summonerId string) ([]leaguefetcher.LeagueEntry, error)
}

// MatchBatchFetcher fetches a batch of matches, dropping the failed ones.
type MatchBatchFetcher interface {
	FetchMatches(ctx context.Context, region regions.MainRegion, ids []string, concurrency int, rate time.Duration) []*matchfetcher.MatchData
}

// LanePhaseAttacher sets the lane phase of the newest rows.
type LanePhaseAttacher interface {
	Attach(ctx context.Context, region regions.MainRegion, puuid string, rows []dto.HistoryRow)
}

// SummaryService builds the player summaries.
type SummaryService struct {
	players   PlayerGetter
	leagues   LeagueGetter
	lister    matchservice.MatchIdLister
	matches   MatchBatchFetcher
	lanePhase LanePhaseAttacher
	cache     cache.SummaryCache
	metrics   metrics.Recorder
	logger    *logger.NewLogger
	now       func() time.Time
}

// SummaryServiceDeps is the dependency list of the summary service.
// Leagues, LanePhase and Cache are optional.
type SummaryServiceDeps struct {
	Players   PlayerGetter
	Leagues   LeagueGetter
	Lister    matchservice.MatchIdLister
	Matches   MatchBatchFetcher
	LanePhase LanePhaseAttacher
	Cache     cache.SummaryCache
	Metrics   metrics.Recorder
	Logger    *logger.NewLogger
}

// NewSummaryService creates the service.
func NewSummaryService(deps *SummaryServiceDeps) *SummaryService {
	s := &SummaryService{
		players:   deps.Players,
		leagues:   deps.Leagues,
		lister:    deps.Lister,
		matches:   deps.Matches,
		lanePhase: deps.LanePhase,
		cache:     deps.Cache,
		metrics:   deps.Metrics,
		logger:    deps.Logger,
		now:       time.Now,
	}
	if s.metrics == nil {
		s.metrics = metrics.Noop{}
	}
	if s.logger == nil {
		s.logger = logger.Discard()
	}
	return s
}

// GetPlayerSummary resolves the player and builds the summary of the recent matches.
// Account and match id errors are returned, the profile context is best effort.
func (s *SummaryService) GetPlayerSummary(ctx context.Context, filter *filters.PlayerSummaryFilter) (*dto.PlayerSummary, error) {
	start := s.now()
	key := filter.CacheKey()

	if s.cache != nil {
		if cached, found := s.cache.GetSummary(ctx, key); found {
			return cached, nil
		}
	}

	account, err := s.players.GetAccountByRiotId(ctx, filter.Region, filter.GameName, filter.TagLine)
	if err != nil {
		return nil, fmt.Errorf("couldn't resolve %s#%s: %w", filter.GameName, filter.TagLine, err)
	}

	ids, err := matchservice.LoadMatchIds(ctx, s.lister, filter.Region, account.Puuid, filter.LoadOptions())
	if err != nil {
		return nil, fmt.Errorf("couldn't load the match ids: %w", err)
	}

	summary := &dto.PlayerSummary{
		Account: dto.AccountInfo{
			GameName: account.GameName,
			TagLine:  account.TagLine,
			Puuid:    account.Puuid,
		},
		Summary: dto.EmptySummary(),
		History: []dto.HistoryRow{},
		Mastery: []dto.MasteryInfo{},
		Ranked:  []dto.RatingInfo{},
		Meta: dto.SummaryMeta{
			Ids:  len(ids),
			Mode: string(filter.Mode),
		},
	}

	if len(ids) == 0 {
		s.store(ctx, key, summary, start)
		return summary, nil
	}

	s.attachProfile(ctx, regions.SubRegionFromMatchId(ids[0]), account.Puuid, summary)

	concurrency, rate := matchservice.BatchPolicy(len(ids))
	matches := s.matches.FetchMatches(ctx, filter.Region, ids, concurrency, rate)
	// A cancelled request never gets a partial summary.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	matches = matchservice.FilterByMode(matches, filter.Mode)

	history := ToHistoryRows(account.Puuid, matches)
	if s.lanePhase != nil {
		s.lanePhase.Attach(ctx, filter.Region, account.Puuid, history)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	srOnly := filter.SrOnly && filter.Mode.SummonersRiftOnly()
	analytics := matches
	if srOnly {
		analytics = matchservice.OnlySummonersRift(matches)
	}

	summary.Summary = Aggregate(account.Puuid, analytics)
	summary.History = history
	summary.Meta.SrOnly = srOnly

	s.store(ctx, key, summary, start)
	return summary, nil
}

// attachProfile sets the profile, mastery and ranked entries.
// Failures are logged and leave the fields empty.
func (s *SummaryService) attachProfile(ctx context.Context, platform regions.SubRegion, puuid string, summary *dto.PlayerSummary) {
	summoner, err := s.players.GetSummonerByPuuid(ctx, platform, puuid)
	if err != nil {
		s.logger.Warnf("Couldn't get the summoner of %s on %s: %v", puuid, platform, err)
		summoner = nil
	} else if summoner != nil {
		host := platform.Host()
		summary.Profile = dto.ProfileInfo{
			ProfileIconId: &summoner.ProfileIconId,
			SummonerLevel: &summoner.SummonerLevel,
			Platform:      &host,
		}
	}

	masteries, err := s.players.GetMasteryByPuuid(ctx, platform, puuid)
	if err != nil {
		s.logger.Warnf("Couldn't get the mastery of %s on %s: %v", puuid, platform, err)
	} else {
		summary.Mastery = topMastery(masteries)
	}

	if s.leagues == nil || summoner == nil || summoner.Id == "" {
		return
	}
	entries, err := s.leagues.GetEntriesBySummoner(ctx, platform, summoner.Id)
	if err != nil {
		s.logger.Warnf("Couldn't get the ranked entries of %s on %s: %v", puuid, platform, err)
		return
	}
	for _, entry := range entries {
		summary.Ranked = append(summary.Ranked, dto.RatingInfo{
			Queue:        entry.QueueType,
			Tier:         entry.Tier,
			Rank:         entry.Rank,
			LeaguePoints: entry.LeaguePoints,
			Wins:         entry.Wins,
			Losses:       entry.Losses,
			Rating:       tiervalues.Rating(entry.Tier, entry.Rank, entry.LeaguePoints),
		})
	}
}

func topMastery(masteries []playerfetcher.Mastery) []dto.MasteryInfo {
	sorted := slices.Clone(masteries)
	slices.SortStableFunc(sorted, func(a, b playerfetcher.Mastery) int {
		return cmp.Compare(b.ChampionPoints, a.ChampionPoints)
	})

	top := make([]dto.MasteryInfo, 0, masteryLimit)
	for _, mastery := range sorted[:min(masteryLimit, len(sorted))] {
		top = append(top, dto.MasteryInfo{
			ChampionId:     mastery.ChampionId,
			ChampionLevel:  mastery.ChampionLevel,
			ChampionPoints: mastery.ChampionPoints,
		})
	}
	return top
}

func (s *SummaryService) store(ctx context.Context, key string, summary *dto.PlayerSummary, start time.Time) {
	s.metrics.ObserveSummaryDuration(s.now().Sub(start))
	if s.cache == nil {
		return
	}
	if err := s.cache.SetSummary(ctx, key, summary); err != nil {
		s.logger.Warnf("Couldn't cache the summary %s: %v", key, err)
	}
}
