package testutil

import (
	"context"
	"testing"
	"time"

	"leaguestats/api/dto"
	"leaguestats/api/filters"
	leaguefetcher "leaguestats/fetcher/data/league"
	matchfetcher "leaguestats/fetcher/data/match"
	playerfetcher "leaguestats/fetcher/data/player"
	"leaguestats/pkg/regions"

	"github.com/stretchr/testify/mock"
)

// Assert the expectations of all mocks.
func VerifyAllMocks(t *testing.T, mocks ...any) {
	t.Helper()

	for _, m := range mocks {
		if mockObj, ok := m.(interface{ AssertExpectations(mock.TestingT) bool }); ok {
			mockObj.AssertExpectations(t)
		}
	}
}

// ============================================================================
// Mock Implementations used on the summary service tests.
// ============================================================================

// Player fetcher mock.
type MockPlayerGetter struct {
	mock.Mock
}

func (m *MockPlayerGetter) GetAccountByRiotId(ctx context.Context, region regions.MainRegion, gameName string, tagLine string) (*playerfetcher.Account, error) {
	args := m.Called(ctx, region, gameName, tagLine)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*playerfetcher.Account), args.Error(1)
}

func (m *MockPlayerGetter) GetSummonerByPuuid(ctx context.Context, region regions.SubRegion, puuid string) (*playerfetcher.Summoner, error) {
	args := m.Called(ctx, region, puuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*playerfetcher.Summoner), args.Error(1)
}

func (m *MockPlayerGetter) GetMasteryByPuuid(ctx context.Context, region regions.SubRegion, puuid string) ([]playerfetcher.Mastery, error) {
	args := m.Called(ctx, region, puuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]playerfetcher.Mastery), args.Error(1)
}

// League fetcher mock.
type MockLeagueGetter struct {
	mock.Mock
}

func (m *MockLeagueGetter) GetEntriesBySummoner(ctx context.Context, region regions.SubRegion, summonerId string) ([]leaguefetcher.LeagueEntry, error) {
	args := m.Called(ctx, region, summonerId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]leaguefetcher.LeagueEntry), args.Error(1)
}

// Match batch fetcher mock.
type MockMatchBatchFetcher struct {
	mock.Mock
}

func (m *MockMatchBatchFetcher) FetchMatches(ctx context.Context, region regions.MainRegion, ids []string, concurrency int, rate time.Duration) []*matchfetcher.MatchData {
	args := m.Called(ctx, region, ids, concurrency, rate)
	return args.Get(0).([]*matchfetcher.MatchData)
}

// Lane phase mock, the Run function can edit the rows.
type MockLanePhaseAttacher struct {
	mock.Mock
}

func (m *MockLanePhaseAttacher) Attach(ctx context.Context, region regions.MainRegion, puuid string, rows []dto.HistoryRow) {
	m.Called(ctx, region, puuid, rows)
}

// Summary cache mock.
type MockSummaryCache struct {
	mock.Mock
}

func (m *MockSummaryCache) GetSummary(ctx context.Context, key string) (*dto.PlayerSummary, bool) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*dto.PlayerSummary), args.Bool(1)
}

func (m *MockSummaryCache) SetSummary(ctx context.Context, key string, summary *dto.PlayerSummary) error {
	args := m.Called(ctx, key, summary)
	return args.Error(0)
}

// ============================================================================
// Mock Implementations used on the handler and gRPC tests.
// ============================================================================

type MockSummaryService struct {
	mock.Mock
}

func (m *MockSummaryService) GetPlayerSummary(ctx context.Context, filter *filters.PlayerSummaryFilter) (*dto.PlayerSummary, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PlayerSummary), args.Error(1)
}
