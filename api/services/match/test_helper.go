package matchservice

import (
	"context"
	"fmt"
	"net/url"

	matchfetcher "leaguestats/fetcher/data/match"
	"leaguestats/pkg/regions"

	"github.com/stretchr/testify/mock"
)

type MockMatchIdLister struct {
	mock.Mock
}

func (m *MockMatchIdLister) GetMatchIds(ctx context.Context, region regions.MainRegion, puuid string, query url.Values) ([]string, error) {
	args := m.Called(ctx, region, puuid, query)
	return args.Get(0).([]string), args.Error(1)
}

type MockMatchGetter struct {
	mock.Mock
}

func (m *MockMatchGetter) GetMatch(ctx context.Context, region regions.MainRegion, matchId string) (*matchfetcher.MatchData, error) {
	args := m.Called(ctx, region, matchId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*matchfetcher.MatchData), args.Error(1)
}

// Build a page of sequential ids.
func idPage(from, size int) []string {
	ids := make([]string, size)
	for i := range ids {
		ids[i] = fmt.Sprintf("NA1_%d", from+i)
	}
	return ids
}

// Query matcher for a given start and count.
func pageQuery(start, count int) any {
	return mock.MatchedBy(func(q url.Values) bool {
		return q.Get("start") == fmt.Sprint(start) && q.Get("count") == fmt.Sprint(count)
	})
}

func newMatch(id string, queueId int, mapId int) *matchfetcher.MatchData {
	return &matchfetcher.MatchData{
		Metadata: matchfetcher.MatchMetadata{MatchId: id},
		Info:     matchfetcher.MatchInfo{QueueId: queueId, MapId: mapId},
	}
}

const regionAmericas regions.MainRegion = "AMERICAS"
