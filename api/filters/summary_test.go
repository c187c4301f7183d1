package filters

import (
	"testing"

	matchservice "leaguestats/api/services/match"
	"leaguestats/pkg/regions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlayerSummaryFilterDefaults(t *testing.T) {
	filter, err := NewPlayerSummaryFilter(&PlayerSummaryParams{RiotId: " Faker#KR1 "})
	require.NoError(t, err)

	assert.Equal(t, &PlayerSummaryFilter{
		GameName: "Faker",
		TagLine:  "KR1",
		Region:   regions.MainRegion("AMERICAS"),
		Mode:     matchservice.ModeAll,
		Count:    DefaultCount,
		Max:      DefaultMax,
		SrOnly:   true,
	}, filter)
}

func TestNewPlayerSummaryFilterInvalid(t *testing.T) {
	tests := []struct {
		name   string
		params PlayerSummaryParams
	}{
		{name: "empty riot id", params: PlayerSummaryParams{}},
		{name: "missing tag", params: PlayerSummaryParams{RiotId: "Faker"}},
		{name: "empty tag", params: PlayerSummaryParams{RiotId: "Faker#"}},
		{name: "empty name", params: PlayerSummaryParams{RiotId: "#KR1"}},
		{name: "bad region", params: PlayerSummaryParams{RiotId: "Faker#KR1", Region: "mars"}},
		{name: "bad mode", params: PlayerSummaryParams{RiotId: "Faker#KR1", Mode: "urf"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := NewPlayerSummaryFilter(&tt.params)
			assert.Nil(t, filter)
			assert.ErrorIs(t, err, ErrInvalidRequest)
		})
	}
}

func TestNewPlayerSummaryFilterLimits(t *testing.T) {
	tests := []struct {
		name  string
		param PlayerSummaryParams
		count int
		all   bool
		max   int
	}{
		{name: "count clamp", param: PlayerSummaryParams{Count: "250"}, count: 100, max: 300},
		{name: "count not a number", param: PlayerSummaryParams{Count: "abc"}, count: 20, max: 300},
		{name: "count zero", param: PlayerSummaryParams{Count: "0"}, count: 20, max: 300},
		{name: "max clamp", param: PlayerSummaryParams{Max: "5000", All: "1"}, count: 20, all: true, max: 1000},
		{name: "all true", param: PlayerSummaryParams{All: "TRUE", Max: "50"}, count: 20, all: true, max: 50},
		{name: "size all", param: PlayerSummaryParams{Size: "all", Max: "50"}, count: 100, all: true, max: 300},
		{name: "size all keeps a bigger max", param: PlayerSummaryParams{Size: "ALL", Max: "800"}, count: 100, all: true, max: 800},
		{name: "numeric size", param: PlayerSummaryParams{Size: "40", All: "1", Count: "10"}, count: 40, all: false, max: 300},
		{name: "numeric size clamp", param: PlayerSummaryParams{Size: "400"}, count: 100, max: 300},
		{name: "bad size", param: PlayerSummaryParams{Size: "lots"}, count: 20, max: 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.param.RiotId = "Faker#KR1"
			filter, err := NewPlayerSummaryFilter(&tt.param)
			require.NoError(t, err)

			assert.Equal(t, tt.count, filter.Count)
			assert.Equal(t, tt.all, filter.All)
			assert.Equal(t, tt.max, filter.Max)
		})
	}
}

func TestNewPlayerSummaryFilterQueueAndSrOnly(t *testing.T) {
	tests := []struct {
		name   string
		param  PlayerSummaryParams
		queue  string
		srOnly bool
	}{
		{name: "aram infers the queue", param: PlayerSummaryParams{Mode: "ARAM"}, queue: "450", srOnly: true},
		{name: "arena infers the queue", param: PlayerSummaryParams{Mode: "arena"}, queue: "1700", srOnly: true},
		{name: "explicit queue wins", param: PlayerSummaryParams{Mode: "aram", Queue: "720"}, queue: "720", srOnly: true},
		{name: "ranked has no single queue", param: PlayerSummaryParams{Mode: "ranked"}, queue: "", srOnly: true},
		{name: "sr only disabled", param: PlayerSummaryParams{SrOnly: "0"}, queue: "", srOnly: false},
		{name: "sr only true", param: PlayerSummaryParams{SrOnly: "true"}, queue: "", srOnly: true},
		{name: "sr only anything else", param: PlayerSummaryParams{SrOnly: "yes"}, queue: "", srOnly: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.param.RiotId = "Faker#KR1"
			filter, err := NewPlayerSummaryFilter(&tt.param)
			require.NoError(t, err)

			assert.Equal(t, tt.queue, filter.Queue)
			assert.Equal(t, tt.srOnly, filter.SrOnly)
		})
	}
}

func TestPlayerSummaryFilterLoadOptions(t *testing.T) {
	filter, err := NewPlayerSummaryFilter(&PlayerSummaryParams{
		RiotId:    "Faker#KR1",
		Mode:      "aram",
		All:       "1",
		StartTime: "100",
		EndTime:   "200",
	})
	require.NoError(t, err)

	assert.Equal(t, matchservice.LoadOptions{
		Count:     20,
		All:       true,
		Max:       300,
		Queue:     "450",
		StartTime: "100",
		EndTime:   "200",
	}, filter.LoadOptions())
}

func TestPlayerSummaryFilterCacheKey(t *testing.T) {
	build := func(params PlayerSummaryParams) string {
		filter, err := NewPlayerSummaryFilter(&params)
		require.NoError(t, err)
		return filter.CacheKey()
	}

	key := build(PlayerSummaryParams{RiotId: "Faker#KR1"})
	assert.Len(t, key, 64)
	assert.Equal(t, key, build(PlayerSummaryParams{RiotId: "faker#kr1", Region: "AMERICAS", Mode: "all"}))
	assert.NotEqual(t, key, build(PlayerSummaryParams{RiotId: "Faker#KR1", Mode: "ranked"}))
	assert.NotEqual(t, key, build(PlayerSummaryParams{RiotId: "Faker#KR1", SrOnly: "0"}))
	assert.NotEqual(t, key, build(PlayerSummaryParams{RiotId: "Faker#KR1", Region: "europe"}))
}
