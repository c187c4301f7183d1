package summaryservice

import (
	"fmt"

	matchfetcher "leaguestats/fetcher/data/match"
)

// Options of a test participant.
type playerOpts struct {
	champion string
	win      bool
	kills    int
	deaths   int
	assists  int
	position string
	cs       int
}

// Build a match with the player and a filler opponent.
func testMatch(id int, puuid string, queueId int, opts playerOpts) *matchfetcher.MatchData {
	position := opts.position
	if position == "" {
		position = "MIDDLE"
	}
	return &matchfetcher.MatchData{
		Metadata: matchfetcher.MatchMetadata{MatchId: fmt.Sprintf("NA1_%d", id)},
		Info: matchfetcher.MatchInfo{
			QueueId:            queueId,
			MapId:              11,
			GameDuration:       1800,
			GameStartTimestamp: int64(1_700_000_000_000 + id),
			Participants: []matchfetcher.MatchPlayer{
				{
					Puuid:              puuid,
					ChampionName:       opts.champion,
					Win:                opts.win,
					Kills:              opts.kills,
					Deaths:             opts.deaths,
					Assists:            opts.assists,
					TeamPosition:       position,
					TotalMinionsKilled: opts.cs,
				},
				{Puuid: "someone-else", ChampionName: "Teemo", TeamPosition: "TOP"},
			},
		},
	}
}
