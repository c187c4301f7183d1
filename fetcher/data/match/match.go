package matchfetcher

import (
	"context"
	"errors"
	"net/url"

	"leaguestats/fetcher/requests"
	"leaguestats/pkg/regions"
)

// ErrParticipantNotFound is returned when the player is not in a match.
// Callers treat it as a skip, not as a failure.
var ErrParticipantNotFound = errors.New("participant not found in match")

// The match fetcher.
// Matches and timelines are routed by the main region.
type MatchFetcher struct {
	client *requests.Client
}

// Create a instance of the match fetcher.
func NewMatchFetcher(client *requests.Client) *MatchFetcher {
	return &MatchFetcher{client: client}
}

// GetMatchIds lists the match ids of a player, newest first.
// The query is sent as is, the caller sets start and count.
func (m *MatchFetcher) GetMatchIds(ctx context.Context, region regions.MainRegion, puuid string, query url.Values) ([]string, error) {
	target := m.client.URL(region.Host(), "/lol/match/v5/matches/by-puuid/%s/ids", url.PathEscape(puuid))
	if encoded := query.Encode(); encoded != "" {
		target += "?" + encoded
	}

	var ids []string
	if err := m.client.GetJSON(ctx, target, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// Get a given match data.
func (m *MatchFetcher) GetMatch(ctx context.Context, region regions.MainRegion, matchId string) (*MatchData, error) {
	target := m.client.URL(region.Host(), "/lol/match/v5/matches/%s", url.PathEscape(matchId))

	var match MatchData
	if err := m.client.GetJSON(ctx, target, &match); err != nil {
		return nil, err
	}
	return &match, nil
}

// Get a given match timeline.
func (m *MatchFetcher) GetMatchTimeline(ctx context.Context, region regions.MainRegion, matchId string) (*MatchTimeline, error) {
	target := m.client.URL(region.Host(), "/lol/match/v5/matches/%s/timeline", url.PathEscape(matchId))

	var timeline MatchTimeline
	if err := m.client.GetJSON(ctx, target, &timeline); err != nil {
		return nil, err
	}
	return &timeline, nil
}

// FindParticipant returns the entry of the player on the match.
func (m *MatchData) FindParticipant(puuid string) (*MatchPlayer, error) {
	for i := range m.Info.Participants {
		if m.Info.Participants[i].Puuid == puuid {
			return &m.Info.Participants[i], nil
		}
	}
	return nil, ErrParticipantNotFound
}
