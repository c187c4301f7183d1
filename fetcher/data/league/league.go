package leaguefetcher

import (
	"context"
	"net/url"

	"leaguestats/fetcher/requests"
	"leaguestats/pkg/regions"
)

// The league fetcher.
type LeagueFetcher struct {
	client *requests.Client
}

// Create a league fetcher.
func NewLeagueFetcher(client *requests.Client) *LeagueFetcher {
	return &LeagueFetcher{client: client}
}

// Get a given player entries for each queue.
func (l *LeagueFetcher) GetEntriesBySummoner(ctx context.Context, region regions.SubRegion, summonerId string) ([]LeagueEntry, error) {
	target := l.client.URL(region.Host(), "/lol/league/v4/entries/by-summoner/%s", url.PathEscape(summonerId))

	var entries []LeagueEntry
	if err := l.client.GetJSON(ctx, target, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
