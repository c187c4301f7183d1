package playerfetcher

import (
	"context"
	"net/url"

	"leaguestats/fetcher/requests"
	"leaguestats/pkg/regions"
)

// The player fetcher.
type PlayerFetcher struct {
	client *requests.Client
}

// Create a player fetcher.
func NewPlayerFetcher(client *requests.Client) *PlayerFetcher {
	return &PlayerFetcher{client: client}
}

// Get the account of a Riot ID, routed by the main region.
func (p *PlayerFetcher) GetAccountByRiotId(ctx context.Context, region regions.MainRegion, gameName string, tagLine string) (*Account, error) {
	target := p.client.URL(region.Host(), "/riot/account/v1/accounts/by-riot-id/%s/%s",
		url.PathEscape(gameName), url.PathEscape(tagLine))

	var account Account
	if err := p.client.GetJSON(ctx, target, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// Get a players summoner data.
func (p *PlayerFetcher) GetSummonerByPuuid(ctx context.Context, region regions.SubRegion, puuid string) (*Summoner, error) {
	target := p.client.URL(region.Host(), "/lol/summoner/v4/summoners/by-puuid/%s", url.PathEscape(puuid))

	var summoner Summoner
	if err := p.client.GetJSON(ctx, target, &summoner); err != nil {
		return nil, err
	}
	return &summoner, nil
}

// Get the champion masteries of a player, sorted by points from the API.
func (p *PlayerFetcher) GetMasteryByPuuid(ctx context.Context, region regions.SubRegion, puuid string) ([]Mastery, error) {
	target := p.client.URL(region.Host(), "/lol/champion-mastery/v4/champion-masteries/by-puuid/%s", url.PathEscape(puuid))

	var masteries []Mastery
	if err := p.client.GetJSON(ctx, target, &masteries); err != nil {
		return nil, err
	}
	return masteries, nil
}
