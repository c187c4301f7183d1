package data

import (
	leaguefetcher "leaguestats/fetcher/data/league"
	matchfetcher "leaguestats/fetcher/data/match"
	playerfetcher "leaguestats/fetcher/data/player"
	"leaguestats/fetcher/requests"
)

// Define a main fetcher.
// Every accessor shares the client, so they share the backoff and the limiter.
type MainFetcher struct {
	Player *playerfetcher.PlayerFetcher
	Match  *matchfetcher.MatchFetcher
	League *leaguefetcher.LeagueFetcher
}

// Function to instanciate the main fetcher.
func NewMainFetcher(client *requests.Client) *MainFetcher {
	return &MainFetcher{
		Player: playerfetcher.NewPlayerFetcher(client),
		Match:  matchfetcher.NewMatchFetcher(client),
		League: leaguefetcher.NewLeagueFetcher(client),
	}
}
