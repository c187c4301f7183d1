package leaguefetcher

// Entry of a player in a ranked queue.
type LeagueEntry struct {
	FreshBlood   bool   `json:"freshBlood"`
	HotStreak    bool   `json:"hotStreak"`
	Inactive     bool   `json:"inactive"`
	LeagueId     string `json:"leagueId"`
	LeaguePoints int    `json:"leaguePoints"`
	Losses       int    `json:"losses"`
	QueueType    string `json:"queueType"`
	Rank         string `json:"rank"`
	SummonerId   string `json:"summonerId"`
	Tier         string `json:"tier"`
	Veteran      bool   `json:"veteran"`
	Wins         int    `json:"wins"`
}
