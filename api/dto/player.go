package dto

// AccountInfo is the resolved Riot ID.
type AccountInfo struct {
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
	Puuid    string `json:"puuid"`
}

// ProfileInfo is optional, every field is null when the lookup failed.
type ProfileInfo struct {
	ProfileIconId *int    `json:"profileIconId"`
	SummonerLevel *int    `json:"summonerLevel"`
	Platform      *string `json:"platform"`
}

// MasteryInfo of a top champion.
type MasteryInfo struct {
	ChampionId     int `json:"championId"`
	ChampionLevel  int `json:"championLevel"`
	ChampionPoints int `json:"championPoints"`
}

// RatingInfo contains a player rating information for a given queue.
type RatingInfo struct {
	Queue        string `json:"queue"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	LeaguePoints int    `json:"lp"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	Rating       int    `json:"rating"`
}

// SummaryMeta describes how the summary was built.
type SummaryMeta struct {
	Ids    int    `json:"ids"`
	Mode   string `json:"mode"`
	SrOnly bool   `json:"srOnly"`
}

// PlayerSummary is the full response of the summary endpoint.
type PlayerSummary struct {
	Account AccountInfo `json:"account"`
	Profile ProfileInfo `json:"profile"`
	Summary
	History []HistoryRow  `json:"history"`
	Mastery []MasteryInfo `json:"mastery"`
	Ranked  []RatingInfo  `json:"ranked"`
	Meta    SummaryMeta   `json:"_meta"`
}
