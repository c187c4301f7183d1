package playerfetcher

// Account returned by the account-v1 endpoint.
type Account struct {
	Puuid    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// Summoner data.
type Summoner struct {
	Id            string `json:"id"`
	ProfileIconId int    `json:"profileIconId"`
	Puuid         string `json:"puuid"`
	RevisionDate  int64  `json:"revisionDate"`
	SummonerLevel int    `json:"summonerLevel"`
}

// Mastery of a single champion.
type Mastery struct {
	ChampionId     int   `json:"championId"`
	ChampionLevel  int   `json:"championLevel"`
	ChampionPoints int   `json:"championPoints"`
	LastPlayTime   int64 `json:"lastPlayTime"`
}
