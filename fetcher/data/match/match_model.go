package matchfetcher

// Return type from the match_v5 endpoint.
type MatchData struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

// MatchMetadata identifies the match and the players, in slot order.
type MatchMetadata struct {
	MatchId      string   `json:"matchId"`
	Participants []string `json:"participants"`
}

// MatchInfo contains the basic match metadata.
// Timestamps are epoch milliseconds, the duration is in seconds.
type MatchInfo struct {
	GameCreation       int64         `json:"gameCreation"`
	GameStartTimestamp int64         `json:"gameStartTimestamp"`
	GameDuration       int           `json:"gameDuration"`
	GameMode           string        `json:"gameMode"`
	GameVersion        string        `json:"gameVersion"`
	MapId              int           `json:"mapId"`
	Participants       []MatchPlayer `json:"participants"`
	PlatformId         string        `json:"platformId"`
	QueueId            int           `json:"queueId"`
	Teams              []TeamInfo    `json:"teams"`
}

// MatchPlayer contains the stats and information about a given player in a Match.
type MatchPlayer struct {
	Assists              int    `json:"assists"`
	ChampionId           int    `json:"championId"`
	ChampionName         string `json:"championName"`
	Deaths               int    `json:"deaths"`
	IndividualPosition   string `json:"individualPosition"`
	Item0                int    `json:"item0"`
	Item1                int    `json:"item1"`
	Item2                int    `json:"item2"`
	Item3                int    `json:"item3"`
	Item4                int    `json:"item4"`
	Item5                int    `json:"item5"`
	Item6                int    `json:"item6"`
	Kills                int    `json:"kills"`
	NeutralMinionsKilled int    `json:"neutralMinionsKilled"`
	ParticipantId        int    `json:"participantId"`
	Perks                Perks  `json:"perks"`
	Puuid                string `json:"puuid"`
	Summoner1Id          int    `json:"summoner1Id"`
	Summoner2Id          int    `json:"summoner2Id"`
	TeamId               int    `json:"teamId"`
	TeamPosition         string `json:"teamPosition"`
	TotalMinionsKilled   int    `json:"totalMinionsKilled"`
	Win                  bool   `json:"win"`
}

// Items returns the six equipment slots, trinket excluded.
func (p *MatchPlayer) Items() [6]int {
	return [6]int{p.Item0, p.Item1, p.Item2, p.Item3, p.Item4, p.Item5}
}

// CreepScore is the lane and jungle minions killed.
func (p *MatchPlayer) CreepScore() int {
	return p.TotalMinionsKilled + p.NeutralMinionsKilled
}

// Perks selected by the player.
type Perks struct {
	Styles []PerkStyle `json:"styles"`
}

// PerkStyle is a rune tree, primary or secondary.
type PerkStyle struct {
	Description string          `json:"description"`
	Selections  []PerkSelection `json:"selections"`
	Style       int             `json:"style"`
}

// Single rune.
type PerkSelection struct {
	Perk int `json:"perk"`
}

// Team information.
type TeamInfo struct {
	Bans   []Ban `json:"bans"`
	TeamId int   `json:"teamId"`
	Win    bool  `json:"win"`
}

// Ban information.
type Ban struct {
	ChampionId int `json:"championId"`
	PickTurn   int `json:"pickTurn"`
}
