package dto

// Totals over every match the player appears on.
type Totals struct {
	Matches int     `json:"matches"`
	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
	Kills   int     `json:"kills"`
	Deaths  int     `json:"deaths"`
	Assists int     `json:"assists"`
	Winrate float64 `json:"winrate"`
	KDA     float64 `json:"kda"`
}

// Streak is the leading run of equal outcomes, newest first.
type Streak struct {
	Type  string `json:"type"` // "win", "loss" or "none".
	Count int    `json:"count"`
}

// RoleCount is a single entry of the role histogram.
type RoleCount struct {
	Role  string `json:"role"`
	Count int    `json:"count"`
}

// ChampionStats of the player on a single champion.
type ChampionStats struct {
	Champion string  `json:"champion"`
	Games    int     `json:"games"`
	Wins     int     `json:"wins"`
	Losses   int     `json:"losses"`
	Winrate  float64 `json:"winrate"`
	Kills    int     `json:"kills"`
	Deaths   int     `json:"deaths"`
	Assists  int     `json:"assists"`
	KDA      float64 `json:"kda"`
}

// PowerPick is a champion played above the overall winrate.
type PowerPick struct {
	Champion      string  `json:"champion"`
	Games         int     `json:"games"`
	PlayerWinrate float64 `json:"playerWinrate"`
	GlobalWinrate float64 `json:"globalWinrate"`
	Diff          float64 `json:"diff"`
}

// Summary is the aggregate of a player matches.
// Lists are never nil, so the shape is the same without matches.
type Summary struct {
	Totals     Totals          `json:"totals"`
	Streak     Streak          `json:"streak"`
	Roles      []RoleCount     `json:"roles"`
	Champions  []ChampionStats `json:"champions"`
	PowerPicks []PowerPick     `json:"powerPicks"`
}

// EmptySummary is the summary of no matches.
func EmptySummary() Summary {
	return Summary{
		Streak:     Streak{Type: "none"},
		Roles:      []RoleCount{},
		Champions:  []ChampionStats{},
		PowerPicks: []PowerPick{},
	}
}

// LanePhase has the early game splits against the mirrored opponent.
type LanePhase struct {
	Cs10               int  `json:"cs10"`
	Cs15               int  `json:"cs15"`
	GoldDiff10         int  `json:"goldDiff10"`
	GoldDiff15         int  `json:"goldDiff15"`
	XpDiff10           int  `json:"xpDiff10"`
	XpDiff15           int  `json:"xpDiff15"`
	MythicAt           *int `json:"mythicAt"` // Seconds since the game start.
	FirstBloodInvolved bool `json:"firstBloodInvolved"`
}

// SpellInfo is a summoner spell on a history row.
type SpellInfo struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// RuneInfo has the rune trees and the keystone, when known.
type RuneInfo struct {
	PrimaryStyle *int `json:"primaryStyle,omitempty"`
	SubStyle     *int `json:"subStyle,omitempty"`
	Keystone     *int `json:"keystone,omitempty"`
}

// HistoryRow is a single match on the player history.
type HistoryRow struct {
	Id        string      `json:"id"`
	Timestamp int64       `json:"ts"`
	QueueId   int         `json:"queueId"`
	QueueName string      `json:"queueName"`
	MapId     int         `json:"mapId"`
	Win       bool        `json:"win"`
	Champion  string      `json:"champion"`
	Kills     int         `json:"kills"`
	Deaths    int         `json:"deaths"`
	Assists   int         `json:"assists"`
	KDA       float64     `json:"kda"`
	CS        int         `json:"cs"`
	Role      string      `json:"role"`
	Duration  int         `json:"duration"`
	Items     []int       `json:"items"`
	Trinket   *int        `json:"trinket"`
	Spells    []SpellInfo `json:"spells"`
	Runes     RuneInfo    `json:"runes"`
	LanePhase *LanePhase  `json:"lanePhase"`
}
