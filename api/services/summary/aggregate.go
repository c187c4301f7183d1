package summaryservice

import (
	"cmp"
	"math"
	"slices"

	"leaguestats/api/dto"
	matchfetcher "leaguestats/fetcher/data/match"
)

// Power picks need this many games on the champion.
const (
	powerPickMinGames = 3
	powerPickLimit    = 3
)

// Fallback name when the match has no champion name.
const unknownChampion = "Unknown"

// Aggregate reduces the matches of a player into a summary.
// Matches are expected newest first, the ones without the player are skipped.
func Aggregate(puuid string, matches []*matchfetcher.MatchData) dto.Summary {
	summary := dto.EmptySummary()

	roleCounts := make(map[Role]int, len(Roles))
	champions := []*dto.ChampionStats{}
	championIndex := map[string]int{}
	outcomes := []bool{}

	for _, match := range matches {
		if match == nil {
			continue
		}
		p, err := match.FindParticipant(puuid)
		if err != nil {
			continue
		}

		roleCounts[InferRole(p)]++
		outcomes = append(outcomes, p.Win)

		totals := &summary.Totals
		totals.Matches++
		if p.Win {
			totals.Wins++
		} else {
			totals.Losses++
		}
		totals.Kills += p.Kills
		totals.Deaths += p.Deaths
		totals.Assists += p.Assists

		name := p.ChampionName
		if name == "" {
			name = unknownChampion
		}
		idx, exists := championIndex[name]
		if !exists {
			idx = len(champions)
			championIndex[name] = idx
			champions = append(champions, &dto.ChampionStats{Champion: name})
		}
		champion := champions[idx]
		champion.Games++
		if p.Win {
			champion.Wins++
		}
		champion.Kills += p.Kills
		champion.Deaths += p.Deaths
		champion.Assists += p.Assists
	}

	summary.Totals.Winrate = winrate(summary.Totals.Wins, summary.Totals.Matches)
	summary.Totals.KDA = kda(summary.Totals.Kills, summary.Totals.Deaths, summary.Totals.Assists)
	summary.Streak = streak(outcomes)
	summary.Roles = roleHistogram(roleCounts)
	summary.Champions = championStats(champions)
	summary.PowerPicks = powerPicks(summary.Champions, summary.Totals.Winrate)

	return summary
}

// round is half up, 2.5 gives 3 and -2.5 gives -2.
func round(x float64) float64 {
	return math.Floor(x + 0.5)
}

// Winrate as a one decimal percentage.
func winrate(wins, games int) float64 {
	if games == 0 {
		return 0
	}
	return round(float64(wins)/float64(games)*1000) / 10
}

// KDA with one decimal, the raw kills plus assists without deaths.
func kda(kills, deaths, assists int) float64 {
	if deaths == 0 {
		return float64(kills + assists)
	}
	return round(float64(kills+assists)/float64(deaths)*10) / 10
}

func streak(outcomes []bool) dto.Streak {
	if len(outcomes) == 0 {
		return dto.Streak{Type: "none"}
	}

	first := outcomes[0]
	count := 0
	for _, win := range outcomes {
		if win != first {
			break
		}
		count++
	}

	if first {
		return dto.Streak{Type: "win", Count: count}
	}
	return dto.Streak{Type: "loss", Count: count}
}

func roleHistogram(counts map[Role]int) []dto.RoleCount {
	roles := make([]dto.RoleCount, 0, len(counts))
	for _, role := range Roles {
		if counts[role] > 0 {
			roles = append(roles, dto.RoleCount{Role: string(role), Count: counts[role]})
		}
	}
	slices.SortStableFunc(roles, func(a, b dto.RoleCount) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return roles
}

func championStats(champions []*dto.ChampionStats) []dto.ChampionStats {
	stats := make([]dto.ChampionStats, 0, len(champions))
	for _, champion := range champions {
		champion.Losses = champion.Games - champion.Wins
		champion.Winrate = winrate(champion.Wins, champion.Games)
		champion.KDA = kda(champion.Kills, champion.Deaths, champion.Assists)
		stats = append(stats, *champion)
	}
	slices.SortStableFunc(stats, func(a, b dto.ChampionStats) int {
		return cmp.Compare(b.Games, a.Games)
	})
	return stats
}

func powerPicks(champions []dto.ChampionStats, overall float64) []dto.PowerPick {
	picks := []dto.PowerPick{}
	for _, champion := range champions {
		if champion.Games < powerPickMinGames {
			continue
		}
		picks = append(picks, dto.PowerPick{
			Champion:      champion.Champion,
			Games:         champion.Games,
			PlayerWinrate: champion.Winrate,
			GlobalWinrate: overall,
			Diff:          round((champion.Winrate-overall)*10) / 10,
		})
	}
	slices.SortStableFunc(picks, func(a, b dto.PowerPick) int {
		return cmp.Compare(b.Diff, a.Diff)
	})
	if len(picks) > powerPickLimit {
		picks = picks[:powerPickLimit]
	}
	return picks
}
