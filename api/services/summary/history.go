package summaryservice

import (
	"strconv"

	"leaguestats/api/dto"
	matchfetcher "leaguestats/fetcher/data/match"
	queuevalues "leaguestats/pkg/riotvalues/queue"
	spellvalues "leaguestats/pkg/riotvalues/spells"
)

// ToHistoryRows converts the matches into history rows, in the same order.
// Matches without the player are skipped.
func ToHistoryRows(puuid string, matches []*matchfetcher.MatchData) []dto.HistoryRow {
	rows := make([]dto.HistoryRow, 0, len(matches))
	for _, match := range matches {
		if match == nil {
			continue
		}
		p, err := match.FindParticipant(puuid)
		if err != nil {
			continue
		}

		timestamp := match.Info.GameStartTimestamp
		if timestamp == 0 {
			timestamp = match.Info.GameCreation
		}

		champion := p.ChampionName
		if champion == "" {
			champion = unknownChampion
		}

		rows = append(rows, dto.HistoryRow{
			Id:        match.Metadata.MatchId,
			Timestamp: timestamp,
			QueueId:   match.Info.QueueId,
			QueueName: queuevalues.Label(match.Info.QueueId),
			MapId:     match.Info.MapId,
			Win:       p.Win,
			Champion:  champion,
			Kills:     p.Kills,
			Deaths:    p.Deaths,
			Assists:   p.Assists,
			KDA:       rawKDA(p),
			CS:        p.CreepScore(),
			Role:      positionLabel(p),
			Duration:  max(0, match.Info.GameDuration),
			Items:     items(p),
			Trinket:   optional(p.Item6),
			Spells:    DeriveSpells(p.Summoner1Id, p.Summoner2Id),
			Runes:     DeriveRunes(p.Perks),
		})
	}
	return rows
}

// Position as reported by the match, the role histogram uses InferRole instead.
func positionLabel(p *matchfetcher.MatchPlayer) string {
	if p.TeamPosition != "" {
		return p.TeamPosition
	}
	if p.IndividualPosition != "" {
		return p.IndividualPosition
	}
	return string(RoleMiddle)
}

// History keeps the unrounded ratio.
func rawKDA(p *matchfetcher.MatchPlayer) float64 {
	if p.Deaths == 0 {
		return float64(p.Kills + p.Assists)
	}
	return float64(p.Kills+p.Assists) / float64(p.Deaths)
}

// Non empty equipment slots.
func items(p *matchfetcher.MatchPlayer) []int {
	slots := []int{}
	for _, item := range p.Items() {
		if item != 0 {
			slots = append(slots, item)
		}
	}
	return slots
}

func optional(value int) *int {
	if value == 0 {
		return nil
	}
	return &value
}

// DeriveSpells names the two summoner spells, unknown ones keep the id as name.
func DeriveSpells(spell1, spell2 int) []dto.SpellInfo {
	spells := make([]dto.SpellInfo, 0, 2)
	for _, id := range []int{spell1, spell2} {
		info := dto.SpellInfo{Id: id, Name: strconv.Itoa(id)}
		if spell, exists := spellvalues.Spells[id]; exists {
			info.Name = spell.Name
			info.Icon = spell.Icon
		}
		spells = append(spells, info)
	}
	return spells
}

// DeriveRunes finds the rune trees and the keystone.
// Trees are found by description, falling back to the position.
func DeriveRunes(perks matchfetcher.Perks) dto.RuneInfo {
	primary := findStyle(perks.Styles, "primaryStyle", 0)
	sub := findStyle(perks.Styles, "subStyle", 1)

	var runes dto.RuneInfo
	if primary != nil {
		runes.PrimaryStyle = optional(primary.Style)
		if len(primary.Selections) > 0 {
			runes.Keystone = optional(primary.Selections[0].Perk)
		}
	}
	if sub != nil {
		runes.SubStyle = optional(sub.Style)
	}
	return runes
}

func findStyle(styles []matchfetcher.PerkStyle, description string, position int) *matchfetcher.PerkStyle {
	for i := range styles {
		if styles[i].Description == description {
			return &styles[i]
		}
	}
	if position < len(styles) {
		return &styles[position]
	}
	return nil
}
