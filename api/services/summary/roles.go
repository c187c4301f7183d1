package summaryservice

import (
	"strings"

	matchfetcher "leaguestats/fetcher/data/match"
	itemvalues "leaguestats/pkg/riotvalues/items"
	spellvalues "leaguestats/pkg/riotvalues/spells"
)

// Role played on a match.
type Role string

const (
	RoleTop     Role = "TOP"
	RoleJungle  Role = "JUNGLE"
	RoleMiddle  Role = "MIDDLE"
	RoleBottom  Role = "BOTTOM"
	RoleSupport Role = "SUPPORT"
)

// Roles in display order, also the tie order of the histogram.
var Roles = []Role{RoleTop, RoleJungle, RoleMiddle, RoleBottom, RoleSupport}

// Below this many minions a player is taken as a support.
const lowCreepScore = 120

// RoleRule infers a role, ok is false when the rule doesn't apply.
type RoleRule struct {
	Name  string
	Infer func(p *matchfetcher.MatchPlayer) (Role, bool)
}

// RoleRules are evaluated in order, the first match wins.
// Old matches may not carry a position, hence the heuristics.
var RoleRules = []RoleRule{
	{Name: "authoritative-label", Infer: labelRole},
	{Name: "smite", Infer: smiteRole},
	{Name: "support-item", Infer: supportItemRole},
	{Name: "low-cs", Infer: lowCreepScoreRole},
}

// InferRole returns the role of a participant, MIDDLE when nothing applies.
func InferRole(p *matchfetcher.MatchPlayer) Role {
	for _, rule := range RoleRules {
		if role, ok := rule.Infer(p); ok {
			return role
		}
	}
	return RoleMiddle
}

// Position synonyms used by the API over the seasons.
var positionAliases = map[string]Role{
	"TOP":     RoleTop,
	"JUNGLE":  RoleJungle,
	"MIDDLE":  RoleMiddle,
	"MID":     RoleMiddle,
	"BOTTOM":  RoleBottom,
	"BOT":     RoleBottom,
	"ADC":     RoleBottom,
	"UTILITY": RoleSupport,
	"SUPPORT": RoleSupport,
}

func labelRole(p *matchfetcher.MatchPlayer) (Role, bool) {
	label := p.TeamPosition
	if label == "" {
		label = p.IndividualPosition
	}
	role, ok := positionAliases[strings.ToUpper(strings.TrimSpace(label))]
	return role, ok
}

func smiteRole(p *matchfetcher.MatchPlayer) (Role, bool) {
	if p.Summoner1Id == spellvalues.Smite || p.Summoner2Id == spellvalues.Smite {
		return RoleJungle, true
	}
	return "", false
}

func supportItemRole(p *matchfetcher.MatchPlayer) (Role, bool) {
	for _, item := range p.Items() {
		if itemvalues.IsSupportItem(item) {
			return RoleSupport, true
		}
	}
	return "", false
}

func lowCreepScoreRole(p *matchfetcher.MatchPlayer) (Role, bool) {
	if p.CreepScore() < lowCreepScore {
		return RoleSupport, true
	}
	return "", false
}
