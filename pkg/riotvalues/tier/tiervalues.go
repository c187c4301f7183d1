package tiervalues

import (
	"slices"
	"strings"
)

var tierValues = map[string]int{
	"IRON":        0,
	"BRONZE":      10000,
	"SILVER":      20000,
	"GOLD":        30000,
	"PLATINUM":    40000,
	"EMERALD":     50000,
	"DIAMOND":     60000,
	"MASTER":      70000,
	"GRANDMASTER": 80000,
	"CHALLENGER":  90000,
}

var rankValues = map[string]int{
	"IV":  0,
	"III": 2500,
	"II":  5000,
	"I":   7500,
}

// Tiers without divisions.
var apexTiers = []string{"MASTER", "GRANDMASTER", "CHALLENGER"}

// Rating converts a ranked entry into a single comparable number.
// Unknown tiers are worth 0, unknown divisions only count the tier.
func Rating(tier string, rank string, lp int) int {
	tier = strings.ToUpper(strings.TrimSpace(tier))

	baseValue, exists := tierValues[tier]
	if !exists {
		return 0
	}

	if slices.Contains(apexTiers, tier) {
		return baseValue + lp
	}

	divisionValue, exists := rankValues[strings.ToUpper(strings.TrimSpace(rank))]
	if !exists {
		return baseValue
	}

	return baseValue + divisionValue + lp
}
