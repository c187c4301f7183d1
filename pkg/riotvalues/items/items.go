package itemvalues

// Notable first completed items whose purchase time is tracked.
// Old mythics are kept for historical matches.
var NotableItems = map[int]struct{}{
	6630: {}, // Goredrinker
	6631: {}, // Stridebreaker
	6632: {}, // Divine Sunderer
	6671: {}, // Galeforce
	6672: {}, // Kraken Slayer
	6673: {}, // Immortal Shieldbow
	6653: {}, // Liandry's
	6655: {}, // Luden's
	6656: {}, // Everfrost
	6662: {}, // Iceborn Gauntlet
	6664: {}, // Turbo Chemtank
	6675: {}, // Navori
	6677: {}, // Rageknife
	3190: {}, // Locket
	2065: {}, // Shurelya's
	6692: {}, // Eclipse
	6691: {}, // Duskblade
	6693: {}, // Prowler's Claw
	3078: {}, // Trinity Force
	3026: {}, // Guardian Angel
	6657: {}, // Rod of Ages
	3089: {}, // Rabadon's
	3124: {}, // Guinsoo's
	3153: {}, // Blade of the Ruined King
	3053: {}, // Sterak's
	3115: {}, // Nashor's
	4628: {}, // Horizon Focus
}

// Support starting items and their upgrades, across seasons.
var SupportItems = map[int]struct{}{
	3850: {}, 3851: {}, 3853: {}, 3854: {}, // Spellthief
	3858: {}, 3859: {}, 3860: {}, 3862: {}, // Relic / Steel Shoulders
	3869: {}, 3870: {}, 3871: {}, 3874: {}, // World Atlas line
}

// IsNotable reports if a item is on the notable set.
func IsNotable(itemId int) bool {
	_, ok := NotableItems[itemId]
	return ok
}

// IsSupportItem reports if a item is a support starter.
func IsSupportItem(itemId int) bool {
	_, ok := SupportItems[itemId]
	return ok
}
