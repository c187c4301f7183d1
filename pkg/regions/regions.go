package regions

import (
	"fmt"
	"strings"
)

// Simple package containing the region list.
// Main regions route the account and match endpoints, sub regions route the platform ones.
type (
	MainRegion string
	SubRegion  string
)

// List of regions.
var RegionList = map[MainRegion][]SubRegion{
	"AMERICAS": {"BR1", "LA1", "LA2", "NA1"},
	"EUROPE":   {"EUN1", "EUW1", "TR1", "ME1", "RU"},
	"ASIA":     {"KR", "JP1"},
	"SEA":      {"OC1", "PH2", "SG2", "TH2", "TW2", "VN2"},
}

// DefaultSubRegion is used when a match id has no usable prefix.
const DefaultSubRegion SubRegion = "NA1"

// ParseMainRegion validates a routing group, case insensitive.
func ParseMainRegion(value string) (MainRegion, error) {
	region := MainRegion(strings.ToUpper(strings.TrimSpace(value)))
	if _, exists := RegionList[region]; !exists {
		return "", fmt.Errorf("invalid region group %q, use one of: americas, europe, asia, sea", value)
	}
	return region, nil
}

// Host returns the lower case routing value used on the API host.
func (r MainRegion) Host() string {
	return strings.ToLower(string(r))
}

// Host returns the lower case routing value used on the API host.
func (r SubRegion) Host() string {
	return strings.ToLower(string(r))
}

// SubRegionFromMatchId derives the platform from a match id like "NA1_123".
func SubRegionFromMatchId(matchId string) SubRegion {
	prefix, _, _ := strings.Cut(matchId, "_")
	if prefix == "" {
		return DefaultSubRegion
	}
	return SubRegion(strings.ToUpper(prefix))
}
