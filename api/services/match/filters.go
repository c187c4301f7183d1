package matchservice

import (
	"fmt"
	"slices"
	"strings"

	matchfetcher "leaguestats/fetcher/data/match"
	"leaguestats/pkg/messages"
	queuevalues "leaguestats/pkg/riotvalues/queue"
)

// Mode scopes the matches by queue.
type Mode string

const (
	ModeAll      Mode = "all"
	ModeRanked   Mode = "ranked"
	ModeUnranked Mode = "unranked"
	ModeAram     Mode = "aram"
	ModeArena    Mode = "arena"
)

var modeQueues = map[Mode][]int{
	ModeRanked:   queuevalues.RankedQueues,
	ModeUnranked: queuevalues.UnrankedQueues,
	ModeAram:     queuevalues.AramQueues,
	ModeArena:    queuevalues.ArenaQueues,
}

// ParseMode reads a mode, case insensitive. Empty means all.
func ParseMode(value string) (Mode, error) {
	mode := Mode(strings.ToLower(strings.TrimSpace(value)))
	if mode == "" {
		return ModeAll, nil
	}
	if mode == ModeAll {
		return mode, nil
	}
	if _, exists := modeQueues[mode]; !exists {
		return "", fmt.Errorf(messages.InvalidMode, value)
	}
	return mode, nil
}

// DefaultQueue is the queue sent upstream for single queue modes, 0 otherwise.
func (m Mode) DefaultQueue() int {
	switch m {
	case ModeAram:
		return queuevalues.Aram
	case ModeArena:
		return queuevalues.Arena
	default:
		return 0
	}
}

// SummonersRiftOnly reports if the mode is played on the 5v5 map.
func (m Mode) SummonersRiftOnly() bool {
	return m == ModeRanked || m == ModeUnranked
}

// FilterByMode keeps the matches of the mode queues.
func FilterByMode(matches []*matchfetcher.MatchData, mode Mode) []*matchfetcher.MatchData {
	queues, exists := modeQueues[mode]
	if !exists {
		return matches
	}

	filtered := make([]*matchfetcher.MatchData, 0, len(matches))
	for _, match := range matches {
		if slices.Contains(queues, match.Info.QueueId) {
			filtered = append(filtered, match)
		}
	}
	return filtered
}

// OnlySummonersRift keeps the matches played on Summoner's Rift.
func OnlySummonersRift(matches []*matchfetcher.MatchData) []*matchfetcher.MatchData {
	filtered := make([]*matchfetcher.MatchData, 0, len(matches))
	for _, match := range matches {
		if match.Info.MapId == queuevalues.SummonersRift {
			filtered = append(filtered, match)
		}
	}
	return filtered
}

// QueueLabel is the human name of a queue.
func QueueLabel(queueId int) string {
	return queuevalues.Label(queueId)
}
