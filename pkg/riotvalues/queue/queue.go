package queuevalues

// Queue ids used to scope the matches.
const (
	NormalDraft   = 400
	RankedSolo    = 420
	NormalBlind   = 430
	RankedFlex    = 440
	Aram          = 450
	Quickplay     = 490
	Clash         = 700
	Urf           = 900
	Arena         = 1700
	UrfRotating   = 1900
	SummonersRift = 11 // Map id of the 5v5 map.
)

var RankedQueueValue = map[int]string{
	RankedSolo: "RANKED_SOLO_5x5",
	RankedFlex: "RANKED_FLEX_SR",
}

// Queue groups per mode.
var (
	RankedQueues   = []int{RankedSolo, RankedFlex}
	UnrankedQueues = []int{NormalDraft, NormalBlind, Quickplay}
	AramQueues     = []int{Aram}
	ArenaQueues    = []int{Arena}
)

// Label returns a human label for common queues.
func Label(queueId int) string {
	switch queueId {
	case RankedSolo:
		return "Ranked Solo/Duo"
	case RankedFlex:
		return "Ranked Flex"
	case NormalDraft:
		return "Normal Draft"
	case NormalBlind:
		return "Normal Blind"
	case Quickplay:
		return "Quickplay"
	case Aram:
		return "ARAM"
	case Arena:
		return "Arena"
	case Clash:
		return "Clash"
	case Urf, UrfRotating:
		return "URF"
	default:
		return "Other"
	}
}
