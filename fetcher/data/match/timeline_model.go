package matchfetcher

// Default match timeline.
type MatchTimeline struct {
	Metadata MatchMetadata     `json:"metadata"`
	Info     MatchTimelineData `json:"info"`
}

// Data of the timeline.
type MatchTimelineData struct {
	FrameInterval int64                       `json:"frameInterval"`
	Frames        []MatchTimelineFrame        `json:"frames"`
	Participants  []MatchTimelineParticipants `json:"participants"`
}

// Frame generated every FrameInterval interval.
// Participant frames are keyed by the slot, "1" to "10".
type MatchTimelineFrame struct {
	Events            []EventFrame                 `json:"events"`
	ParticipantFrames map[string]ParticipantFrames `json:"participantFrames"`
	Timestamp         int64                        `json:"timestamp"`
}

// Frame with the events.
type EventFrame struct {
	AssistingParticipantIds []int  `json:"assistingParticipantIds,omitempty"`
	ItemId                  *int   `json:"itemId,omitempty"`
	KillerId                *int   `json:"killerId,omitempty"`
	ParticipantId           *int   `json:"participantId,omitempty"`
	Timestamp               int64  `json:"timestamp"`
	Type                    string `json:"type"`
	VictimId                *int   `json:"victimId,omitempty"`
}

// Frame for each participant, values are cumulative.
type ParticipantFrames struct {
	CurrentGold         int `json:"currentGold"`
	JungleMinionsKilled int `json:"jungleMinionsKilled"`
	Level               int `json:"level"`
	MinionsKilled       int `json:"minionsKilled"`
	ParticipantId       int `json:"participantId"`
	TotalGold           int `json:"totalGold"`
	XP                  int `json:"xp"`
}

// Each participant with it's respective ID inside the timeline.
type MatchTimelineParticipants struct {
	ParticipantId int    `json:"participantId"`
	Puuid         string `json:"puuid"`
}

// Event types used on the lane phase.
const (
	EventItemPurchased = "ITEM_PURCHASED"
	EventChampionKill  = "CHAMPION_KILL"
)
