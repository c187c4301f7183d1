package timelineservice

import (
	"strconv"
	"testing"

	matchfetcher "leaguestats/fetcher/data/match"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

// Ten players, p1 to p10, on the metadata order.
func players() []string {
	puuids := make([]string, 10)
	for i := range puuids {
		puuids[i] = "p" + strconv.Itoa(i+1)
	}
	return puuids
}

// Frame with a fixed value per slot, scaled by the minute.
func frame(second int64, slots map[int]matchfetcher.ParticipantFrames, events ...matchfetcher.EventFrame) matchfetcher.MatchTimelineFrame {
	participantFrames := make(map[string]matchfetcher.ParticipantFrames, len(slots))
	for slot, values := range slots {
		participantFrames[strconv.Itoa(slot)] = values
	}
	return matchfetcher.MatchTimelineFrame{
		Timestamp:         second * 1000,
		ParticipantFrames: participantFrames,
		Events:            events,
	}
}

func stats(minions, jungle, gold, xp int) matchfetcher.ParticipantFrames {
	return matchfetcher.ParticipantFrames{MinionsKilled: minions, JungleMinionsKilled: jungle, TotalGold: gold, XP: xp}
}

func TestComputeLanePhase(t *testing.T) {
	t.Run("captures the ten and fifteen minute splits", func(t *testing.T) {
		timeline := &matchfetcher.MatchTimeline{
			Metadata: matchfetcher.MatchMetadata{Participants: players()},
			Info: matchfetcher.MatchTimelineData{Frames: []matchfetcher.MatchTimelineFrame{
				frame(0, map[int]matchfetcher.ParticipantFrames{2: stats(0, 0, 500, 0), 7: stats(0, 0, 500, 0)}),
				frame(540, map[int]matchfetcher.ParticipantFrames{2: stats(70, 2, 3000, 3500), 7: stats(60, 0, 2800, 3400)}),
				frame(600, map[int]matchfetcher.ParticipantFrames{2: stats(80, 4, 3500, 4000), 7: stats(70, 0, 3200, 3800)}),
				frame(660, map[int]matchfetcher.ParticipantFrames{2: stats(90, 4, 4000, 4500), 7: stats(75, 0, 3300, 4000)}),
				frame(900, map[int]matchfetcher.ParticipantFrames{2: stats(120, 6, 5500, 6500), 7: stats(110, 0, 5800, 6600)}),
				frame(960, map[int]matchfetcher.ParticipantFrames{2: stats(130, 6, 6000, 7000), 7: stats(115, 0, 6000, 7000)}),
			}},
		}

		lanePhase := ComputeLanePhase(timeline, "p2")

		assert.Equal(t, 84, lanePhase.Cs10)
		assert.Equal(t, 126, lanePhase.Cs15)
		assert.Equal(t, 300, lanePhase.GoldDiff10)
		assert.Equal(t, -300, lanePhase.GoldDiff15)
		assert.Equal(t, 200, lanePhase.XpDiff10)
		assert.Equal(t, -100, lanePhase.XpDiff15)
		assert.Nil(t, lanePhase.MythicAt)
		assert.False(t, lanePhase.FirstBloodInvolved)
	})

	t.Run("timestamps are truncated to seconds", func(t *testing.T) {
		timeline := &matchfetcher.MatchTimeline{
			Metadata: matchfetcher.MatchMetadata{Participants: players()},
			Info: matchfetcher.MatchTimelineData{Frames: []matchfetcher.MatchTimelineFrame{
				{Timestamp: 599_999, ParticipantFrames: map[string]matchfetcher.ParticipantFrames{"1": stats(50, 0, 0, 0)}},
				{Timestamp: 600_400, ParticipantFrames: map[string]matchfetcher.ParticipantFrames{"1": stats(60, 0, 0, 0)}},
			}},
		}

		assert.Equal(t, 60, ComputeLanePhase(timeline, "p1").Cs10)
	})

	t.Run("diffs wait for a frame with the opponent", func(t *testing.T) {
		timeline := &matchfetcher.MatchTimeline{
			Metadata: matchfetcher.MatchMetadata{Participants: players()},
			Info: matchfetcher.MatchTimelineData{Frames: []matchfetcher.MatchTimelineFrame{
				frame(600, map[int]matchfetcher.ParticipantFrames{8: stats(60, 0, 3000, 4000)}),
				frame(660, map[int]matchfetcher.ParticipantFrames{8: stats(70, 0, 3600, 4300), 3: stats(65, 0, 3400, 4500)}),
			}},
		}

		lanePhase := ComputeLanePhase(timeline, "p8")

		// Creep score comes from the first frame, the diffs from the second one.
		assert.Equal(t, 60, lanePhase.Cs10)
		assert.Equal(t, 200, lanePhase.GoldDiff10)
		assert.Equal(t, -200, lanePhase.XpDiff10)
		assert.Zero(t, lanePhase.Cs15)
	})

	t.Run("a zero value is never overwritten", func(t *testing.T) {
		timeline := &matchfetcher.MatchTimeline{
			Metadata: matchfetcher.MatchMetadata{Participants: players()},
			Info: matchfetcher.MatchTimelineData{Frames: []matchfetcher.MatchTimelineFrame{
				frame(600, map[int]matchfetcher.ParticipantFrames{5: stats(0, 0, 1000, 1000), 10: stats(0, 0, 1000, 1000)}),
				frame(660, map[int]matchfetcher.ParticipantFrames{5: stats(3, 0, 1500, 1500), 10: stats(0, 0, 1000, 1000)}),
			}},
		}

		lanePhase := ComputeLanePhase(timeline, "p5")

		assert.Zero(t, lanePhase.Cs10)
		assert.Zero(t, lanePhase.GoldDiff10)
		assert.Zero(t, lanePhase.XpDiff10)
	})

	t.Run("first notable purchase and kill involvement", func(t *testing.T) {
		timeline := &matchfetcher.MatchTimeline{
			Metadata: matchfetcher.MatchMetadata{Participants: players()},
			Info: matchfetcher.MatchTimelineData{Frames: []matchfetcher.MatchTimelineFrame{
				frame(60, map[int]matchfetcher.ParticipantFrames{4: stats(0, 0, 0, 0)},
					matchfetcher.EventFrame{Type: matchfetcher.EventItemPurchased, ParticipantId: intPtr(4), ItemId: intPtr(1055)},
					matchfetcher.EventFrame{Type: matchfetcher.EventChampionKill, KillerId: intPtr(1), VictimId: intPtr(6)},
				),
				frame(420, map[int]matchfetcher.ParticipantFrames{4: stats(0, 0, 0, 0)},
					matchfetcher.EventFrame{Type: matchfetcher.EventChampionKill, KillerId: intPtr(9), VictimId: intPtr(2), AssistingParticipantIds: []int{4, 8}},
					matchfetcher.EventFrame{Type: matchfetcher.EventItemPurchased, ParticipantId: intPtr(3), ItemId: intPtr(3078)},
				),
				frame(1140, map[int]matchfetcher.ParticipantFrames{4: stats(0, 0, 0, 0)},
					matchfetcher.EventFrame{Type: matchfetcher.EventItemPurchased, ParticipantId: intPtr(4), ItemId: intPtr(3078)},
				),
				frame(1500, map[int]matchfetcher.ParticipantFrames{4: stats(0, 0, 0, 0)},
					matchfetcher.EventFrame{Type: matchfetcher.EventItemPurchased, ParticipantId: intPtr(4), ItemId: intPtr(3089)},
				),
			}},
		}

		lanePhase := ComputeLanePhase(timeline, "p4")

		require.NotNil(t, lanePhase.MythicAt)
		assert.Equal(t, 1140, *lanePhase.MythicAt)
		assert.True(t, lanePhase.FirstBloodInvolved)
	})

	t.Run("slot falls back to the info participants", func(t *testing.T) {
		timeline := &matchfetcher.MatchTimeline{
			Info: matchfetcher.MatchTimelineData{
				Participants: []matchfetcher.MatchTimelineParticipants{{ParticipantId: 6, Puuid: "late"}},
				Frames: []matchfetcher.MatchTimelineFrame{
					frame(600, map[int]matchfetcher.ParticipantFrames{6: stats(40, 40, 3000, 3000), 1: stats(80, 0, 2500, 3100)}),
				},
			},
		}

		lanePhase := ComputeLanePhase(timeline, "late")

		assert.Equal(t, 80, lanePhase.Cs10)
		assert.Equal(t, 500, lanePhase.GoldDiff10)
		assert.Equal(t, -100, lanePhase.XpDiff10)
	})

	t.Run("unknown player gets a zero result", func(t *testing.T) {
		timeline := &matchfetcher.MatchTimeline{
			Metadata: matchfetcher.MatchMetadata{Participants: players()},
			Info: matchfetcher.MatchTimelineData{Frames: []matchfetcher.MatchTimelineFrame{
				frame(600, map[int]matchfetcher.ParticipantFrames{1: stats(80, 0, 3000, 3000)},
					matchfetcher.EventFrame{Type: matchfetcher.EventChampionKill, KillerId: intPtr(1)},
				),
			}},
		}

		lanePhase := ComputeLanePhase(timeline, "stranger")
		assert.Zero(t, lanePhase.Cs10)
		assert.Nil(t, lanePhase.MythicAt)
		assert.False(t, lanePhase.FirstBloodInvolved)

		assert.Zero(t, ComputeLanePhase(nil, "p1").Cs10)
	})
}
