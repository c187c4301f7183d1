package timelineservice

import (
	"slices"
	"strconv"

	"leaguestats/api/dto"
	matchfetcher "leaguestats/fetcher/data/match"
	itemvalues "leaguestats/pkg/riotvalues/items"
)

// Lane phase checkpoints, in seconds.
const (
	tenMinutes     = 600
	fifteenMinutes = 900
)

// Snapshot of a field, taken only once.
type capture struct {
	value int
	done  bool
}

func (c *capture) take(value int) {
	if !c.done {
		c.value = value
		c.done = true
	}
}

// ComputeLanePhase extracts the early game splits of the player.
// The opponent is the player on the same slot of the other team, not a role matched one.
// A player not on the timeline gets a zero result.
func ComputeLanePhase(timeline *matchfetcher.MatchTimeline, puuid string) dto.LanePhase {
	var lanePhase dto.LanePhase
	if timeline == nil {
		return lanePhase
	}

	slot := participantSlot(timeline, puuid)
	if slot == 0 {
		return lanePhase
	}
	opponent := slot + 5
	if slot > 5 {
		opponent = slot - 5
	}
	slotKey, opponentKey := strconv.Itoa(slot), strconv.Itoa(opponent)

	var cs10, cs15 capture
	var gold10, gold15, xp10, xp15 capture

	for _, frame := range timeline.Info.Frames {
		second := int(frame.Timestamp / 1000)

		if lanePhase.MythicAt == nil && notablePurchase(frame.Events, slot) {
			lanePhase.MythicAt = &second
		}

		me, exists := frame.ParticipantFrames[slotKey]
		if !exists {
			continue
		}

		creepScore := me.MinionsKilled + me.JungleMinionsKilled
		if second >= tenMinutes {
			cs10.take(creepScore)
		}
		if second >= fifteenMinutes {
			cs15.take(creepScore)
		}

		// Diffs need both sides on the same frame.
		op, exists := frame.ParticipantFrames[opponentKey]
		if !exists {
			continue
		}
		if second >= tenMinutes {
			gold10.take(me.TotalGold - op.TotalGold)
			xp10.take(me.XP - op.XP)
		}
		if second >= fifteenMinutes {
			gold15.take(me.TotalGold - op.TotalGold)
			xp15.take(me.XP - op.XP)
		}
	}

	lanePhase.Cs10 = cs10.value
	lanePhase.Cs15 = cs15.value
	lanePhase.GoldDiff10 = gold10.value
	lanePhase.GoldDiff15 = gold15.value
	lanePhase.XpDiff10 = xp10.value
	lanePhase.XpDiff15 = xp15.value
	lanePhase.FirstBloodInvolved = killInvolvement(timeline.Info.Frames, slot)

	return lanePhase
}

// participantSlot is the 1 based slot of the player, 0 when absent.
func participantSlot(timeline *matchfetcher.MatchTimeline, puuid string) int {
	if idx := slices.Index(timeline.Metadata.Participants, puuid); idx >= 0 {
		return idx + 1
	}
	for _, participant := range timeline.Info.Participants {
		if participant.Puuid == puuid {
			return participant.ParticipantId
		}
	}
	return 0
}

func notablePurchase(events []matchfetcher.EventFrame, slot int) bool {
	for _, event := range events {
		if event.Type != matchfetcher.EventItemPurchased {
			continue
		}
		if event.ParticipantId == nil || *event.ParticipantId != slot || event.ItemId == nil {
			continue
		}
		if itemvalues.IsNotable(*event.ItemId) {
			return true
		}
	}
	return false
}

// killInvolvement flags any kill where the player is killer, victim or assister.
// It is a coarse early combat signal, the game first blood is not verified.
func killInvolvement(frames []matchfetcher.MatchTimelineFrame, slot int) bool {
	for _, frame := range frames {
		for _, event := range frame.Events {
			if event.Type != matchfetcher.EventChampionKill {
				continue
			}
			if event.KillerId != nil && *event.KillerId == slot {
				return true
			}
			if event.VictimId != nil && *event.VictimId == slot {
				return true
			}
			if slices.Contains(event.AssistingParticipantIds, slot) {
				return true
			}
		}
	}
	return false
}
