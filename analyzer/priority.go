package analyzer

import (
	"sort"

	"github.com/hallcrest/commtopo/commgraph"
	"github.com/hallcrest/commtopo/persistence"
)

// rankPriorities builds the outreach ranking. Every member starts at the
// base score and accumulates:
//
//	+30 at isolation risk        +15 follow-up flagged
//	+20 in a fragile group       +5  bridge member
//	+25 last rating ≤ 2          −10 in a stable group
//
// The sort is stable and descending: ties keep roster order, so the
// ranking is deterministic for a fixed roster.
func (a *Analyzer) rankPriorities(
	g *commgraph.Graph,
	isolated, bridges []commgraph.MemberID,
	pers *persistence.Result,
) []PriorityEntry {
	isolatedSet := toSet(isolated)
	bridgeSet := toSet(bridges)
	fragileSet := groupSet(pers.Fragile)
	stableSet := groupSet(pers.Stable)

	entries := make([]PriorityEntry, 0, g.MemberCount())
	for _, m := range g.Members() {
		score := priorityBase

		if _, ok := isolatedSet[m.ID]; ok {
			score += priorityIsolated
		}
		if _, ok := fragileSet[m.ID]; ok {
			score += priorityFragile
		}
		if m.LastRating > 0 && m.LastRating <= lowRatingCeiling {
			score += priorityLowMood
		}
		if m.FollowUpNeeded {
			score += priorityFollowUp
		}
		if _, ok := bridgeSet[m.ID]; ok {
			score += priorityBridge
		}
		if _, ok := stableSet[m.ID]; ok {
			score += priorityStable
		}

		entries = append(entries, PriorityEntry{ID: m.ID, Score: score})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	return entries
}

// toSet indexes ids for membership checks.
func toSet(ids []commgraph.MemberID) map[commgraph.MemberID]struct{} {
	set := make(map[commgraph.MemberID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return set
}

// groupSet flattens member groups into one membership set.
func groupSet(groups [][]commgraph.MemberID) map[commgraph.MemberID]struct{} {
	set := make(map[commgraph.MemberID]struct{})
	for _, group := range groups {
		for _, id := range group {
			set[id] = struct{}{}
		}
	}

	return set
}
