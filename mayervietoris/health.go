package mayervietoris

import (
	"github.com/hallcrest/commtopo/boundary"
	"github.com/hallcrest/commtopo/commgraph"
)

// companionBoundaryLimit excludes would-be companions who are themselves
// close to the boundary: introducing two near-isolated members helps
// neither of them.
const companionBoundaryLimit = 0.5

// HealthScore folds whole-graph structure into a 0–100 community score:
//
//	100 − 15·(β0−1) − 5·max(0, β1−2) − 3·isolated + 2·bridges
//
// clamped to [0, 100]. One component is ideal; up to two cycles are free
// allowance (friend groups are structure, not damage); every member at
// isolation risk costs points; every bridge member earns some back.
func HealthScore(b0, b1, isolatedCount, bridgeCount int) float64 {
	score := 100.0
	score -= float64(b0-1) * componentPenalty
	if extra := b1 - holeAllowance; extra > 0 {
		score -= float64(extra) * holePenalty
	}
	score -= float64(isolatedCount) * isolationPenalty
	score += float64(bridgeCount) * bridgeBonus

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return score
}

// SuggestIntroductions proposes member pairings in two greedy passes:
//
//  1. For each isolated member, the first non-isolated member (boundary
//     score ≤ 0.5) sharing a course or an interest becomes its companion.
//  2. For each enumerated cycle of size ≥ 3, the first outside member who
//     shares a course with at least two cycle members is paired with one
//     of those cycle members, patching the hole.
//
// Both searches are first-match over roster order: deterministic, not
// globally optimal.
func SuggestIntroductions(
	g *commgraph.Graph,
	scores *boundary.Scores,
	cycles [][]commgraph.MemberID,
	isolated []commgraph.MemberID,
) []Introduction {
	var intros []Introduction

	// Pass 1: connect isolated members to well-connected peers.
	for _, isoID := range isolated {
		iso := g.Member(isoID)
		if iso == nil {
			continue
		}
		for _, candidate := range g.Members() {
			if candidate.ID == isoID {
				continue
			}
			if scores.Boundary[candidate.ID] > companionBoundaryLimit {
				continue // also near the boundary
			}
			if sharesCourse(iso, candidate) || sharesInterest(iso, candidate) {
				intros = append(intros, Introduction{A: isoID, B: candidate.ID})
				break // one introduction per isolated member
			}
		}
	}

	// Pass 2: patch structural holes.
	for _, cycle := range cycles {
		if len(cycle) < 3 {
			continue
		}
		inCycle := make(map[commgraph.MemberID]struct{}, len(cycle))
		for _, id := range cycle {
			inCycle[id] = struct{}{}
		}

		for _, outsider := range g.Members() {
			if _, ok := inCycle[outsider.ID]; ok {
				continue
			}
			matches := 0
			var connectTo commgraph.MemberID
			for _, cycleID := range cycle {
				if sharesCourse(outsider, g.Member(cycleID)) {
					matches++
					connectTo = cycleID
				}
			}
			if matches >= 2 {
				intros = append(intros, Introduction{A: outsider.ID, B: connectTo})
				break // one patch per hole
			}
		}
	}

	return intros
}

// sharesCourse reports whether a and b have any course code in common.
func sharesCourse(a, b *commgraph.Member) bool {
	for _, ca := range a.Courses {
		for _, cb := range b.Courses {
			if ca == cb {
				return true
			}
		}
	}

	return false
}

// sharesInterest reports whether a and b flagged any common interest.
func sharesInterest(a, b *commgraph.Member) bool {
	for tag := range a.Interests {
		if _, ok := b.Interests[tag]; ok {
			return true
		}
	}

	return false
}
