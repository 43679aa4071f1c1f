package boundary

import (
	"errors"

	"github.com/hallcrest/commtopo/commgraph"
)

// ErrNotSynthesized indicates Compute ran before the graph's connections
// were synthesized; derived scores would be meaningless zeros.
var ErrNotSynthesized = errors.New("boundary: graph connections not synthesized")

// DefaultIsolationThreshold is the boundary score at which a member is
// considered at isolation risk.
const DefaultIsolationThreshold = 0.7

// Scores carries the derived per-member annotations for one graph
// snapshot. It is built by a pure transformation and never written back
// into the graph.
type Scores struct {
	// Centrality is degree normalized by the maximum degree observed.
	Centrality map[commgraph.MemberID]float64

	// Boundary is 1 − Centrality: isolated members approach 1.0, the
	// best-connected member scores 0.0.
	Boundary map[commgraph.MemberID]float64

	// bridge flags members whose neighborhood spans ≥ 2 subgroups.
	bridge map[commgraph.MemberID]bool

	// order preserves roster order for deterministic listings.
	order []commgraph.MemberID
}

// Compute derives centrality, boundary scores, and bridge flags for every
// member of g. Degree counts ALL connections, not just strong ones.
//
// Bridge rule: a member in fewer than two subgroups can never be a bridge;
// otherwise the member is a bridge iff the union of its direct neighbors'
// subgroup labels has size ≥ 2, regardless of the member's own count.
func Compute(g *commgraph.Graph) (*Scores, error) {
	if !g.Synthesized() {
		return nil, ErrNotSynthesized
	}

	s := &Scores{
		Centrality: make(map[commgraph.MemberID]float64, g.MemberCount()),
		Boundary:   make(map[commgraph.MemberID]float64, g.MemberCount()),
		bridge:     make(map[commgraph.MemberID]bool, g.MemberCount()),
		order:      make([]commgraph.MemberID, 0, g.MemberCount()),
	}

	// Normalize degrees by the maximum observed.
	maxDegree := 0
	for _, m := range g.Members() {
		if d := g.Degree(m.ID); d > maxDegree {
			maxDegree = d
		}
	}

	for _, m := range g.Members() {
		s.order = append(s.order, m.ID)

		centrality := 0.0
		if maxDegree > 0 {
			centrality = float64(g.Degree(m.ID)) / float64(maxDegree)
		}
		s.Centrality[m.ID] = centrality
		s.Boundary[m.ID] = 1.0 - centrality

		if len(m.Subgroups) < 2 {
			continue // never a bridge
		}
		// Union of subgroup labels across the direct neighborhood.
		neighborSubs := make(map[string]struct{})
		for _, nid := range g.Neighbors(m.ID) {
			for label := range g.Member(nid).Subgroups {
				neighborSubs[label] = struct{}{}
			}
		}
		s.bridge[m.ID] = len(neighborSubs) >= 2
	}

	return s, nil
}

// AtRisk returns the members whose boundary score meets or exceeds
// threshold, in roster order.
func (s *Scores) AtRisk(threshold float64) []commgraph.MemberID {
	var out []commgraph.MemberID
	for _, id := range s.order {
		if s.Boundary[id] >= threshold {
			out = append(out, id)
		}
	}

	return out
}

// IsBridge reports whether id was flagged as a structural connector.
func (s *Scores) IsBridge(id commgraph.MemberID) bool { return s.bridge[id] }

// Bridges returns the flagged connectors in roster order.
func (s *Scores) Bridges() []commgraph.MemberID {
	var out []commgraph.MemberID
	for _, id := range s.order {
		if s.bridge[id] {
			out = append(out, id)
		}
	}

	return out
}
