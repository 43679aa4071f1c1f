package commgraph

// This file builds disposable induced subgraphs for subgroup-level
// analysis. A derived graph is never mutated in place and is owned solely
// by the computation that requested it; member records are shared with the
// parent graph, connections are re-filtered and re-indexed locally.

// Subgraph returns the subgraph induced by one subgroup label: the members
// carrying the label plus only the connections with both endpoints inside
// that set. An unknown label yields an empty graph, not an error.
//
// Time: O(V + E). Memory: O(V + E) for the derived indices.
func (g *Graph) Subgraph(label string) *Graph {
	keep := make(map[MemberID]struct{}, len(g.subgroupMembers[label]))
	for _, id := range g.subgroupMembers[label] {
		keep[id] = struct{}{}
	}

	return g.induced(label, keep)
}

// Intersection returns the subgraph induced by the members belonging to
// BOTH labels, with only the connections internal to that set. This is the
// A∩B term of a Mayer-Vietoris decomposition.
func (g *Graph) Intersection(labelA, labelB string) *Graph {
	keep := make(map[MemberID]struct{})
	for _, id := range g.subgroupMembers[labelA] {
		if g.Member(id).InSubgroup(labelB) {
			keep[id] = struct{}{}
		}
	}

	return g.induced(labelA+"∩"+labelB, keep)
}

// induced copies the members in keep (roster order preserved) and the
// connections whose endpoints both survive, assigning fresh local edge ids.
func (g *Graph) induced(communityID string, keep map[MemberID]struct{}) *Graph {
	sub := New(g.CommunityID+"/"+communityID, g.opts)
	for _, m := range g.members {
		if _, ok := keep[m.ID]; ok {
			sub.AddMember(m)
		}
	}

	edgeID := 0
	for _, c := range g.connections {
		_, hasSrc := keep[c.Source]
		_, hasDst := keep[c.Target]
		if !hasSrc || !hasDst {
			continue
		}
		cc := *c
		cc.ID = edgeID
		edgeID++
		sub.connections = append(sub.connections, &cc)
		sub.adjacency[cc.Source] = append(sub.adjacency[cc.Source], cc.Target)
		sub.adjacency[cc.Target] = append(sub.adjacency[cc.Target], cc.Source)
		if cc.Strength >= g.opts.StrongThreshold {
			sub.strongAdjacency[cc.Source] = append(sub.strongAdjacency[cc.Source], cc.Target)
			sub.strongAdjacency[cc.Target] = append(sub.strongAdjacency[cc.Target], cc.Source)
		}
	}
	// The derived edge set is final: it mirrors the parent's synthesis.
	sub.synthesized = g.synthesized

	return sub
}

// InterfaceSummary describes the seam between two subgroups: the members
// belonging to both, and the edges crossing from one side to the other.
type InterfaceSummary struct {
	SubgroupA string
	SubgroupB string

	// SharedMembers lists the members in both subgroups, roster order.
	SharedMembers []MemberID

	// CrossingCount counts connections with one endpoint only in A and the
	// other only in B.
	CrossingCount int

	// CrossingStrength sums the strength of those crossing connections.
	CrossingStrength float64
}

// Interface summarizes the A-B seam used to judge how load-bearing the
// shared membership is. Members in both subgroups are listed; an edge
// counts as crossing when its endpoints sit strictly on opposite sides.
func (g *Graph) Interface(labelA, labelB string) InterfaceSummary {
	s := InterfaceSummary{SubgroupA: labelA, SubgroupB: labelB}

	for _, m := range g.members {
		if m.InSubgroup(labelA) && m.InSubgroup(labelB) {
			s.SharedMembers = append(s.SharedMembers, m.ID)
		}
	}

	for _, c := range g.connections {
		src, dst := g.Member(c.Source), g.Member(c.Target)
		srcAOnly := src.InSubgroup(labelA) && !src.InSubgroup(labelB)
		srcBOnly := src.InSubgroup(labelB) && !src.InSubgroup(labelA)
		dstAOnly := dst.InSubgroup(labelA) && !dst.InSubgroup(labelB)
		dstBOnly := dst.InSubgroup(labelB) && !dst.InSubgroup(labelA)
		if (srcAOnly && dstBOnly) || (srcBOnly && dstAOnly) {
			s.CrossingCount++
			s.CrossingStrength += c.Strength
		}
	}

	return s
}
