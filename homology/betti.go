package homology

import "github.com/hallcrest/commtopo/commgraph"

// BettiNumbers computes (β0, β1) for g, which may be a full community
// graph or any induced subgraph.
//
//   - β0 is the connected component count, from union-find over every
//     connection. Exact and independent of edge order.
//   - β1 is the independent cycle count, from the closed-form identity
//     β1 = |E| − |V| + β0, valid because the graph is a 1-dimensional
//     simplicial complex (vertices and edges only, no higher faces).
//
// An empty graph yields (0, 0).
//
// Time: O(V + E·α(V)). Memory: O(V).
func BettiNumbers(g *commgraph.Graph) (b0, b1 int) {
	v := g.MemberCount()
	if v == 0 {
		return 0, 0
	}

	dsu := NewDisjointSet(v)
	for _, c := range g.Connections() {
		si, okS := g.MemberIndex(c.Source)
		ti, okT := g.MemberIndex(c.Target)
		if !okS || !okT {
			continue // dangling endpoint, degrade silently
		}
		dsu.Union(si, ti)
	}

	b0 = dsu.Count()
	b1 = g.ConnectionCount() - v + b0

	return b0, b1
}

// Betti0 returns the connected component count of g.
func Betti0(g *commgraph.Graph) int {
	b0, _ := BettiNumbers(g)

	return b0
}

// Betti1 returns the independent cycle count of g.
func Betti1(g *commgraph.Graph) int {
	_, b1 := BettiNumbers(g)

	return b1
}

// Components returns the component identifier (representative roster
// position) per member id. Useful for grouping diagnostics by component.
func Components(g *commgraph.Graph) map[commgraph.MemberID]int {
	v := g.MemberCount()
	dsu := NewDisjointSet(v)
	for _, c := range g.Connections() {
		si, okS := g.MemberIndex(c.Source)
		ti, okT := g.MemberIndex(c.Target)
		if !okS || !okT {
			continue
		}
		dsu.Union(si, ti)
	}

	out := make(map[commgraph.MemberID]int, v)
	for i, m := range g.Members() {
		out[m.ID] = dsu.Find(i)
	}

	return out
}
