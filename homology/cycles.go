package homology

import "github.com/hallcrest/commtopo/commgraph"

// FindCycles enumerates concrete cycles of g: the member groups whose
// mutual connections close a loop ("structural holes" downstream).
//
// The traversal is a depth-first search from every unvisited member in
// roster order, tracking parent and depth. Whenever an edge reaches an
// already-visited neighbor at a strictly smaller depth, that back-edge
// closes a cycle, reconstructed by walking parent pointers from the
// current member back to the ancestor. One cycle is reported per
// back-edge; the result is a generator set for reporting, not a minimal
// cycle basis.
//
// Each cycle is listed deepest-first and ends with the ancestor the
// back-edge reached. Deterministic for a fixed roster and edge order.
//
// Time: O(V + E + C·L). Memory: O(V).
func FindCycles(g *commgraph.Graph) [][]commgraph.MemberID {
	var cycles [][]commgraph.MemberID

	visited := make(map[commgraph.MemberID]bool, g.MemberCount())
	parent := make(map[commgraph.MemberID]commgraph.MemberID, g.MemberCount())
	depth := make(map[commgraph.MemberID]int, g.MemberCount())

	const noParent = commgraph.MemberID("")

	var visit func(v, p commgraph.MemberID, d int)
	visit = func(v, p commgraph.MemberID, d int) {
		visited[v] = true
		parent[v] = p
		depth[v] = d

		for _, u := range g.Neighbors(v) {
			if u == p {
				continue // the tree edge we arrived by
			}
			if visited[u] {
				// Back-edge to a strictly shallower ancestor closes a cycle.
				if depth[u] < depth[v] {
					var cycle []commgraph.MemberID
					for curr := v; curr != u; curr = parent[curr] {
						cycle = append(cycle, curr)
					}
					cycle = append(cycle, u)
					cycles = append(cycles, cycle)
				}
				continue
			}
			visit(u, v, d+1)
		}
	}

	for _, m := range g.Members() {
		if !visited[m.ID] {
			visit(m.ID, noParent, 0)
		}
	}

	return cycles
}
