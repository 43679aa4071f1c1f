// Package homology computes the graph-level homological invariants the
// rest of the engine is built on.
//
// What:
//
//   - BettiNumbers: β0 (connected components) via union-find and β1
//     (independent cycles) via the 1-complex identity β1 = |E| − |V| + β0.
//   - FindCycles: concrete cycle enumeration by DFS back-edge detection,
//     one cycle per back-edge. This reports where the holes are; it is not
//     a minimal cycle basis.
//   - DisjointSet: a slice-backed union-find with iterative path
//     compression and union by rank, shared with package persistence.
//
// Why:
//
//   - β0 > 1 means the community is fragmented; β1 > 0 means friend-group
//     boundaries (structural holes) exist. Both are exact for graphs,
//     because a community graph is a 1-dimensional simplicial complex with
//     no higher faces.
//
// Complexity:
//
//   - BettiNumbers: O(V + E·α(V)).
//   - FindCycles:   O(V + E + C·L), C cycles of average length L.
//
// Determinism:
//
//   - All traversals follow roster and edge-creation order; identical
//     graphs yield identical component counts and cycle lists.
package homology
