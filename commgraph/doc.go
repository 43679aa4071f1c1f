// Package commgraph models a residential community as an undirected,
// weighted graph of members and synthesized connections.
//
// What:
//
//   - Member is a vertex: identity, room, courses, free-time windows,
//     subgroup labels, interests, and the latest check-in signals.
//   - Connection is an edge: a weighted link derived from several
//     independent signals (shared courses, schedule overlap, shared
//     interests, cohabitation, room proximity, shared subgroups).
//   - Graph holds the member roster, the synthesized edge set, a full and a
//     "strong" adjacency index, and a subgroup→members index.
//   - Subgraph and Intersection build disposable induced subgraphs for
//     subgroup-level analysis.
//
// Why:
//
//   - Every downstream diagnostic (Betti numbers, boundary scores, bridges,
//     persistence, scheduling) consumes this one representation.
//
// Determinism:
//
//   - ComputeConnections rebuilds the entire edge set from scratch in member
//     insertion order; identical rosters always produce identical edges,
//     ids, and adjacency ordering. No randomness, no shared counters.
//
// Complexity:
//
//   - ComputeConnections: O(V²·s), s = per-pair signal cost.
//   - Subgraph/Intersection: O(V + E).
//
// Errors:
//
//   - The package degrades silently on malformed structural data
//     (unparseable room designators are treated as non-adjacent, unknown
//     subgroup labels yield empty subgraphs). See package boundary and
//     friends for the caller-error conditions.
package commgraph
