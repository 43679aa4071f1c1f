// Package mayervietoris decomposes a community graph along two subgroup
// labels and explains the whole graph's holes in terms of its parts.
//
// What:
//
//   - Decompose extracts the induced subgraphs for subgroups A and B and
//     their intersection A∩B, computes β0/β1 for all three, and derives
//     exact-sequence-style invariants: KernelI0 (intersection components
//     merged once embedded in the union) and CokernelI1 (union cycles not
//     explained by the parts).
//   - HealthScore folds component, hole, and isolation penalties plus a
//     bridge bonus into a 0–100 community score.
//   - SuggestIntroductions proposes greedy first-match member pairings for
//     isolated members and for cycle ("structural hole") repair.
//
// Why:
//
//   - β1(A∪B) says THAT holes exist; the decomposition says WHERE they come
//     from — inside A, inside B, or from the way the two halves are glued
//     along A∩B.
//
// Approximation:
//
//   - KernelI0 and CokernelI1 are documented heuristics, not exact
//     homological kernel/cokernel dimensions. The reported union β1 is
//     always the exact whole-graph value from package homology; the
//     decomposition numbers are diagnostic narrative.
//
// Errors:
//
//   - ErrUnknownSubgroups: neither requested label exists in the graph.
//     A single missing label is fine and yields empty terms.
package mayervietoris
