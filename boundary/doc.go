// Package boundary derives per-member isolation and connector annotations
// from a synthesized community graph.
//
// What:
//
//   - Compute builds a Scores value: degree centrality, the inverse-degree
//     boundary score (higher = closer to the community's edge), and the
//     bridge flag for members whose immediate neighborhood spans two or
//     more subgroups.
//   - Scores.AtRisk lists members whose boundary score meets a threshold.
//
// Why:
//
//   - Boundary members are at isolation risk and get checked first; bridge
//     members hold the community together and need supporting, not fixing.
//
// Design:
//
//   - Derived values live in Scores, never inside commgraph.Member: the raw
//     graph stays immutable-after-synthesis and a Scores value can never be
//     half-recomputed.
//
// Errors:
//
//   - ErrNotSynthesized: Compute was called before ComputeConnections ran
//     on the current roster, so every degree would read as zero.
//
// Complexity: O(V·d), d = average neighborhood size.
package boundary
