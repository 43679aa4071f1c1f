// Package analyzer orchestrates the full diagnostic pipeline and folds
// every stage's output into one prioritized result.
//
// What:
//
//   - Analyze runs, in order: edge synthesis → boundary/bridge detection →
//     whole-graph homology → persistence filtration → event scheduling →
//     introduction suggestions → health score → outreach priority ranking,
//     and returns a single Result per run.
//   - Decompose exposes the two-subgroup Mayer-Vietoris view for a graph
//     the pipeline has already synthesized.
//
// Why:
//
//   - Hosts hand over a roster and get back everything actionable at once:
//     who to check on first, who holds the community together, where the
//     holes are, who to introduce, and when to hold the event.
//
// Determinism:
//
//   - Two runs over an unchanged roster produce identical computed fields;
//     only the RunID differs (it is request metadata, not analysis output).
//
// Logging:
//
//   - Silent by default (zap.NewNop). Pass WithLogger to observe per-stage
//     progress; log output never feeds back into any computation.
package analyzer
