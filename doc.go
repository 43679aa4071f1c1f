// Package commtopo computes structural diagnostics over a social graph of
// community members: isolation risk, critical connectors, fragmentation,
// and prioritized outreach.
//
// 🔭 What is commtopo?
//
//	A deterministic, single-process, in-memory analysis engine that treats
//	a community as a graph whose homological invariants reveal sociological
//	structure:
//		• commgraph/      — member & connection model, multi-signal edge synthesis
//		• homology/       — Betti numbers (β0, β1), cycle enumeration, union-find
//		• boundary/       — isolation scores and bridge detection
//		• mayervietoris/  — two-subgroup decomposition, health score, introductions
//		• persistence/    — weakening-connection filtration, stable/fragile groups
//		• schedule/       — topology-aware event time optimization
//		• analyzer/       — the orchestrating pipeline and aggregate result
//
// 💡 Reading the invariants:
//
//   - β0 > 1         — the community is fragmented into islands.
//   - β1 > 0         — friend-group boundaries (structural holes) exist.
//   - high boundary  — a member is drifting toward isolation.
//   - bridge member  — their neighborhood spans several subgroups; losing
//     them can disconnect the graph.
//
// The engine operates on one static roster snapshot per run, holds no
// state between runs, performs no I/O, and introduces no randomness: every
// computed field is bit-identical across repeated runs on the same input.
// Hosts wanting parallelism run independent analyses on independent graph
// instances (see cmd/commtopo for an example host).
package commtopo
