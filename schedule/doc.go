// Package schedule scores candidate meeting times against the community's
// availability and its topology.
//
// What:
//
//   - FindOptimalEventTimes scans every hourly slot across the week,
//     counts members whose free-time windows cover it, discards slots
//     below a minimum attendance, and ranks the rest by attendance
//     coverage plus a topology bonus for isolated and bridge members.
//
// Why:
//
//   - An event only repairs community structure when the structurally
//     important members — the nearly isolated and the connectors — can
//     actually show up.
//
// Errors:
//
//   - ErrNoScores: scheduling requested without boundary scores, meaning
//     edge synthesis and boundary analysis did not run on this snapshot.
//
// Complexity: O(D·H·V·w), w = free windows per member.
package schedule
