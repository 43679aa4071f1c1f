// Package persistence classifies subgroups as stable or fragile by
// watching connected components survive a weakening-connection filtration.
//
// What:
//
//   - Run sorts connections by descending strength and replays them through
//     union-find. Every time two components merge, the absorbed component's
//     lifetime is recorded as a Barcode over the filtration parameter
//     (maximum observed strength − current edge strength).
//   - Barcodes whose persistence exceeds twice the bucket threshold mark
//     stable groups; barcodes under half the threshold mark fragile ones.
//
// Why:
//
//   - A group that only holds together through weak connections dissolves
//     early in the filtration: those members need proactive attention
//     before the graph actually fragments.
//
// Scope:
//
//   - This is a single-linkage-clustering-style filtration over connection
//     strength, not full simplicial persistent homology: only dimension-0
//     merge events are tracked, cycles are not followed across the
//     filtration.
//
// Determinism:
//
//   - The sort is stable; equal strengths keep original edge order, so
//     identical graphs always produce identical barcodes.
//
// Complexity: O(E log E + E·α(V) + B·V), B = recorded barcodes.
package persistence
