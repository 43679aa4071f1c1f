package persistence

import (
	"sort"

	"github.com/hallcrest/commtopo/commgraph"
	"github.com/hallcrest/commtopo/homology"
)

// Barcode is one dimension-0 persistence feature: the lifetime of a
// component that was absorbed into a larger one during the filtration.
type Barcode struct {
	// Dimension is 0 for component-merge events, the only kind this
	// filtration records.
	Dimension int

	// Birth and Death are filtration values (maximum observed strength
	// minus the strength at the event). Death is the merge point.
	Birth float64
	Death float64

	// Members lists the absorbed component's member ids, roster order.
	Members []commgraph.MemberID
}

// Persistence returns the barcode's lifetime, Death − Birth.
func (b Barcode) Persistence() float64 { return b.Death - b.Birth }

// Options tunes the stable/fragile classification.
type Options struct {
	// BucketFraction scales the maximum observed strength into the
	// classification threshold. Stable requires persistence > 2×threshold;
	// fragile requires persistence < 0.5×threshold.
	BucketFraction float64
}

// DefaultOptions returns BucketFraction=0.3.
func DefaultOptions() Options {
	return Options{BucketFraction: 0.3}
}

// Result aggregates the filtration outcome.
type Result struct {
	Barcodes []Barcode

	// Stable lists long-lived groups, Fragile short-lived ones.
	Stable  [][]commgraph.MemberID
	Fragile [][]commgraph.MemberID

	// Emerging is carried for hosts that track rosters over time; a single
	// strength filtration records no emergence events, so it stays empty.
	Emerging [][]commgraph.MemberID
}

// Run replays g's connections from strongest to weakest through a
// union-find, recording a barcode for every multi-member component that
// gets absorbed along the way, then classifies the groups.
//
// Steps:
//  1. Stable-sort connections by strength descending (ties keep original
//     edge order, so the outcome is deterministic).
//  2. For each edge joining two distinct components, the target's component
//     dies at filtration value maxStrength − strength. Its birth is the
//     earliest value recorded for its root, 0 when none was.
//  3. Only absorbed components with more than one member produce barcodes.
//  4. Classify: persistence > 2×(BucketFraction×maxStrength) is stable,
//     persistence < 0.5×that threshold is fragile.
//
// An edgeless or empty graph yields an empty Result.
func Run(g *commgraph.Graph, opts ...Options) *Result {
	o := DefaultOptions()
	if len(opts) > 0 {
		o = opts[0]
	}

	r := &Result{}
	v := g.MemberCount()
	if v == 0 || g.ConnectionCount() == 0 {
		return r
	}

	// 1. Strongest connections enter the filtration first.
	sorted := make([]*commgraph.Connection, len(g.Connections()))
	copy(sorted, g.Connections())
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Strength > sorted[j].Strength
	})
	maxStrength := sorted[0].Strength

	dsu := homology.NewDisjointSet(v)
	birth := make([]float64, v) // per-root birth value, 0 until recorded

	for _, c := range sorted {
		si, okS := g.MemberIndex(c.Source)
		ti, okT := g.MemberIndex(c.Target)
		if !okS || !okT {
			continue
		}
		rootS, rootT := dsu.Find(si), dsu.Find(ti)
		if rootS == rootT {
			continue
		}

		// 2. The target's component is absorbed and dies here.
		death := maxStrength - c.Strength
		b := Barcode{
			Dimension: 0,
			Birth:     birth[rootT],
			Death:     death,
		}
		for i, m := range g.Members() {
			if dsu.Find(i) == rootT {
				b.Members = append(b.Members, m.ID)
			}
		}
		if len(b.Members) > 1 {
			r.Barcodes = append(r.Barcodes, b)
		}

		dsu.UnionInto(rootS, rootT)
	}

	// 4. Classification by persistence against the bucket threshold.
	threshold := maxStrength * o.BucketFraction
	for _, b := range r.Barcodes {
		switch {
		case b.Persistence() > threshold*2:
			r.Stable = append(r.Stable, b.Members)
		case b.Persistence() < threshold*0.5:
			r.Fragile = append(r.Fragile, b.Members)
		}
	}

	return r
}
