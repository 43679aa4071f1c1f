package homology

// DisjointSet is a union-find structure over n elements indexed by
// position, with iterative path compression and union by rank. Positions
// map one-to-one onto roster positions (commgraph.Graph.MemberIndex), so
// no recursion over the graph itself is ever needed.
type DisjointSet struct {
	parent []int
	rank   []int
}

// NewDisjointSet returns n singleton sets labeled 0..n-1.
func NewDisjointSet(n int) *DisjointSet {
	d := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Find returns the representative of x's set, compressing the path by
// pointing each visited node at its grandparent.
func (d *DisjointSet) Find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// Union merges the sets containing x and y and reports whether a merge
// happened (false when they already shared a representative).
func (d *DisjointSet) Union(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return false
	}
	// Attach the smaller-rank tree under the larger-rank root.
	if d.rank[rx] < d.rank[ry] {
		rx, ry = ry, rx
	}
	d.parent[ry] = rx
	if d.rank[rx] == d.rank[ry] {
		d.rank[rx]++
	}

	return true
}

// UnionInto merges y's set under x's representative unconditionally by
// representative, ignoring rank. Persistence uses it when the absorbed
// side must be y's component specifically.
func (d *DisjointSet) UnionInto(x, y int) {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return
	}
	d.parent[ry] = rx
}

// Count returns the number of distinct sets.
func (d *DisjointSet) Count() int {
	n := 0
	for i := range d.parent {
		if d.Find(i) == i {
			n++
		}
	}

	return n
}
