package commgraph

import (
	"sort"
	"strconv"
)

// Graph is the in-memory community graph: one immutable-after-synthesis
// snapshot of members plus the connections derived from their attributes.
//
// Members are kept in insertion order; every traversal and index in this
// package iterates that order, so results are deterministic for a fixed
// roster. The graph is not safe for concurrent mutation; run independent
// analyses on independent Graph instances.
type Graph struct {
	// CommunityID names the unit under analysis, e.g. "Floor_3_East".
	CommunityID string

	opts Options

	members []*Member
	index   map[MemberID]int // member id → position in members

	connections []*Connection

	// adjacency holds neighbor ids from ALL connections, in edge order.
	adjacency map[MemberID][]MemberID
	// strongAdjacency holds neighbors whose edge strength ≥ StrongThreshold.
	strongAdjacency map[MemberID][]MemberID

	// subgroupMembers maps a subgroup label to member ids in roster order.
	subgroupMembers map[string][]MemberID

	// synthesized flips to true once ComputeConnections has run on the
	// current roster; derived queries are meaningless before that.
	synthesized bool
}

// New creates an empty community graph with the given synthesis options.
// A zero Options (or none) means DefaultOptions.
func New(communityID string, opts ...Options) *Graph {
	o := DefaultOptions()
	if len(opts) > 0 {
		o = opts[0]
	}

	return &Graph{
		CommunityID:     communityID,
		opts:            o,
		index:           make(map[MemberID]int),
		adjacency:       make(map[MemberID][]MemberID),
		strongAdjacency: make(map[MemberID][]MemberID),
		subgroupMembers: make(map[string][]MemberID),
	}
}

// AddMember appends m to the roster and indexes its subgroup memberships.
// No deduplication is performed: callers must not add the same identity
// twice. Adding a member invalidates any previously synthesized edges.
func (g *Graph) AddMember(m *Member) {
	g.index[m.ID] = len(g.members)
	g.members = append(g.members, m)
	for _, label := range sortedLabels(m.Subgroups) {
		g.subgroupMembers[label] = append(g.subgroupMembers[label], m.ID)
	}
	g.synthesized = false
}

// Members returns the roster in insertion order. The slice is shared;
// callers must not mutate it.
func (g *Graph) Members() []*Member { return g.members }

// Member returns the member with the given id, or nil when absent.
func (g *Graph) Member(id MemberID) *Member {
	i, ok := g.index[id]
	if !ok {
		return nil
	}

	return g.members[i]
}

// MemberIndex returns the roster position of id and whether it exists.
// Positions are stable and are what the union-find layers index by.
func (g *Graph) MemberIndex(id MemberID) (int, bool) {
	i, ok := g.index[id]

	return i, ok
}

// MemberCount returns |V|.
func (g *Graph) MemberCount() int { return len(g.members) }

// Connections returns the synthesized edge set in creation order.
func (g *Graph) Connections() []*Connection { return g.connections }

// ConnectionCount returns |E|.
func (g *Graph) ConnectionCount() int { return len(g.connections) }

// Neighbors returns the ids adjacent to id over all connections, in edge
// creation order. Unknown ids yield an empty slice.
func (g *Graph) Neighbors(id MemberID) []MemberID { return g.adjacency[id] }

// StrongNeighbors returns the ids adjacent to id over strong connections
// only (strength ≥ StrongThreshold).
func (g *Graph) StrongNeighbors(id MemberID) []MemberID { return g.strongAdjacency[id] }

// Degree returns the number of incident connections, counted over ALL
// connections, not just strong ones.
func (g *Graph) Degree(id MemberID) int { return len(g.adjacency[id]) }

// SubgroupMembers returns the member ids carrying label, in roster order.
func (g *Graph) SubgroupMembers(label string) []MemberID { return g.subgroupMembers[label] }

// HasSubgroup reports whether any member carries label.
func (g *Graph) HasSubgroup(label string) bool {
	_, ok := g.subgroupMembers[label]

	return ok
}

// Subgroups returns all subgroup labels present in the graph, sorted.
func (g *Graph) Subgroups() []string {
	labels := make([]string, 0, len(g.subgroupMembers))
	for label := range g.subgroupMembers {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	return labels
}

// Options returns the synthesis parameters the graph was built with.
func (g *Graph) Options() Options { return g.opts }

// Synthesized reports whether ComputeConnections has run on the current
// roster snapshot.
func (g *Graph) Synthesized() bool { return g.synthesized }

// ComputeConnections discards every existing connection and both adjacency
// indices, then re-derives the full edge set from member attributes.
//
// For every unordered member pair (i<j, roster order) each signal is
// evaluated independently and its contribution summed:
//
//  1. shared courses: 2.0 per common course code;
//  2. availability overlap: min(hours/5, 2.0), only when overlap ≥ 2h;
//  3. shared interests: 1.5 per common interest tag;
//  4. cohabitation: flat 5.0 for an identical room designator;
//  5. physical proximity: flat 1.0 when leading room digits differ by at
//     most ProximityDistance (unparseable designators are non-adjacent);
//  6. shared subgroups: 0.5 per common label.
//
// An edge is created only when the summed strength ≥ MinStrength and at
// least one signal fired; its primary Type is the first signal that fired
// in the order above. Edge ids restart at 0 on every call.
//
// Time: O(V²·s). Memory: O(V + E).
func (g *Graph) ComputeConnections() {
	g.connections = nil
	g.adjacency = make(map[MemberID][]MemberID, len(g.members))
	g.strongAdjacency = make(map[MemberID][]MemberID, len(g.members))

	edgeID := 0
	for i := 0; i < len(g.members); i++ {
		for j := i + 1; j < len(g.members); j++ {
			a, b := g.members[i], g.members[j]

			var (
				strength float64
				types    []ConnectionType
			)

			// 1. Shared courses.
			if n := countSharedStrings(a.Courses, b.Courses); n > 0 {
				strength += float64(n) * weightPerSharedCourse
				types = append(types, SharedCourse)
			}

			// 2. Availability overlap, gated on a 2-hour weekly floor.
			if hours := overlapHours(a.FreeWindows, b.FreeWindows); hours >= overlapHourFloor {
				contribution := float64(hours) / overlapHourScale
				if contribution > overlapCap {
					contribution = overlapCap
				}
				strength += contribution
				types = append(types, AvailabilityOverlap)
			}

			// 3. Shared interests.
			if n := countSharedSet(a.Interests, b.Interests); n > 0 {
				strength += float64(n) * weightPerSharedInterest
				types = append(types, SharedInterest)
			}

			// 4. Cohabitation.
			if a.Room != "" && a.Room == b.Room {
				strength += weightCohabitation
				types = append(types, Cohabitation)
			}

			// 5. Physical proximity by leading room digits.
			if g.roomsAdjacent(a.Room, b.Room) {
				strength += weightProximity
				types = append(types, PhysicalProximity)
			}

			// 6. Shared subgroups. The intersection also becomes the edge's
			//    Touches set regardless of which signals fired.
			shared := intersectSets(a.Subgroups, b.Subgroups)
			if len(shared) > 0 {
				strength += float64(len(shared)) * weightPerSharedSubgroup
				types = append(types, SharedSubgroup)
			}

			if strength < g.opts.MinStrength || len(types) == 0 {
				continue
			}

			c := &Connection{
				ID:       edgeID,
				Source:   a.ID,
				Target:   b.ID,
				Type:     types[0],
				Strength: strength,
				IsBridgeEdge: len(shared) < len(a.Subgroups) ||
					len(shared) < len(b.Subgroups),
				Touches: shared,
			}
			edgeID++
			g.connections = append(g.connections, c)

			g.adjacency[a.ID] = append(g.adjacency[a.ID], b.ID)
			g.adjacency[b.ID] = append(g.adjacency[b.ID], a.ID)
			if strength >= g.opts.StrongThreshold {
				g.strongAdjacency[a.ID] = append(g.strongAdjacency[a.ID], b.ID)
				g.strongAdjacency[b.ID] = append(g.strongAdjacency[b.ID], a.ID)
			}
		}
	}

	g.synthesized = true
}

// AddManualConnection appends an edge the synthesis cannot derive — an
// introduction made by community staff (SubgroupIntroduced) or entered by
// hand (ManuallyIntroduced). The graph must already be synthesized: a
// manual edge added earlier would be silently discarded by the next
// ComputeConnections, so that ordering is rejected instead.
//
// Endpoints are stored in roster order like synthesized edges; Touches and
// IsBridgeEdge follow the same rules.
func (g *Graph) AddManualConnection(source, target MemberID, ctype ConnectionType, strength float64) error {
	if !g.synthesized {
		return ErrNotSynthesized
	}
	if source == target {
		return ErrSelfConnection
	}
	if strength < 0 {
		return ErrNegativeStrength
	}
	si, okS := g.index[source]
	ti, okT := g.index[target]
	if !okS || !okT {
		return ErrMemberNotFound
	}
	// Canonical endpoint order: roster position.
	if si > ti {
		source, target = target, source
	}

	a, b := g.Member(source), g.Member(target)
	shared := intersectSets(a.Subgroups, b.Subgroups)
	c := &Connection{
		ID:       len(g.connections),
		Source:   source,
		Target:   target,
		Type:     ctype,
		Strength: strength,
		IsBridgeEdge: len(shared) < len(a.Subgroups) ||
			len(shared) < len(b.Subgroups),
		Touches: shared,
	}
	g.connections = append(g.connections, c)
	g.adjacency[source] = append(g.adjacency[source], target)
	g.adjacency[target] = append(g.adjacency[target], source)
	if strength >= g.opts.StrongThreshold {
		g.strongAdjacency[source] = append(g.strongAdjacency[source], target)
		g.strongAdjacency[target] = append(g.strongAdjacency[target], source)
	}

	return nil
}

// roomsAdjacent reports whether the leading digits of two room designators
// parse as numbers within ProximityDistance of each other. Designators
// without leading digits are simply non-adjacent, never an error.
func (g *Graph) roomsAdjacent(room1, room2 string) bool {
	n1, ok1 := leadingNumber(room1)
	n2, ok2 := leadingNumber(room2)
	if !ok1 || !ok2 {
		return false
	}
	d := n1 - n2
	if d < 0 {
		d = -d
	}

	return d <= g.opts.ProximityDistance
}

// leadingNumber parses the run of leading decimal digits of s.
func leadingNumber(s string) (int, bool) {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}

	return n, true
}

// countSharedStrings counts pairwise matches between two code lists.
// Duplicated codes count multiple times, matching roster semantics where a
// repeated course code means repeated co-enrollment.
func countSharedStrings(a, b []string) int {
	n := 0
	for _, x := range a {
		for _, y := range b {
			if x == y {
				n++
			}
		}
	}

	return n
}

// countSharedSet counts labels present in both sets.
func countSharedSet(a, b map[string]struct{}) int {
	n := 0
	for x := range a {
		if _, ok := b[x]; ok {
			n++
		}
	}

	return n
}

// intersectSets returns a fresh set holding the labels present in both.
func intersectSets(a, b map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for x := range a {
		if _, ok := b[x]; ok {
			out[x] = struct{}{}
		}
	}

	return out
}

// sortedLabels returns the set's labels in sorted order, for deterministic
// index construction.
func sortedLabels(set map[string]struct{}) []string {
	labels := make([]string, 0, len(set))
	for label := range set {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	return labels
}
