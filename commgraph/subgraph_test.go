package commgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hallcrest/commtopo/commgraph"
)

// seamGraph builds the fixture used by every subgraph test:
//
//	a ∈ X           courses M101, interest chess
//	b ∈ X∩Y         courses M101, M102
//	c ∈ Y           courses M102, interest chess
//	d ∈ (no group)  courses M101, M102
func seamGraph(t *testing.T) *commgraph.Graph {
	t.Helper()

	g := commgraph.New("unit")
	g.AddMember(withInterests(withCourses(withSubgroups(mem("a"), "X"), "M101"), "chess"))
	g.AddMember(withCourses(withSubgroups(mem("b"), "X", "Y"), "M101", "M102"))
	g.AddMember(withInterests(withCourses(withSubgroups(mem("c"), "Y"), "M102"), "chess"))
	g.AddMember(withCourses(mem("d"), "M101", "M102"))
	g.ComputeConnections()

	// a-b, a-c, a-d, b-c, b-d, c-d.
	require.Equal(t, 6, g.ConnectionCount())

	return g
}

func TestGraph_Subgraph(t *testing.T) {
	g := seamGraph(t)

	sub := g.Subgraph("X")

	assert.Equal(t, "unit/X", sub.CommunityID)
	assert.Equal(t, 2, sub.MemberCount())
	assert.True(t, sub.Synthesized())

	// Only the a-b edge is internal to X; ids restart at zero.
	require.Equal(t, 1, sub.ConnectionCount())
	c := sub.Connections()[0]
	assert.Zero(t, c.ID)
	assert.Equal(t, commgraph.MemberID("a"), c.Source)
	assert.Equal(t, commgraph.MemberID("b"), c.Target)
	assert.InDelta(t, 2.5, c.Strength, 1e-9) // course 2.0 + subgroup 0.5

	// The parent graph is untouched.
	assert.Equal(t, 6, g.ConnectionCount())
}

func TestGraph_Subgraph_UnknownLabel(t *testing.T) {
	g := seamGraph(t)

	sub := g.Subgraph("ghosts")

	assert.Zero(t, sub.MemberCount())
	assert.Zero(t, sub.ConnectionCount())
}

func TestGraph_Intersection(t *testing.T) {
	g := seamGraph(t)

	inter := g.Intersection("X", "Y")

	assert.Equal(t, "unit/X∩Y", inter.CommunityID)
	require.Equal(t, 1, inter.MemberCount())
	assert.Equal(t, commgraph.MemberID("b"), inter.Members()[0].ID)
	assert.Zero(t, inter.ConnectionCount())
}

func TestGraph_Interface(t *testing.T) {
	g := seamGraph(t)

	s := g.Interface("X", "Y")

	assert.Equal(t, "X", s.SubgroupA)
	assert.Equal(t, "Y", s.SubgroupB)
	assert.Equal(t, []commgraph.MemberID{"b"}, s.SharedMembers)

	// Only a-c crosses: a is X-only, c is Y-only. Edges through b (in
	// both) or d (in neither) never count.
	assert.Equal(t, 1, s.CrossingCount)
	assert.InDelta(t, 1.5, s.CrossingStrength, 1e-9)
}
