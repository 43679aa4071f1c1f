package boundary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hallcrest/commtopo/boundary"
	"github.com/hallcrest/commtopo/commgraph"
	"github.com/hallcrest/commtopo/homology"
)

func member(id string, subgroups ...string) *commgraph.Member {
	m := &commgraph.Member{
		ID:        commgraph.MemberID(id),
		Name:      id,
		Subgroups: map[string]struct{}{},
	}
	for _, label := range subgroups {
		m.Subgroups[label] = struct{}{}
	}

	return m
}

func connect(t *testing.T, g *commgraph.Graph, a, b string) {
	t.Helper()
	require.NoError(t, g.AddManualConnection(
		commgraph.MemberID(a), commgraph.MemberID(b),
		commgraph.ManuallyIntroduced, 1.0))
}

func TestCompute_RequiresSynthesis(t *testing.T) {
	g := commgraph.New("unit")
	g.AddMember(member("a"))

	_, err := boundary.Compute(g)
	assert.ErrorIs(t, err, boundary.ErrNotSynthesized)
}

// TestCompute_Scores checks degree normalization on a star: the hub scores
// boundary 0, the leaves share an intermediate score, and the unconnected
// member scores 1.
func TestCompute_Scores(t *testing.T) {
	g := commgraph.New("unit")
	g.AddMember(member("hub"))
	g.AddMember(member("leaf1"))
	g.AddMember(member("leaf2"))
	g.AddMember(member("leaf3"))
	g.AddMember(member("adrift"))
	g.ComputeConnections()
	connect(t, g, "hub", "leaf1")
	connect(t, g, "hub", "leaf2")
	connect(t, g, "hub", "leaf3")

	s, err := boundary.Compute(g)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, s.Centrality["hub"], 1e-9)
	assert.InDelta(t, 0.0, s.Boundary["hub"], 1e-9)
	assert.InDelta(t, 1.0/3.0, s.Centrality["leaf1"], 1e-9)
	assert.InDelta(t, 2.0/3.0, s.Boundary["leaf1"], 1e-9)
	assert.InDelta(t, 0.0, s.Centrality["adrift"], 1e-9)
	assert.InDelta(t, 1.0, s.Boundary["adrift"], 1e-9)
}

// TestCompute_EdgelessGraph: with no connections anywhere the maximum
// degree is zero and every member sits fully on the boundary.
func TestCompute_EdgelessGraph(t *testing.T) {
	g := commgraph.New("unit")
	g.AddMember(member("a"))
	g.AddMember(member("b"))
	g.ComputeConnections()

	s, err := boundary.Compute(g)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, s.Boundary["a"], 1e-9)
	assert.InDelta(t, 1.0, s.Boundary["b"], 1e-9)
	assert.Equal(t, []commgraph.MemberID{"a", "b"}, s.AtRisk(boundary.DefaultIsolationThreshold))
}

func TestScores_AtRisk(t *testing.T) {
	g := commgraph.New("unit")
	g.AddMember(member("a"))
	g.AddMember(member("b"))
	g.AddMember(member("c"))
	g.AddMember(member("d"))
	g.ComputeConnections()
	connect(t, g, "a", "b")
	connect(t, g, "b", "c")
	connect(t, g, "a", "c")

	s, err := boundary.Compute(g)
	require.NoError(t, err)

	// Triangle members score 0, d scores 1.
	assert.Equal(t, []commgraph.MemberID{"d"}, s.AtRisk(boundary.DefaultIsolationThreshold))
	// Threshold 0 flags everyone.
	assert.Len(t, s.AtRisk(0), 4)
}

// TestCompute_DegreeMonotonicity: a higher degree can never yield a higher
// boundary score.
func TestCompute_DegreeMonotonicity(t *testing.T) {
	g := commgraph.New("unit")
	for _, id := range []string{"a", "b", "c", "d", "e", "f"} {
		g.AddMember(member(id))
	}
	g.ComputeConnections()
	connect(t, g, "a", "b")
	connect(t, g, "a", "c")
	connect(t, g, "a", "d")
	connect(t, g, "b", "c")
	connect(t, g, "d", "e")

	s, err := boundary.Compute(g)
	require.NoError(t, err)

	members := g.Members()
	for _, x := range members {
		for _, y := range members {
			if g.Degree(x.ID) >= g.Degree(y.ID) {
				assert.LessOrEqual(t, s.Boundary[x.ID], s.Boundary[y.ID],
					"degree(%s)=%d vs degree(%s)=%d", x.ID, g.Degree(x.ID), y.ID, g.Degree(y.ID))
			}
		}
	}
}

// TestCompute_BridgeRule: m sits in both STEM and athletes and its
// neighborhood spans both labels, so m is a bridge. Removing m's edges
// splits the graph, which is what the flag is meant to predict.
func TestCompute_BridgeRule(t *testing.T) {
	build := func(withBridgeEdges bool) *commgraph.Graph {
		opts := commgraph.DefaultOptions()
		opts.MinStrength = 100 // suppress subgroup-signal edges
		g := commgraph.New("unit", opts)
		g.AddMember(member("s1", "STEM"))
		g.AddMember(member("s2", "STEM"))
		g.AddMember(member("m", "STEM", "athletes"))
		g.AddMember(member("a1", "athletes"))
		g.AddMember(member("a2", "athletes"))
		g.ComputeConnections()
		connect(t, g, "s1", "s2")
		connect(t, g, "a1", "a2")
		if withBridgeEdges {
			connect(t, g, "s1", "m")
			connect(t, g, "m", "a1")
		}

		return g
	}

	g := build(true)
	s, err := boundary.Compute(g)
	require.NoError(t, err)

	assert.True(t, s.IsBridge("m"))
	assert.Equal(t, []commgraph.MemberID{"m"}, s.Bridges())
	// Single-subgroup members are never bridges, whatever they neighbor.
	assert.False(t, s.IsBridge("s1"))
	assert.False(t, s.IsBridge("a1"))

	// The flag predicts fragmentation: without m's edges the component
	// count strictly increases.
	with := homology.Betti0(g)
	without := homology.Betti0(build(false))
	assert.Greater(t, without, with)
}

// TestCompute_MultiSubgroupNotBridge: membership in two subgroups is not
// enough when the neighborhood stays inside one label.
func TestCompute_MultiSubgroupNotBridge(t *testing.T) {
	opts := commgraph.DefaultOptions()
	opts.MinStrength = 100
	g := commgraph.New("unit", opts)
	g.AddMember(member("m", "STEM", "athletes"))
	g.AddMember(member("s1", "STEM"))
	g.ComputeConnections()
	connect(t, g, "m", "s1")

	s, err := boundary.Compute(g)
	require.NoError(t, err)

	assert.False(t, s.IsBridge("m"))
	assert.Empty(t, s.Bridges())
}
