package commgraph_test

import (
	"fmt"
	"testing"

	"github.com/hallcrest/commtopo/commgraph"
)

// benchRoster builds a roster of n members spread over rooms 100..199 and
// four course codes, dense enough that synthesis produces real work.
func benchRoster(n int) *commgraph.Graph {
	g := commgraph.New("bench")
	for i := 0; i < n; i++ {
		g.AddMember(&commgraph.Member{
			ID:      commgraph.MemberID(fmt.Sprintf("m%d", i)),
			Room:    fmt.Sprintf("%d", 100+i%100),
			Courses: []string{fmt.Sprintf("C%d", i%4)},
		})
	}

	return g
}

// BenchmarkComputeConnections_200 measures full edge synthesis on a
// 200-member roster. The pair loop is O(V²·s).
func BenchmarkComputeConnections_200(b *testing.B) {
	g := benchRoster(200)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		g.ComputeConnections()
	}
}

// BenchmarkSubgraph_200 measures induced-subgraph extraction against an
// already synthesized graph.
func BenchmarkSubgraph_200(b *testing.B) {
	g := commgraph.New("bench")
	for i := 0; i < 200; i++ {
		m := &commgraph.Member{
			ID:      commgraph.MemberID(fmt.Sprintf("m%d", i)),
			Courses: []string{fmt.Sprintf("C%d", i%4)},
			Subgroups: map[string]struct{}{
				fmt.Sprintf("G%d", i%2): {},
			},
		}
		g.AddMember(m)
	}
	g.ComputeConnections()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = g.Subgraph("G0")
	}
}
