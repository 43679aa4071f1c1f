package mayervietoris

import (
	"errors"

	"github.com/hallcrest/commtopo/commgraph"
)

// ErrUnknownSubgroups indicates neither requested label has any members in
// the graph, so there is nothing to decompose.
var ErrUnknownSubgroups = errors.New("mayervietoris: neither subgroup label exists in graph")

// Health score weights. Components beyond the first and cycles beyond a
// small allowance cost points, isolated members cost more, and every
// bridge member earns some back.
const (
	componentPenalty = 15.0
	holePenalty      = 5.0
	holeAllowance    = 2
	isolationPenalty = 3.0
	bridgeBonus      = 2.0
)

// cohesionCycleLimit is the union cycle count up to which a decomposed
// community still counts as cohesive (one cycle means some structure,
// which is healthy).
const cohesionCycleLimit = 1

// Result is the outcome of one two-subgroup decomposition.
type Result struct {
	SubgroupA string
	SubgroupB string

	// Betti numbers of the parts and the glue.
	H0A            int
	H1A            int
	H0B            int
	H1B            int
	H0Intersection int
	H1Intersection int

	// IntersectionSize is |A∩B| in members.
	IntersectionSize int

	// H1Union is the EXACT independent-cycle count of the whole graph,
	// computed from the edge-count identity, never from the estimates below.
	H1Union int

	// KernelI0 estimates how many intersection components merge once
	// embedded in the union: max(0, β0(A∩B) − max(β0(A), β0(B))). A proxy
	// for the connecting homomorphism's kernel, not the exact dimension.
	KernelI0 int

	// CokernelI1 estimates the union cycles not contributed by the parts:
	// β1(A)+β1(B) − min(β1(A∩B), β1(A)+β1(B)). A bound, not the literal
	// cokernel.
	CokernelI1 int

	// IsCohesive is true when the union carries at most one cycle.
	IsCohesive bool

	// Diagnosis is a display-ready narrative assembled deterministically
	// from the fields above; it never carries information not derivable
	// from them.
	Diagnosis string
}

// Introduction is one suggested member pairing.
type Introduction struct {
	// A is the member the outreach is for, B the suggested companion.
	A commgraph.MemberID
	B commgraph.MemberID
}
