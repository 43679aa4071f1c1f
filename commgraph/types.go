// Package commgraph defines the core member, connection, and graph types
// plus the tunable options for edge synthesis.
package commgraph

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrMemberNotFound indicates an operation referenced an unknown member id.
	ErrMemberNotFound = errors.New("commgraph: member not found")

	// ErrSelfConnection indicates a connection from a member to itself.
	ErrSelfConnection = errors.New("commgraph: self-connection not allowed")

	// ErrNegativeStrength indicates a connection with negative strength.
	ErrNegativeStrength = errors.New("commgraph: connection strength must be non-negative")

	// ErrNotSynthesized indicates an operation that requires ComputeConnections
	// to have run on the current roster snapshot.
	ErrNotSynthesized = errors.New("commgraph: connections not synthesized")
)

// MemberID uniquely identifies a member within one community graph.
type MemberID string

// ConnectionType tags the primary signal that produced a connection.
// When several signals fire for the same pair, the edge keeps the first
// type in the fixed evaluation order of ComputeConnections.
type ConnectionType uint8

const (
	// SharedCourse marks members enrolled in at least one common course.
	SharedCourse ConnectionType = iota
	// AvailabilityOverlap marks members free at the same times (≥ 2h/week).
	AvailabilityOverlap
	// SharedInterest marks members who flagged at least one common interest.
	SharedInterest
	// Cohabitation marks members with an identical room designator.
	Cohabitation
	// PhysicalProximity marks members whose room numbers are close.
	PhysicalProximity
	// SubgroupIntroduced marks an introduction made by community staff.
	SubgroupIntroduced
	// ManuallyIntroduced marks an introduction entered by hand.
	ManuallyIntroduced
	// SharedSubgroup marks members who share at least one subgroup label.
	SharedSubgroup
)

// String returns a stable lowercase tag for diagnostics and serialization.
func (t ConnectionType) String() string {
	switch t {
	case SharedCourse:
		return "shared-course"
	case AvailabilityOverlap:
		return "availability-overlap"
	case SharedInterest:
		return "shared-interest"
	case Cohabitation:
		return "cohabitation"
	case PhysicalProximity:
		return "physical-proximity"
	case SubgroupIntroduced:
		return "subgroup-introduced"
	case ManuallyIntroduced:
		return "manually-introduced"
	case SharedSubgroup:
		return "shared-subgroup"
	default:
		return "unknown"
	}
}

// Member is a vertex in the community graph. All fields are caller-supplied
// source data; the analysis pipeline never writes derived values back into
// a Member (derived annotations live in boundary.Scores and friends).
type Member struct {
	// ID is the stable unique identifier supplied by the roster source.
	ID MemberID

	// Name is the display name.
	Name string

	// Room is the room designator, e.g. "312A". Leading digits are parsed
	// for the proximity signal; non-numeric designators never error.
	Room string

	// Email and Phone are contact fields, carried through untouched.
	Email string
	Phone string

	// Subgroups is the set of subgroup labels (major, club, team, ...).
	Subgroups map[string]struct{}

	// Courses lists enrolled course codes.
	Courses []string

	// FreeWindows lists weekly windows when the member is available.
	FreeWindows []TimeWindow

	// Interests is the set of interest tags from check-in responses.
	Interests map[string]struct{}

	// LastRating is the most recent wellbeing rating (1..5, 0 = none).
	LastRating int

	// Concerns is the set of flagged concern tags.
	Concerns map[string]struct{}

	// FollowUpNeeded is set when the last check-in requested follow-up.
	FollowUpNeeded bool
}

// InSubgroup reports whether the member carries the given subgroup label.
func (m *Member) InSubgroup(label string) bool {
	_, ok := m.Subgroups[label]
	return ok
}

// Connection is an undirected edge between two members. Source/Target keep
// the canonical roster order (Source appears before Target) so that a pair
// is never recorded twice.
type Connection struct {
	// ID is assigned locally within one ComputeConnections call.
	ID int

	// Source and Target are the endpoint member ids.
	Source MemberID
	Target MemberID

	// Type is the primary signal that produced this edge.
	Type ConnectionType

	// Strength is the non-negative sum of all qualifying signal
	// contributions, not just the primary type's.
	Strength float64

	// IsBridgeEdge is true when the shared-subgroup set is a strict subset
	// of either endpoint's full subgroup set, i.e. the edge does not cover
	// every subgroup one of its endpoints belongs to.
	IsBridgeEdge bool

	// Touches is the set of subgroup labels both endpoints belong to.
	Touches map[string]struct{}
}

// Options holds the tunable parameters for edge synthesis.
type Options struct {
	// MinStrength is the minimum summed strength required to create an edge.
	MinStrength float64

	// StrongThreshold is the minimum strength for the strong adjacency index.
	StrongThreshold float64

	// ProximityDistance is the maximum numeric room distance treated as
	// physically adjacent.
	ProximityDistance int
}

// DefaultOptions returns the standard synthesis parameters:
// MinStrength=0.5, StrongThreshold=2.0, ProximityDistance=5.
func DefaultOptions() Options {
	return Options{
		MinStrength:       0.5,
		StrongThreshold:   2.0,
		ProximityDistance: 5,
	}
}

// Signal contribution constants used by ComputeConnections.
const (
	// weightPerSharedCourse is added per common course code.
	weightPerSharedCourse = 2.0
	// weightPerSharedInterest is added per common interest tag.
	weightPerSharedInterest = 1.5
	// weightCohabitation is added once for an identical room designator.
	weightCohabitation = 5.0
	// weightProximity is added once for numerically close rooms.
	weightProximity = 1.0
	// weightPerSharedSubgroup is added per common subgroup label.
	weightPerSharedSubgroup = 0.5
	// overlapHourFloor is the minimum weekly overlap (hours) to count at all.
	overlapHourFloor = 2
	// overlapHourScale divides the overlap hours before capping.
	overlapHourScale = 5.0
	// overlapCap bounds the availability-overlap contribution.
	overlapCap = 2.0
)
