package analyzer

import (
	"errors"

	"github.com/hallcrest/commtopo/commgraph"
	"github.com/hallcrest/commtopo/mayervietoris"
	"github.com/hallcrest/commtopo/schedule"
)

// ErrEmptyGraph indicates Analyze was called with a nil graph. An empty
// roster is NOT an error: it yields a zero-valued Result.
var ErrEmptyGraph = errors.New("analyzer: nil graph")

// Options tunes the analysis stages. Edge-synthesis parameters live on the
// graph itself (commgraph.Options); these govern what the pipeline does
// with the synthesized structure.
type Options struct {
	// IsolationThreshold is the boundary score at or above which a member
	// lands on the isolation list.
	IsolationThreshold float64

	// BucketFraction scales the persistence classification threshold.
	BucketFraction float64

	// Scheduling carries the event-slot ranking parameters.
	Scheduling schedule.Options
}

// DefaultOptions returns IsolationThreshold=0.7, BucketFraction=0.3, and
// schedule.DefaultOptions for the event search.
func DefaultOptions() Options {
	return Options{
		IsolationThreshold: 0.7,
		BucketFraction:     0.3,
		Scheduling:         schedule.DefaultOptions(),
	}
}

// Priority score components (spec'd outreach weighting).
const (
	priorityBase     = 50.0
	priorityIsolated = 30.0
	priorityFragile  = 20.0
	priorityLowMood  = 25.0
	priorityFollowUp = 15.0
	priorityBridge   = 5.0
	priorityStable   = -10.0

	// lowRatingCeiling: a last rating in 1..lowRatingCeiling counts as low.
	lowRatingCeiling = 2
)

// PriorityEntry is one row of the outreach ranking.
type PriorityEntry struct {
	ID    commgraph.MemberID
	Score float64
}

// Result is the aggregate artifact of one analysis run — the sole object
// handed back to external collaborators. All slices follow roster order
// within their stage's semantics; serialization is the host's concern.
type Result struct {
	// RunID stamps this run for host-side correlation. It is the only
	// non-deterministic field; every computed field below is bit-identical
	// across repeated runs on an unchanged roster.
	RunID string

	CommunityID     string
	MemberCount     int
	ConnectionCount int

	// Betti0 is the component count, Betti1 the independent cycle count.
	Betti0 int
	Betti1 int

	// Isolated lists members at isolation risk; Bridges lists structural
	// connectors; Holes lists the cycle member groups.
	Isolated []commgraph.MemberID
	Bridges  []commgraph.MemberID
	Holes    [][]commgraph.MemberID

	// Introductions are the suggested member pairings.
	Introductions []mayervietoris.Introduction

	// HealthScore is the 0–100 community score; Diagnosis its narrative.
	HealthScore float64
	Diagnosis   string

	// Persistence classification of subgroups.
	StableGroups   [][]commgraph.MemberID
	FragileGroups  [][]commgraph.MemberID
	EmergingGroups [][]commgraph.MemberID

	// EventSlots are the ranked candidate event times.
	EventSlots []schedule.SlotScore

	// Priorities is the outreach ranking, highest need first.
	Priorities []PriorityEntry
}
