package schedule

import (
	"errors"
	"sort"

	"github.com/hallcrest/commtopo/boundary"
	"github.com/hallcrest/commtopo/commgraph"
)

// ErrNoScores indicates scheduling was requested before boundary analysis
// produced scores for the current graph snapshot.
var ErrNoScores = errors.New("schedule: boundary scores required")

// Options tunes candidate generation and ranking.
type Options struct {
	// FirstHour and LastHour bound the daily candidate range; slots start
	// on the hour in [FirstHour, LastHour).
	FirstHour int
	LastHour  int

	// MinAttendance discards slots fewer members can attend.
	MinAttendance int

	// TopN caps the number of returned candidates.
	TopN int

	// IsolationThreshold marks the boundary score above which an attending
	// member earns the isolation bonus.
	IsolationThreshold float64
}

// DefaultOptions returns the standard ranking parameters: hourly slots
// 08:00–22:00, minimum attendance 5, top 5 candidates, isolation
// threshold 0.7.
func DefaultOptions() Options {
	return Options{
		FirstHour:          8,
		LastHour:           22,
		MinAttendance:      5,
		TopN:               5,
		IsolationThreshold: 0.7,
	}
}

// Bonus weights for topologically important attendees.
const (
	isolatedBonus = 2.0
	bridgeBonus   = 1.5
)

// SlotScore is one ranked candidate event time.
type SlotScore struct {
	// Slot is the hourly candidate window.
	Slot commgraph.TimeWindow

	// Available lists the members free during the slot, roster order.
	Available []commgraph.MemberID

	// Coverage is len(Available) / total members.
	Coverage float64

	// TopologyBonus accumulates +2.0 per available isolated member and
	// +1.5 per available bridge member.
	TopologyBonus float64
}

// Rank is the combined ordering key: Coverage×100 + TopologyBonus.
func (s SlotScore) Rank() float64 { return s.Coverage*100 + s.TopologyBonus }

// FindOptimalEventTimes ranks hourly event slots for g.
//
// Steps:
//  1. For every (day, hour) candidate, collect members with a free window
//     overlapping the slot.
//  2. Discard slots below MinAttendance.
//  3. Score: coverage plus the topology bonus for isolated (boundary score
//     strictly above the threshold) and bridge attendees.
//  4. Stable-sort descending by Rank and keep the top N. Never returns a
//     slot below MinAttendance and never more than TopN slots.
func FindOptimalEventTimes(
	g *commgraph.Graph,
	scores *boundary.Scores,
	opts ...Options,
) ([]SlotScore, error) {
	if scores == nil {
		return nil, ErrNoScores
	}
	o := DefaultOptions()
	if len(opts) > 0 {
		o = opts[0]
	}

	total := g.MemberCount()
	var candidates []SlotScore

	for day := commgraph.Monday; day <= commgraph.Sunday; day++ {
		for hour := o.FirstHour; hour < o.LastHour; hour++ {
			slot := commgraph.TimeWindow{
				Day:      day,
				StartMin: hour * 60,
				EndMin:   (hour + 1) * 60,
			}

			// 1. Availability scan.
			var available []commgraph.MemberID
			for _, m := range g.Members() {
				for _, w := range m.FreeWindows {
					if w.Overlaps(slot) {
						available = append(available, m.ID)
						break
					}
				}
			}

			// 2. Attendance floor.
			if len(available) < o.MinAttendance {
				continue
			}

			// 3. Coverage and topology bonus.
			s := SlotScore{
				Slot:      slot,
				Available: available,
				Coverage:  float64(len(available)) / float64(total),
			}
			for _, id := range available {
				if scores.Boundary[id] > o.IsolationThreshold {
					s.TopologyBonus += isolatedBonus
				}
				if scores.IsBridge(id) {
					s.TopologyBonus += bridgeBonus
				}
			}
			candidates = append(candidates, s)
		}
	}

	// 4. Rank descending; stable keeps week order for equal scores.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Rank() > candidates[j].Rank()
	})
	if len(candidates) > o.TopN {
		candidates = candidates[:o.TopN]
	}

	return candidates, nil
}
