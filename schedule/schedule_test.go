package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hallcrest/commtopo/boundary"
	"github.com/hallcrest/commtopo/commgraph"
	"github.com/hallcrest/commtopo/schedule"
)

// window is shorthand for an hourly-aligned availability window.
func window(day commgraph.Weekday, fromHour, toHour int) commgraph.TimeWindow {
	return commgraph.TimeWindow{Day: day, StartMin: fromHour * 60, EndMin: toHour * 60}
}

func free(id string, windows ...commgraph.TimeWindow) *commgraph.Member {
	return &commgraph.Member{
		ID:          commgraph.MemberID(id),
		Name:        id,
		FreeWindows: windows,
	}
}

func scored(t *testing.T, g *commgraph.Graph) *boundary.Scores {
	t.Helper()
	s, err := boundary.Compute(g)
	require.NoError(t, err)

	return s
}

func TestFindOptimalEventTimes_RequiresScores(t *testing.T) {
	g := commgraph.New("unit")
	g.ComputeConnections()

	_, err := schedule.FindOptimalEventTimes(g, nil)
	assert.ErrorIs(t, err, schedule.ErrNoScores)
}

// TestFindOptimalEventTimes_AttendanceFloor: slots below MinAttendance
// never appear, even when nothing else qualifies.
func TestFindOptimalEventTimes_AttendanceFloor(t *testing.T) {
	g := commgraph.New("unit")
	g.AddMember(free("a", window(commgraph.Monday, 9, 10)))
	g.AddMember(free("b", window(commgraph.Monday, 9, 10)))
	g.ComputeConnections()

	slots, err := schedule.FindOptimalEventTimes(g, scored(t, g))
	require.NoError(t, err)
	assert.Empty(t, slots)

	// Lowering the floor admits the slot.
	opts := schedule.DefaultOptions()
	opts.MinAttendance = 2
	slots, err = schedule.FindOptimalEventTimes(g, scored(t, g), opts)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, window(commgraph.Monday, 9, 10), slots[0].Slot)
	assert.Equal(t, []commgraph.MemberID{"a", "b"}, slots[0].Available)
	assert.InDelta(t, 1.0, slots[0].Coverage, 1e-9)
}

// TestFindOptimalEventTimes_CoverageRanking: fuller slots rank first, and
// TopN caps the list.
func TestFindOptimalEventTimes_CoverageRanking(t *testing.T) {
	g := commgraph.New("unit")
	// Everyone is free Tuesday 18-19; only three are free Thursday 20-21.
	for _, id := range []string{"a", "b", "c"} {
		g.AddMember(free(id,
			window(commgraph.Tuesday, 18, 19),
			window(commgraph.Thursday, 20, 21)))
	}
	for _, id := range []string{"d", "e"} {
		g.AddMember(free(id, window(commgraph.Tuesday, 18, 19)))
	}
	g.ComputeConnections()

	opts := schedule.DefaultOptions()
	opts.MinAttendance = 3
	slots, err := schedule.FindOptimalEventTimes(g, scored(t, g), opts)
	require.NoError(t, err)

	require.Len(t, slots, 2)
	assert.Equal(t, window(commgraph.Tuesday, 18, 19), slots[0].Slot)
	assert.InDelta(t, 1.0, slots[0].Coverage, 1e-9)
	assert.Equal(t, window(commgraph.Thursday, 20, 21), slots[1].Slot)
	assert.InDelta(t, 0.6, slots[1].Coverage, 1e-9)

	opts.TopN = 1
	slots, err = schedule.FindOptimalEventTimes(g, scored(t, g), opts)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, window(commgraph.Tuesday, 18, 19), slots[0].Slot)
}

// TestFindOptimalEventTimes_IsolationBonus: between two equally attended
// slots, the one an isolated member can attend wins.
func TestFindOptimalEventTimes_IsolationBonus(t *testing.T) {
	opts := commgraph.DefaultOptions()
	opts.MinStrength = 100
	g := commgraph.New("unit", opts)

	// Six connected members split across two evening slots.
	for _, id := range []string{"a", "b", "c"} {
		g.AddMember(free(id, window(commgraph.Monday, 19, 20)))
	}
	for _, id := range []string{"d", "e"} {
		g.AddMember(free(id, window(commgraph.Wednesday, 19, 20)))
	}
	// The isolated member can only make Wednesday.
	g.AddMember(free("loner", window(commgraph.Wednesday, 19, 20)))
	g.ComputeConnections()
	for _, pair := range [][2]string{{"a", "b"}, {"b", "c"}, {"a", "c"}, {"a", "d"}, {"d", "e"}, {"c", "e"}} {
		require.NoError(t, g.AddManualConnection(
			commgraph.MemberID(pair[0]), commgraph.MemberID(pair[1]),
			commgraph.ManuallyIntroduced, 1.0))
	}

	sopts := schedule.DefaultOptions()
	sopts.MinAttendance = 3
	slots, err := schedule.FindOptimalEventTimes(g, scored(t, g), sopts)
	require.NoError(t, err)

	// Both slots seat three of six, but Wednesday carries the +2 bonus
	// for the unconnected member.
	require.Len(t, slots, 2)
	assert.Equal(t, window(commgraph.Wednesday, 19, 20), slots[0].Slot)
	assert.InDelta(t, isolationRank(0.5, 1), slots[0].Rank(), 1e-9)
	assert.Equal(t, window(commgraph.Monday, 19, 20), slots[1].Slot)
	assert.InDelta(t, isolationRank(0.5, 0), slots[1].Rank(), 1e-9)
}

// isolationRank mirrors the documented ordering key for readability.
func isolationRank(coverage float64, isolated int) float64 {
	return coverage*100 + 2.0*float64(isolated)
}

// TestFindOptimalEventTimes_HourBounds: windows outside the configured
// daily range produce no candidates.
func TestFindOptimalEventTimes_HourBounds(t *testing.T) {
	g := commgraph.New("unit")
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		g.AddMember(free(id, window(commgraph.Friday, 6, 7))) // before FirstHour
	}
	g.ComputeConnections()

	slots, err := schedule.FindOptimalEventTimes(g, scored(t, g))
	require.NoError(t, err)
	assert.Empty(t, slots)
}
