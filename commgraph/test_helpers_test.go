package commgraph_test

import "github.com/hallcrest/commtopo/commgraph"

// mem builds a bare member; shape it with the with* helpers below.
func mem(id string) *commgraph.Member {
	return &commgraph.Member{
		ID:        commgraph.MemberID(id),
		Name:      id,
		Subgroups: map[string]struct{}{},
		Interests: map[string]struct{}{},
		Concerns:  map[string]struct{}{},
	}
}

func withRoom(m *commgraph.Member, room string) *commgraph.Member {
	m.Room = room
	return m
}

func withCourses(m *commgraph.Member, codes ...string) *commgraph.Member {
	m.Courses = append(m.Courses, codes...)
	return m
}

func withSubgroups(m *commgraph.Member, labels ...string) *commgraph.Member {
	for _, label := range labels {
		m.Subgroups[label] = struct{}{}
	}
	return m
}

func withInterests(m *commgraph.Member, tags ...string) *commgraph.Member {
	for _, tag := range tags {
		m.Interests[tag] = struct{}{}
	}
	return m
}

func withWindows(m *commgraph.Member, windows ...commgraph.TimeWindow) *commgraph.Member {
	m.FreeWindows = append(m.FreeWindows, windows...)
	return m
}
