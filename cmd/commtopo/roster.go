package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hallcrest/commtopo/commgraph"
)

// rosterFile is the host-owned JSON shape for one community roster. The
// engine itself mandates no wire format.
type rosterFile struct {
	CommunityID string         `json:"community_id"`
	Members     []rosterMember `json:"members"`
}

type rosterMember struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Room           string         `json:"room"`
	Email          string         `json:"email,omitempty"`
	Phone          string         `json:"phone,omitempty"`
	Subgroups      []string       `json:"subgroups,omitempty"`
	Courses        []string       `json:"courses,omitempty"`
	FreeWindows    []rosterWindow `json:"free_windows,omitempty"`
	Interests      []string       `json:"interests,omitempty"`
	LastRating     int            `json:"last_rating,omitempty"`
	Concerns       []string       `json:"concerns,omitempty"`
	FollowUpNeeded bool           `json:"follow_up_needed,omitempty"`
}

type rosterWindow struct {
	Day      int `json:"day"`
	StartMin int `json:"start_min"`
	EndMin   int `json:"end_min"`
}

// loadRoster decodes a roster file into a fresh community graph.
func loadRoster(path string, opts commgraph.Options) (*commgraph.Graph, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var roster rosterFile
	if err = json.Unmarshal(raw, &roster); err != nil {
		return nil, fmt.Errorf("decode roster: %w", err)
	}

	g := commgraph.New(roster.CommunityID, opts)
	for _, rm := range roster.Members {
		m := &commgraph.Member{
			ID:             commgraph.MemberID(rm.ID),
			Name:           rm.Name,
			Room:           rm.Room,
			Email:          rm.Email,
			Phone:          rm.Phone,
			Subgroups:      toSet(rm.Subgroups),
			Courses:        rm.Courses,
			Interests:      toSet(rm.Interests),
			LastRating:     rm.LastRating,
			Concerns:       toSet(rm.Concerns),
			FollowUpNeeded: rm.FollowUpNeeded,
		}
		for _, w := range rm.FreeWindows {
			m.FreeWindows = append(m.FreeWindows, commgraph.TimeWindow{
				Day:      commgraph.Weekday(w.Day),
				StartMin: w.StartMin,
				EndMin:   w.EndMin,
			})
		}
		g.AddMember(m)
	}

	return g, nil
}

// toSet converts a label list into the engine's set representation.
func toSet(labels []string) map[string]struct{} {
	set := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		set[label] = struct{}{}
	}

	return set
}
