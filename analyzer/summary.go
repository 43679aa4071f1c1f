package analyzer

import (
	"fmt"
	"strings"
)

// Summary renders the full human-readable report: the headline metrics,
// the risk assessment, and the top outreach priorities. Like Diagnosis it
// is assembled purely from computed fields and is stable across runs.
func (r *Result) Summary() string {
	var b strings.Builder

	b.WriteString("=== COMMUNITY TOPOLOGY REPORT ===\n")
	fmt.Fprintf(&b, "Health score: %.1f/100\n", r.HealthScore)
	b.WriteString("\nTopological invariants:\n")
	fmt.Fprintf(&b, "  β0 (components): %d\n", r.Betti0)
	fmt.Fprintf(&b, "  β1 (holes): %d\n", r.Betti1)
	b.WriteString("\nRisk assessment:\n")
	fmt.Fprintf(&b, "  Isolation risk: %d members\n", len(r.Isolated))
	fmt.Fprintf(&b, "  Bridge members: %d\n", len(r.Bridges))
	fmt.Fprintf(&b, "  Structural holes: %d\n", len(r.Holes))
	fmt.Fprintf(&b, "\nSuggested introductions: %d\n", len(r.Introductions))
	fmt.Fprintf(&b, "Recommended event slots: %d\n", len(r.EventSlots))

	if len(r.Priorities) > 0 {
		b.WriteString("\nTop outreach priorities:\n")
		limit := len(r.Priorities)
		if limit > 5 {
			limit = 5
		}
		for i := 0; i < limit; i++ {
			fmt.Fprintf(&b, "  %d. %s (%.0f)\n", i+1, r.Priorities[i].ID, r.Priorities[i].Score)
		}
	}

	b.WriteString("\n")
	b.WriteString(r.Diagnosis)

	return b.String()
}
