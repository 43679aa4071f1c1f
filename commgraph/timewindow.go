package commgraph

// Weekday indexes the day of a TimeWindow: 0=Mon .. 6=Sun.
type Weekday uint8

// Day constants for TimeWindow.Day.
const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// dayNames is indexed by Weekday for diagnostics.
var dayNames = [...]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// String returns the short English day name, or "???" for out-of-range days.
func (d Weekday) String() string {
	if int(d) >= len(dayNames) {
		return "???"
	}

	return dayNames[d]
}

// TimeWindow is one weekly availability window: a day plus a half-open
// minute-of-day range [StartMin, EndMin), 0 ≤ StartMin < EndMin ≤ 1440.
type TimeWindow struct {
	Day      Weekday
	StartMin int
	EndMin   int
}

// Overlaps reports whether w and o share any time on the same day.
func (w TimeWindow) Overlaps(o TimeWindow) bool {
	if w.Day != o.Day {
		return false
	}

	return w.StartMin < o.EndMin && o.StartMin < w.EndMin
}

// OverlapMinutes returns the length of the overlap between w and o in
// minutes, or 0 when they do not overlap.
func (w TimeWindow) OverlapMinutes(o TimeWindow) int {
	if !w.Overlaps(o) {
		return 0
	}
	start := w.StartMin
	if o.StartMin > start {
		start = o.StartMin
	}
	end := w.EndMin
	if o.EndMin < end {
		end = o.EndMin
	}

	return end - start
}

// overlapHours sums the weekly overlap between two availability lists and
// returns whole hours. Quadratic in window count; rosters carry a handful
// of windows per member.
func overlapHours(a, b []TimeWindow) int {
	total := 0
	for _, wa := range a {
		for _, wb := range b {
			total += wa.OverlapMinutes(wb)
		}
	}

	return total / 60
}
