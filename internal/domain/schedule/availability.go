package schedule

import "time"

// Interval is a half-open booked span [Start, End) on a single day.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the interval. The start is
// inclusive and the end exclusive, so back-to-back bookings never collide.
func (iv Interval) Contains(t time.Time) bool {
	return !t.Before(iv.Start) && t.Before(iv.End)
}

// Overlaps reports whether [start, end) intersects the interval.
func (iv Interval) Overlaps(start, end time.Time) bool {
	return iv.Start.Before(end) && iv.End.After(start)
}

// FreeStartTimes returns the grid points on day at which a new booking could
// begin, given the already booked intervals of that day. A point is removed
// when it falls inside any booked interval, including that interval's own
// start.
func FreeStartTimes(day time.Time, booked []Interval) []TimeOfDay {
	free := make([]TimeOfDay, 0, ClosingHour-OpeningHour+1)
	for _, t := range DailyGrid() {
		at := t.At(day)
		taken := false
		for _, iv := range booked {
			if iv.Contains(at) {
				taken = true
				break
			}
		}
		if !taken {
			free = append(free, t)
		}
	}
	return free
}

// FreeEndTimes returns the grid points at which a booking starting at
// chosenStart could end. The choice is bounded by the next booked start at or
// after chosenStart, defaulting to the grid's closing point, so an end time
// can never run into the following booking. chosenStart itself is assumed to
// have been validated against FreeStartTimes.
func FreeEndTimes(day time.Time, chosenStart TimeOfDay, booked []Interval) []TimeOfDay {
	boundary, _ := NewTimeOfDay(ClosingHour, 0)
	startAt := chosenStart.At(day)
	for _, iv := range booked {
		if iv.Start.Before(startAt) {
			continue
		}
		if s := TimeOfDayOf(iv.Start); s.Before(boundary) {
			boundary = s
		}
	}

	ends := make([]TimeOfDay, 0, ClosingHour-OpeningHour)
	for _, t := range DailyGrid() {
		if t.After(chosenStart) && !t.After(boundary) {
			ends = append(ends, t)
		}
	}
	return ends
}
