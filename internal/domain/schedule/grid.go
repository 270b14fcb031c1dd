package schedule

import (
	"errors"
	"fmt"
	"time"
)

// Rooms are bookable on a fixed hourly lattice. The grid runs from
// OpeningHour to ClosingHour inclusive, so it has 17 candidate points.
const (
	OpeningHour = 6
	ClosingHour = 22
)

var ErrInvalidTimeOfDay = errors.New("invalid time of day")

// TimeOfDay is a wall-clock time without a date, minute precision.
type TimeOfDay struct {
	hour   int
	minute int
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{hour: hour, minute: minute}, nil
}

// ParseTimeOfDay parses "HH:mm".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{hour: t.Hour(), minute: t.Minute()}, nil
}

// TimeOfDayOf extracts the wall-clock component of an instant.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{hour: t.Hour(), minute: t.Minute()}
}

func (t TimeOfDay) Hour() int   { return t.hour }
func (t TimeOfDay) Minute() int { return t.minute }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.hour*60+t.minute < other.hour*60+other.minute
}

func (t TimeOfDay) After(other TimeOfDay) bool {
	return other.Before(t)
}

// At anchors the time of day on the calendar date of day, in day's location.
func (t TimeOfDay) At(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.hour, t.minute, 0, 0, day.Location())
}

// DailyGrid returns every hour-aligned candidate point from OpeningHour to
// ClosingHour inclusive, ascending.
func DailyGrid() []TimeOfDay {
	grid := make([]TimeOfDay, 0, ClosingHour-OpeningHour+1)
	for h := OpeningHour; h <= ClosingHour; h++ {
		grid = append(grid, TimeOfDay{hour: h})
	}
	return grid
}

// SameDay reports whether two instants fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// NextWeekday returns the first date after from whose weekday is w. A from
// that already matches still advances a full week; callers relying on the
// class-schedule expansion expect the first occurrence strictly after the
// semester start.
func NextWeekday(from time.Time, w time.Weekday) time.Time {
	days := int(w-from.Weekday()+7) % 7
	if days == 0 {
		days = 7
	}
	return from.AddDate(0, 0, days)
}
