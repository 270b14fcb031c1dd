package reservation

import (
	"errors"
	"time"

	"campus-rooms/internal/domain/room"
	"campus-rooms/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrNoSessions      = errors.New("class template needs at least one session")
	ErrInvalidSemester = errors.New("semester must start before it ends")
	ErrInvalidSession  = errors.New("session must start before it ends")
)

// Session is one weekly slot of a class template.
type Session struct {
	Day      time.Weekday
	StartsAt schedule.TimeOfDay
	EndsAt   schedule.TimeOfDay
}

// ClassTemplate describes a weekly class over a semester. Expansion turns it
// into independent WEEKLY reservations, one per calendar occurrence; the
// template itself is never stored.
type ClassTemplate struct {
	ActivityName        string
	ActivityDescription string
	RoomID              room.ID
	Sessions            []Session
	SemesterStartsAt    time.Time
	SemesterEndsAt      time.Time
}

// ExpandClassTemplate emits one ACCEPTED draft per occurrence of every
// session. Per session, the first occurrence is the first matching weekday
// strictly after the semester start, and drafts are emitted every seven days
// while the date stays before the semester end (end-exclusive).
func ExpandClassTemplate(tpl ClassTemplate, userID uuid.UUID) ([]*Reservation, error) {
	if len(tpl.Sessions) == 0 {
		return nil, ErrNoSessions
	}
	if !tpl.SemesterStartsAt.Before(tpl.SemesterEndsAt) {
		return nil, ErrInvalidSemester
	}

	// The loop compares calendar dates only; the clock component of the
	// semester bounds must not leak into the cutoff.
	semesterEnd := startOfDay(tpl.SemesterEndsAt)

	var drafts []*Reservation
	for _, session := range tpl.Sessions {
		if !session.StartsAt.Before(session.EndsAt) {
			return nil, ErrInvalidSession
		}

		date := schedule.NextWeekday(startOfDay(tpl.SemesterStartsAt), session.Day)
		for date.Before(semesterEnd) {
			draft, err := NewReservation(
				tpl.ActivityName,
				tpl.ActivityDescription,
				session.StartsAt.At(date),
				session.EndsAt.At(date),
				KindWeekly,
				tpl.RoomID,
				userID,
			)
			if err != nil {
				return nil, err
			}
			// Class schedules are pre-approved; they never wait in PENDING.
			if err := draft.Transition(StateAccepted); err != nil {
				return nil, err
			}
			drafts = append(drafts, draft)
			date = date.AddDate(0, 0, 7)
		}
	}
	return drafts, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
