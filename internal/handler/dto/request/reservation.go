package request

import (
	"errors"
	"strings"
	"time"

	"campus-rooms/internal/domain/reservation"
	"campus-rooms/internal/domain/room"
	"campus-rooms/internal/domain/schedule"
	"campus-rooms/internal/usecase/commands"
)

var (
	ErrUnknownWeekday = errors.New("unknown weekday")
	ErrUnknownState   = errors.New("unknown state")
)

type CreateReservationRequest struct {
	ActivityName        string    `json:"activity_name" binding:"required"`
	ActivityDescription string    `json:"activity_description"`
	StartsAt            time.Time `json:"starts_at" binding:"required"`
	EndsAt              time.Time `json:"ends_at" binding:"required"`
	RoomID              int64     `json:"room_id" binding:"required"`
}

func (r CreateReservationRequest) ToInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		ActivityName:        strings.TrimSpace(r.ActivityName),
		ActivityDescription: strings.TrimSpace(r.ActivityDescription),
		StartsAt:            r.StartsAt,
		EndsAt:              r.EndsAt,
		RoomID:              room.ID(r.RoomID),
	}
}

type ClassSessionRequest struct {
	Day      string `json:"day" binding:"required"`
	StartsAt string `json:"starts_at" binding:"required"`
	EndsAt   string `json:"ends_at" binding:"required"`
}

type CreateClassScheduleRequest struct {
	ActivityName        string                `json:"activity_name" binding:"required"`
	ActivityDescription string                `json:"activity_description"`
	RoomID              int64                 `json:"room_id" binding:"required"`
	SemesterStartsAt    time.Time             `json:"semester_starts_at" binding:"required"`
	SemesterEndsAt      time.Time             `json:"semester_ends_at" binding:"required"`
	Sessions            []ClassSessionRequest `json:"sessions" binding:"required"`
}

func (r CreateClassScheduleRequest) ToTemplate() (reservation.ClassTemplate, error) {
	sessions := make([]reservation.Session, 0, len(r.Sessions))
	for _, s := range r.Sessions {
		day, err := parseWeekday(s.Day)
		if err != nil {
			return reservation.ClassTemplate{}, err
		}
		startsAt, err := schedule.ParseTimeOfDay(s.StartsAt)
		if err != nil {
			return reservation.ClassTemplate{}, err
		}
		endsAt, err := schedule.ParseTimeOfDay(s.EndsAt)
		if err != nil {
			return reservation.ClassTemplate{}, err
		}
		sessions = append(sessions, reservation.Session{
			Day:      day,
			StartsAt: startsAt,
			EndsAt:   endsAt,
		})
	}

	return reservation.ClassTemplate{
		ActivityName:        strings.TrimSpace(r.ActivityName),
		ActivityDescription: strings.TrimSpace(r.ActivityDescription),
		RoomID:              room.ID(r.RoomID),
		Sessions:            sessions,
		SemesterStartsAt:    r.SemesterStartsAt,
		SemesterEndsAt:      r.SemesterEndsAt,
	}, nil
}

type UpdateStateRequest struct {
	State string `json:"state" binding:"required"`
}

func (r UpdateStateRequest) ToState() (reservation.State, error) {
	state := reservation.State(strings.ToLower(strings.TrimSpace(r.State)))
	if !state.IsValid() {
		return "", ErrUnknownState
	}
	return state, nil
}

type PatchReservationRequest struct {
	ActivityName        *string    `json:"activity_name,omitempty"`
	ActivityDescription *string    `json:"activity_description,omitempty"`
	StartsAt            *time.Time `json:"starts_at,omitempty"`
	EndsAt              *time.Time `json:"ends_at,omitempty"`
	RoomID              *int64     `json:"room_id,omitempty"`
}

func (r PatchReservationRequest) ToPatch() reservation.Patch {
	p := reservation.Patch{
		ActivityName:        r.ActivityName,
		ActivityDescription: r.ActivityDescription,
		StartsAt:            r.StartsAt,
		EndsAt:              r.EndsAt,
	}
	if r.RoomID != nil {
		id := room.ID(*r.RoomID)
		p.RoomID = &id
	}
	return p
}

func parseWeekday(s string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	case "tuesday":
		return time.Tuesday, nil
	case "wednesday":
		return time.Wednesday, nil
	case "thursday":
		return time.Thursday, nil
	case "friday":
		return time.Friday, nil
	case "saturday":
		return time.Saturday, nil
	default:
		return time.Sunday, ErrUnknownWeekday
	}
}
