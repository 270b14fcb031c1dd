package reservation

import (
	"errors"
	"strings"
	"time"

	"campus-rooms/internal/domain/room"
	"campus-rooms/internal/domain/schedule"
	"campus-rooms/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrEmptyActivityName      = errors.New("activity name is required")
	ErrInvalidInterval        = errors.New("reservation must start before it ends")
	ErrCrossDayInterval       = errors.New("reservation cannot span multiple days")
	ErrInvalidState           = errors.New("invalid reservation state")
	ErrInvalidKind            = errors.New("invalid reservation kind")
	ErrInvalidStateTransition = errors.New("invalid reservation state transition")
)

type Reservation struct {
	id                  uuid.UUID
	activityName        string
	activityDescription string
	startsAt            time.Time
	endsAt              time.Time
	kind                Kind
	state               State
	roomID              room.ID
	userID              uuid.UUID
	createdAt           time.Time
	updatedAt           time.Time
}

// NewReservation builds a draft in the initial PENDING state. The interval
// must be strictly ordered and stay within one calendar day.
func NewReservation(
	activityName, activityDescription string,
	startsAt, endsAt time.Time,
	kind Kind,
	roomID room.ID,
	userID uuid.UUID,
) (*Reservation, error) {
	activityName = strings.TrimSpace(activityName)
	if activityName == "" {
		return nil, ErrEmptyActivityName
	}
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if err := validateInterval(startsAt, endsAt); err != nil {
		return nil, err
	}

	return &Reservation{
		id:                  uuid.New(),
		activityName:        activityName,
		activityDescription: strings.TrimSpace(activityDescription),
		startsAt:            startsAt,
		endsAt:              endsAt,
		kind:                kind,
		state:               StatePending,
		roomID:              roomID,
		userID:              userID,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	activityName, activityDescription string,
	startsAt, endsAt time.Time,
	kind Kind,
	state State,
	roomID room.ID,
	userID uuid.UUID,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:                  id,
		activityName:        activityName,
		activityDescription: activityDescription,
		startsAt:            startsAt,
		endsAt:              endsAt,
		kind:                kind,
		state:               state,
		roomID:              roomID,
		userID:              userID,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}
}

func validateInterval(startsAt, endsAt time.Time) error {
	if !startsAt.Before(endsAt) {
		return ErrInvalidInterval
	}
	if !schedule.SameDay(startsAt, endsAt) {
		return ErrCrossDayInterval
	}
	return nil
}

// Transition moves the reservation to next, enforcing the lifecycle table.
// The source system let any state be set from any state; that laxity would
// let a cancelled reservation re-occupy its slot without passing the
// conflict gate, so transitions are checked here.
func (r *Reservation) Transition(next State) error {
	if !next.IsValid() {
		return ErrInvalidState
	}
	if !r.state.CanTransitionTo(next) {
		return ErrInvalidStateTransition
	}
	r.state = next
	return nil
}

// Patch carries a partial update. Nil fields leave the current value
// untouched. State changes are deliberately not part of a patch; they go
// through Transition.
type Patch struct {
	ActivityName        *string
	ActivityDescription *string
	StartsAt            *time.Time
	EndsAt              *time.Time
	RoomID              *room.ID
}

// Apply overwrites the fields present in p and revalidates the interval
// invariants. The overlap gate is not re-run on update.
func (r *Reservation) Apply(p Patch) error {
	name := strings.TrimSpace(patch.Coalesce(p.ActivityName, r.activityName))
	if name == "" {
		return ErrEmptyActivityName
	}
	startsAt := patch.Coalesce(p.StartsAt, r.startsAt)
	endsAt := patch.Coalesce(p.EndsAt, r.endsAt)
	if err := validateInterval(startsAt, endsAt); err != nil {
		return err
	}

	r.activityName = name
	r.activityDescription = strings.TrimSpace(patch.Coalesce(p.ActivityDescription, r.activityDescription))
	r.startsAt = startsAt
	r.endsAt = endsAt
	r.roomID = patch.Coalesce(p.RoomID, r.roomID)
	return nil
}

func (r *Reservation) ID() uuid.UUID              { return r.id }
func (r *Reservation) ActivityName() string       { return r.activityName }
func (r *Reservation) ActivityDescription() string { return r.activityDescription }
func (r *Reservation) StartsAt() time.Time        { return r.startsAt }
func (r *Reservation) EndsAt() time.Time          { return r.endsAt }
func (r *Reservation) Kind() Kind                 { return r.kind }
func (r *Reservation) State() State               { return r.state }
func (r *Reservation) RoomID() room.ID            { return r.roomID }
func (r *Reservation) UserID() uuid.UUID          { return r.userID }
func (r *Reservation) CreatedAt() time.Time       { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time       { return r.updatedAt }

// Interval returns the booked span as a half-open interval.
func (r *Reservation) Interval() schedule.Interval {
	return schedule.Interval{Start: r.startsAt, End: r.endsAt}
}
