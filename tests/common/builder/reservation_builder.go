//go:build unit || e2e

package builder

import (
	"time"

	domreservation "campus-rooms/internal/domain/reservation"
	"campus-rooms/internal/domain/room"
	"campus-rooms/internal/usecase/commands"
	"campus-rooms/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ActivityName        string
	ActivityDescription string
	StartsAt            time.Time
	EndsAt              time.Time
	Kind                domreservation.Kind
	RoomID              room.ID
	RoomName            string
	UserID              uuid.UUID
}

func NewReservationBuilder() *ReservationBuilder {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ActivityName:        "Linear Algebra Study Group",
		ActivityDescription: "Weekly study group",
		StartsAt:            day.Add(10 * time.Hour),
		EndsAt:              day.Add(12 * time.Hour),
		Kind:                domreservation.KindOnce,
		RoomID:              room.ID(12010),
		RoomName:            "Lecture Hall 1",
		UserID:              uuid.New(),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildDomain() (*domreservation.Reservation, error) {
	return domreservation.NewReservation(
		b.ActivityName,
		b.ActivityDescription,
		b.StartsAt,
		b.EndsAt,
		b.Kind,
		b.RoomID,
		b.UserID,
	)
}

func (b *ReservationBuilder) BuildInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		ActivityName:        b.ActivityName,
		ActivityDescription: b.ActivityDescription,
		StartsAt:            b.StartsAt,
		EndsAt:              b.EndsAt,
		RoomID:              b.RoomID,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	now := time.Now()
	return &queries.ReservationView{
		ID:                  uuid.New(),
		ActivityName:        b.ActivityName,
		ActivityDescription: b.ActivityDescription,
		StartsAt:            b.StartsAt,
		EndsAt:              b.EndsAt,
		Kind:                b.Kind.String(),
		State:               domreservation.StatePending.String(),
		RoomID:              b.RoomID.Int64(),
		RoomName:            b.RoomName,
		UserID:              b.UserID,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

// BuildCreateRequestMap mirrors the JSON body of a create request so tests
// can mutate individual fields before marshalling.
func (b *ReservationBuilder) BuildCreateRequestMap() map[string]any {
	return map[string]any{
		"activity_name":        b.ActivityName,
		"activity_description": b.ActivityDescription,
		"starts_at":            b.StartsAt.Format(time.RFC3339),
		"ends_at":              b.EndsAt.Format(time.RFC3339),
		"room_id":              b.RoomID.Int64(),
	}
}

type RoomBuilder struct {
	ID       room.ID
	Building string
	RoomNum  string
	SubRoom  int
	Name     string
	Capacity int
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:       room.ID(12010),
		Building: "1",
		RoomNum:  "201",
		SubRoom:  0,
		Name:     "Lecture Hall 1",
		Capacity: 40,
	}
}

func (b *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		ID:       b.ID.Int64(),
		Building: b.Building,
		RoomNum:  b.RoomNum,
		SubRoom:  b.SubRoom,
		Name:     b.Name,
		Capacity: b.Capacity,
	}
}
