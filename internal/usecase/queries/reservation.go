package queries

import (
	"context"
	"time"

	"campus-rooms/internal/domain/reservation"
	"campus-rooms/internal/domain/room"
	"campus-rooms/internal/domain/schedule"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListAll(ctx context.Context) ([]*ReservationView, error)
	ListByState(ctx context.Context, state reservation.State) ([]*ReservationView, error)
	ListByRoom(ctx context.Context, roomID room.ID) ([]*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
	FreeStartTimes(ctx context.Context, roomID room.ID, day time.Time) ([]schedule.TimeOfDay, error)
	FreeEndTimes(ctx context.Context, roomID room.ID, day time.Time, start schedule.TimeOfDay) ([]schedule.TimeOfDay, error)
}

type ReservationViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindAll(ctx context.Context) ([]*ReservationView, error)
	FindByState(ctx context.Context, state reservation.State) ([]*ReservationView, error)
	FindByRoom(ctx context.Context, roomID room.ID) ([]*ReservationView, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
	FindBlockingIntervals(ctx context.Context, roomID room.ID, day time.Time) ([]schedule.Interval, error)
}

type RoomViewRepo interface {
	FindByID(ctx context.Context, id room.ID) (*RoomView, error)
	FindAll(ctx context.Context) ([]*RoomView, error)
}

type reservationQueriesImpl struct {
	reservations ReservationViewRepo
	rooms        RoomViewRepo
}

func NewReservationQueries(reservations ReservationViewRepo, rooms RoomViewRepo) ReservationQueries {
	return &reservationQueriesImpl{reservations: reservations, rooms: rooms}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	return q.reservations.FindByID(ctx, id)
}

func (q *reservationQueriesImpl) ListAll(ctx context.Context) ([]*ReservationView, error) {
	return q.reservations.FindAll(ctx)
}

func (q *reservationQueriesImpl) ListByState(ctx context.Context, state reservation.State) ([]*ReservationView, error) {
	return q.reservations.FindByState(ctx, state)
}

func (q *reservationQueriesImpl) ListByRoom(ctx context.Context, roomID room.ID) ([]*ReservationView, error) {
	return q.reservations.FindByRoom(ctx, roomID)
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error) {
	return q.reservations.FindByUser(ctx, userID)
}

// FreeStartTimes returns the hourly grid points of a day that are not inside
// any blocking reservation of the room.
func (q *reservationQueriesImpl) FreeStartTimes(ctx context.Context, roomID room.ID, day time.Time) ([]schedule.TimeOfDay, error) {
	if _, err := q.rooms.FindByID(ctx, roomID); err != nil {
		return nil, err
	}
	booked, err := q.reservations.FindBlockingIntervals(ctx, roomID, day)
	if err != nil {
		return nil, err
	}
	return schedule.FreeStartTimes(day, booked), nil
}

// FreeEndTimes returns the grid points a reservation starting at start could
// end at: strictly after start, bounded by the next booked start of the day
// or closing time.
func (q *reservationQueriesImpl) FreeEndTimes(ctx context.Context, roomID room.ID, day time.Time, start schedule.TimeOfDay) ([]schedule.TimeOfDay, error) {
	if _, err := q.rooms.FindByID(ctx, roomID); err != nil {
		return nil, err
	}
	booked, err := q.reservations.FindBlockingIntervals(ctx, roomID, day)
	if err != nil {
		return nil, err
	}
	return schedule.FreeEndTimes(day, start, booked), nil
}

type RoomQueries interface {
	GetByID(ctx context.Context, id room.ID) (*RoomView, error)
	ListAll(ctx context.Context) ([]*RoomView, error)
}

type roomQueriesImpl struct {
	rooms RoomViewRepo
}

func NewRoomQueries(rooms RoomViewRepo) RoomQueries {
	return &roomQueriesImpl{rooms: rooms}
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id room.ID) (*RoomView, error) {
	return q.rooms.FindByID(ctx, id)
}

func (q *roomQueriesImpl) ListAll(ctx context.Context) ([]*RoomView, error) {
	return q.rooms.FindAll(ctx)
}
