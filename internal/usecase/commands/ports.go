package commands

import (
	"context"

	"campus-rooms/internal/domain/notification"
	"campus-rooms/internal/domain/reservation"
	"campus-rooms/internal/domain/room"
	"campus-rooms/internal/infra/db"
	"campus-rooms/internal/usecase/queries"

	"github.com/google/uuid"
)

// UnitOfWork runs fn inside one database transaction; the DBTX it hands over
// is valid only for the duration of fn.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
}

type ReservationRepository interface {
	Insert(ctx context.Context, dbtx db.DBTX, rsv *reservation.Reservation) error
	InsertBatch(ctx context.Context, dbtx db.DBTX, rsvs []*reservation.Reservation) error
	Update(ctx context.Context, dbtx db.DBTX, rsv *reservation.Reservation) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type NotificationRepository interface {
	Insert(ctx context.Context, dbtx db.DBTX, n *notification.Notification) error
}

// ReservationReads is the slice of the read store the write side needs: entity
// loads for read-modify-write, the conflict gate's room scan, and
// read-after-write views.
type ReservationReads interface {
	EntityByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	ActiveEntitiesByRoom(ctx context.Context, roomID room.ID) ([]*reservation.Reservation, error)
	FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error)
}

type RoomReads interface {
	FindByID(ctx context.Context, id room.ID) (*queries.RoomView, error)
}
