package repository

import (
	"context"
	"errors"

	"campus-rooms/internal/domain/reservation"
	"campus-rooms/internal/infra"
	"campus-rooms/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation    = "23505"
	pgErrCodeExclusionViolation = "23P01"
)

const insertReservationSQL = `
INSERT INTO reservations (id, activity_name, activity_description, starts_at, ends_at, kind, state, room_id, user_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())`

const updateReservationSQL = `
UPDATE reservations
SET activity_name = $2,
    activity_description = $3,
    starts_at = $4,
    ends_at = $5,
    state = $6,
    room_id = $7,
    updated_at = now()
WHERE id = $1`

const deleteReservationSQL = `DELETE FROM reservations WHERE id = $1`

// ReservationRepository is the write side of the reservation store. Every
// method takes the DBTX it should run on so callers control transaction
// boundaries.
type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

func (r *ReservationRepository) Insert(ctx context.Context, dbtx db.DBTX, rsv *reservation.Reservation) error {
	_, err := dbtx.Exec(ctx, insertReservationSQL,
		rsv.ID(),
		rsv.ActivityName(),
		rsv.ActivityDescription(),
		rsv.StartsAt(),
		rsv.EndsAt(),
		rsv.Kind().String(),
		rsv.State().String(),
		rsv.RoomID().Int64(),
		rsv.UserID(),
	)
	if err != nil {
		return wrapWriteErr("failed to insert reservation", err)
	}
	return nil
}

// InsertBatch persists all drafts through one pipelined batch; the caller's
// transaction makes it all-or-nothing.
func (r *ReservationRepository) InsertBatch(ctx context.Context, dbtx db.DBTX, rsvs []*reservation.Reservation) error {
	batch := &pgx.Batch{}
	for _, rsv := range rsvs {
		batch.Queue(insertReservationSQL,
			rsv.ID(),
			rsv.ActivityName(),
			rsv.ActivityDescription(),
			rsv.StartsAt(),
			rsv.EndsAt(),
			rsv.Kind().String(),
			rsv.State().String(),
			rsv.RoomID().Int64(),
			rsv.UserID(),
		)
	}

	results := dbtx.SendBatch(ctx, batch)
	defer results.Close()

	for range rsvs {
		if _, err := results.Exec(); err != nil {
			return wrapWriteErr("failed to insert reservation batch", err)
		}
	}
	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, dbtx db.DBTX, rsv *reservation.Reservation) error {
	tag, err := dbtx.Exec(ctx, updateReservationSQL,
		rsv.ID(),
		rsv.ActivityName(),
		rsv.ActivityDescription(),
		rsv.StartsAt(),
		rsv.EndsAt(),
		rsv.State().String(),
		rsv.RoomID().Int64(),
	)
	if err != nil {
		return wrapWriteErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, deleteReservationSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func wrapWriteErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeExclusionViolation:
			return infra.WrapRepoErr(msg, err, infra.KindConflict)
		case pgErrCodeUniqueViolation:
			return infra.WrapRepoErr(msg, err, infra.KindDuplicate)
		}
	}
	return infra.WrapRepoErr(msg, err)
}
