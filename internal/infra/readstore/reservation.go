package readstore

import (
	"context"
	"time"

	"campus-rooms/internal/domain/reservation"
	"campus-rooms/internal/domain/room"
	"campus-rooms/internal/domain/schedule"
	"campus-rooms/internal/infra"
	"campus-rooms/internal/infra/db"
	"campus-rooms/internal/pkg/pgconv"
	"campus-rooms/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const reservationViewSQL = `
SELECT r.id, r.activity_name, r.activity_description, r.starts_at, r.ends_at,
       r.kind, r.state, r.room_id, rm.name AS room_name, r.user_id,
       r.created_at, r.updated_at
FROM reservations r
JOIN rooms rm ON rm.id = r.room_id`

const reservationEntitySQL = `
SELECT id, activity_name, activity_description, starts_at, ends_at,
       kind, state, room_id, user_id, created_at, updated_at
FROM reservations`

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row := r.db.QueryRow(ctx, reservationViewSQL+` WHERE r.id = $1`, id)
	view, err := scanReservationView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by id", err)
	}
	return view, nil
}

func (r *ReservationReadStore) FindAll(ctx context.Context) ([]*queries.ReservationView, error) {
	rows, err := r.db.Query(ctx, reservationViewSQL+` ORDER BY r.starts_at`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	return collectReservationViews(rows)
}

func (r *ReservationReadStore) FindByState(ctx context.Context, state reservation.State) ([]*queries.ReservationView, error) {
	rows, err := r.db.Query(ctx, reservationViewSQL+` WHERE r.state = $1 ORDER BY r.starts_at`, state.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by state", err)
	}
	return collectReservationViews(rows)
}

// FindByRoom lists a room's reservations, leaving out CANCELLED and
// REJECTED ones.
func (r *ReservationReadStore) FindByRoom(ctx context.Context, roomID room.ID) ([]*queries.ReservationView, error) {
	rows, err := r.db.Query(ctx,
		reservationViewSQL+` WHERE r.room_id = $1 AND r.state NOT IN ($2, $3) ORDER BY r.starts_at`,
		roomID.Int64(), reservation.StateCancelled.String(), reservation.StateRejected.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by room", err)
	}
	return collectReservationViews(rows)
}

func (r *ReservationReadStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.db.Query(ctx, reservationViewSQL+` WHERE r.user_id = $1 ORDER BY r.starts_at`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by user", err)
	}
	return collectReservationViews(rows)
}

// FindBlockingIntervals returns the booked spans of a room on one calendar
// day, considering only states that block the grid (PENDING, ACCEPTED).
func (r *ReservationReadStore) FindBlockingIntervals(ctx context.Context, roomID room.ID, day time.Time) ([]schedule.Interval, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	rows, err := r.db.Query(ctx, `
SELECT starts_at, ends_at
FROM reservations
WHERE room_id = $1
  AND state IN ($2, $3)
  AND starts_at >= $4 AND starts_at < $5
ORDER BY starts_at`,
		roomID.Int64(),
		reservation.StatePending.String(), reservation.StateAccepted.String(),
		dayStart, dayEnd)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load booked intervals", err)
	}
	defer rows.Close()

	var intervals []schedule.Interval
	for rows.Next() {
		var iv schedule.Interval
		if err := rows.Scan(&iv.Start, &iv.End); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booked interval", err)
		}
		intervals = append(intervals, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booked intervals", err)
	}
	return intervals, nil
}

// EntityByID reconstructs the domain entity for read-modify-write flows.
func (r *ReservationReadStore) EntityByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row := r.db.QueryRow(ctx, reservationEntitySQL+` WHERE id = $1`, id)
	rsv, err := scanReservationEntity(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation entity", err)
	}
	return rsv, nil
}

// ActiveEntitiesByRoom loads every non-cancelled reservation of a room for
// the conflict gate.
func (r *ReservationReadStore) ActiveEntitiesByRoom(ctx context.Context, roomID room.ID) ([]*reservation.Reservation, error) {
	rows, err := r.db.Query(ctx,
		reservationEntitySQL+` WHERE room_id = $1 AND state <> $2 ORDER BY starts_at`,
		roomID.Int64(), reservation.StateCancelled.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load room reservations", err)
	}
	defer rows.Close()

	var result []*reservation.Reservation
	for rows.Next() {
		rsv, err := scanReservationEntity(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation entity", err)
		}
		result = append(result, rsv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read room reservations", err)
	}
	return result, nil
}

func scanReservationView(row pgx.Row) (*queries.ReservationView, error) {
	var v queries.ReservationView
	err := row.Scan(
		&v.ID, &v.ActivityName, &v.ActivityDescription, &v.StartsAt, &v.EndsAt,
		&v.Kind, &v.State, &v.RoomID, &v.RoomName, &v.UserID,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func collectReservationViews(rows pgx.Rows) ([]*queries.ReservationView, error) {
	defer rows.Close()

	var views []*queries.ReservationView
	for rows.Next() {
		v, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation view", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation views", err)
	}
	return views, nil
}

func scanReservationEntity(row pgx.Row) (*reservation.Reservation, error) {
	var (
		id                  uuid.UUID
		activityName        string
		activityDescription string
		startsAt, endsAt    time.Time
		kind, state         string
		roomID              int64
		userID              uuid.UUID
		createdAt           time.Time
		updatedAt           time.Time
	)
	err := row.Scan(&id, &activityName, &activityDescription, &startsAt, &endsAt,
		&kind, &state, &roomID, &userID, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	return reservation.Reconstruct(
		id, activityName, activityDescription, startsAt, endsAt,
		reservation.Kind(kind), reservation.State(state),
		room.ID(roomID), userID, createdAt, updatedAt,
	), nil
}
