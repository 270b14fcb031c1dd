package commands

import (
	"context"
	"time"

	"campus-rooms/internal/domain/notification"
	"campus-rooms/internal/domain/reservation"
	"campus-rooms/internal/domain/room"
	"campus-rooms/internal/infra"
	"campus-rooms/internal/infra/db"
	"campus-rooms/internal/pkg/clock"
	"campus-rooms/internal/pkg/errs"
	"campus-rooms/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound            = errs.New("room not found")
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrRoomOccupied            = errs.New("room occupied in the requested interval")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrInvalidStateTransition  = errs.New("invalid state transition")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// CreateReservationInput carries the fields of a booking request after
// transport-level parsing.
type CreateReservationInput struct {
	ActivityName        string
	ActivityDescription string
	StartsAt            time.Time
	EndsAt              time.Time
	RoomID              room.ID
}

type ReservationCommands interface {
	CreateSingle(ctx context.Context, in CreateReservationInput, userID uuid.UUID) (*queries.ReservationView, error)
	CreateRecurring(ctx context.Context, in CreateReservationInput, userID uuid.UUID) (*queries.ReservationView, error)
	CreateClassSchedule(ctx context.Context, tpl reservation.ClassTemplate, userID uuid.UUID) ([]*queries.ReservationView, error)
	UpdateState(ctx context.Context, id uuid.UUID, next reservation.State) (*queries.ReservationView, error)
	Update(ctx context.Context, id uuid.UUID, patch reservation.Patch) (*queries.ReservationView, error)
	Delete(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error)
}

type reservationUseCaseImpl struct {
	reservationRepo  ReservationRepository
	notificationRepo NotificationRepository
	reservationReads ReservationReads
	roomReads        RoomReads
	uow              UnitOfWork
	clock            clock.Clock
	locker           *roomLocker
}

func NewReservationUseCase(
	reservationRepo ReservationRepository,
	notificationRepo NotificationRepository,
	reservationReads ReservationReads,
	roomReads RoomReads,
	uow UnitOfWork,
	clock clock.Clock,
) ReservationCommands {
	return &reservationUseCaseImpl{
		reservationRepo:  reservationRepo,
		notificationRepo: notificationRepo,
		reservationReads: reservationReads,
		roomReads:        roomReads,
		uow:              uow,
		clock:            clock,
		locker:           newRoomLocker(),
	}
}

// CreateSingle books a one-off slot. The draft starts PENDING and an operator
// broadcast is written in the same transaction.
func (r *reservationUseCaseImpl) CreateSingle(
	ctx context.Context,
	in CreateReservationInput,
	userID uuid.UUID,
) (*queries.ReservationView, error) {
	roomView, err := r.findRoom(ctx, in.RoomID)
	if err != nil {
		return nil, err
	}

	draft, err := reservation.NewReservation(
		in.ActivityName, in.ActivityDescription,
		in.StartsAt, in.EndsAt,
		reservation.KindOnce, in.RoomID, userID,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	admin := notification.NewAdminBroadcast(
		notification.RequestedMessage(roomView.Building, roomView.RoomNum),
		r.clock.Now(),
	)
	return r.insertGated(ctx, draft, admin)
}

// CreateRecurring books a single occurrence of a recurring activity. It is
// pre-approved and does not notify operators.
func (r *reservationUseCaseImpl) CreateRecurring(
	ctx context.Context,
	in CreateReservationInput,
	userID uuid.UUID,
) (*queries.ReservationView, error) {
	if _, err := r.findRoom(ctx, in.RoomID); err != nil {
		return nil, err
	}

	draft, err := reservation.NewReservation(
		in.ActivityName, in.ActivityDescription,
		in.StartsAt, in.EndsAt,
		reservation.KindWeekly, in.RoomID, userID,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if err := draft.Transition(reservation.StateAccepted); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	return r.insertGated(ctx, draft, nil)
}

// CreateClassSchedule expands a weekly template into one reservation per
// occurrence and persists them all-or-nothing. Each draft is checked against
// the stored reservations and against the drafts queued before it, so a
// template cannot conflict with itself.
func (r *reservationUseCaseImpl) CreateClassSchedule(
	ctx context.Context,
	tpl reservation.ClassTemplate,
	userID uuid.UUID,
) ([]*queries.ReservationView, error) {
	if _, err := r.findRoom(ctx, tpl.RoomID); err != nil {
		return nil, err
	}

	drafts, err := reservation.ExpandClassTemplate(tpl, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	unlock := r.locker.Lock(tpl.RoomID)
	defer unlock()

	existing, err := r.reservationReads.ActiveEntitiesByRoom(ctx, tpl.RoomID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	for _, draft := range drafts {
		if conflict := reservation.FindConflict(existing, tpl.RoomID, draft.StartsAt(), draft.EndsAt()); conflict != nil {
			return nil, ErrRoomOccupied
		}
		existing = append(existing, draft)
	}

	err = r.withinTx(ctx, func(tx db.DBTX) error {
		return r.reservationRepo.InsertBatch(ctx, tx, drafts)
	})
	if err != nil {
		return nil, err
	}

	views := make([]*queries.ReservationView, 0, len(drafts))
	for _, draft := range drafts {
		view, err := r.reservationReads.FindByID(ctx, draft.ID())
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		views = append(views, view)
	}
	return views, nil
}

// UpdateState moves a reservation through its lifecycle and notifies the
// owner of the decision in the same transaction.
func (r *reservationUseCaseImpl) UpdateState(
	ctx context.Context,
	id uuid.UUID,
	next reservation.State,
) (*queries.ReservationView, error) {
	rsv, err := r.findReservation(ctx, id)
	if err != nil {
		return nil, err
	}
	roomView, err := r.findRoom(ctx, rsv.RoomID())
	if err != nil {
		return nil, err
	}

	if err := rsv.Transition(next); err != nil {
		return nil, errs.Mark(err, ErrInvalidStateTransition)
	}

	private := notification.NewPrivate(
		rsv.UserID(),
		notification.DecisionMessage(next, roomView.Building, roomView.RoomNum),
		r.clock.Now(),
	)

	err = r.withinTx(ctx, func(tx db.DBTX) error {
		if err := r.reservationRepo.Update(ctx, tx, rsv); err != nil {
			return err
		}
		return r.notificationRepo.Insert(ctx, tx, private)
	})
	if err != nil {
		return nil, err
	}

	return r.viewAfterWrite(ctx, id)
}

// Update applies a partial edit. Absent fields keep their current value; the
// overlap gate is not re-run here, only the storage constraint backstops a
// move into an occupied slot.
func (r *reservationUseCaseImpl) Update(
	ctx context.Context,
	id uuid.UUID,
	patch reservation.Patch,
) (*queries.ReservationView, error) {
	rsv, err := r.findReservation(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.RoomID != nil {
		if _, err := r.findRoom(ctx, *patch.RoomID); err != nil {
			return nil, err
		}
	}

	if err := rsv.Apply(patch); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = r.withinTx(ctx, func(tx db.DBTX) error {
		return r.reservationRepo.Update(ctx, tx, rsv)
	})
	if err != nil {
		return nil, err
	}

	return r.viewAfterWrite(ctx, id)
}

// Delete removes a reservation and returns its last view.
func (r *reservationUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	view, err := r.reservationReads.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	err = r.withinTx(ctx, func(tx db.DBTX) error {
		return r.reservationRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// insertGated serializes on the room, runs the conflict scan, and persists
// the draft (plus the optional notification) in one transaction.
func (r *reservationUseCaseImpl) insertGated(
	ctx context.Context,
	draft *reservation.Reservation,
	n *notification.Notification,
) (*queries.ReservationView, error) {
	unlock := r.locker.Lock(draft.RoomID())
	defer unlock()

	existing, err := r.reservationReads.ActiveEntitiesByRoom(ctx, draft.RoomID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if conflict := reservation.FindConflict(existing, draft.RoomID(), draft.StartsAt(), draft.EndsAt()); conflict != nil {
		return nil, ErrRoomOccupied
	}

	err = r.withinTx(ctx, func(tx db.DBTX) error {
		if err := r.reservationRepo.Insert(ctx, tx, draft); err != nil {
			return err
		}
		if n != nil {
			return r.notificationRepo.Insert(ctx, tx, n)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.viewAfterWrite(ctx, draft.ID())
}

func (r *reservationUseCaseImpl) withinTx(ctx context.Context, fn func(tx db.DBTX) error) error {
	err := r.uow.Within(ctx, func(_ context.Context, tx db.DBTX) error {
		return fn(tx)
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindConflict):
			return ErrRoomOccupied
		case infra.IsKind(err, infra.KindNotFound):
			return ErrReservationNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (r *reservationUseCaseImpl) findRoom(ctx context.Context, id room.ID) (*queries.RoomView, error) {
	view, err := r.roomReads.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (r *reservationUseCaseImpl) findReservation(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	rsv, err := r.reservationReads.EntityByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rsv, nil
}

func (r *reservationUseCaseImpl) viewAfterWrite(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	view, err := r.reservationReads.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}
