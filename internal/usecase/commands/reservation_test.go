//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"campus-rooms/internal/domain/notification"
	"campus-rooms/internal/domain/reservation"
	"campus-rooms/internal/domain/room"
	"campus-rooms/internal/domain/schedule"
	"campus-rooms/internal/infra"
	"campus-rooms/internal/infra/db"
	"campus-rooms/internal/pkg/clock"
	"campus-rooms/internal/pkg/errs"
	"campus-rooms/internal/usecase/commands"
	"campus-rooms/internal/usecase/queries"
	"campus-rooms/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore backs all fake ports with one shared in-memory state so the
// command flow is observable end to end.
type fakeStore struct {
	reservations  map[uuid.UUID]*reservation.Reservation
	notifications []*notification.Notification
	rooms         map[room.ID]*queries.RoomView
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		reservations: make(map[uuid.UUID]*reservation.Reservation),
		rooms: map[room.ID]*queries.RoomView{
			room.ID(12010): builder.NewRoomBuilder().BuildView(),
		},
	}
}

type fakeReservationRepo struct{ store *fakeStore }

func (r *fakeReservationRepo) Insert(_ context.Context, _ db.DBTX, rsv *reservation.Reservation) error {
	r.store.reservations[rsv.ID()] = rsv
	return nil
}

func (r *fakeReservationRepo) InsertBatch(_ context.Context, _ db.DBTX, rsvs []*reservation.Reservation) error {
	for _, rsv := range rsvs {
		r.store.reservations[rsv.ID()] = rsv
	}
	return nil
}

func (r *fakeReservationRepo) Update(_ context.Context, _ db.DBTX, rsv *reservation.Reservation) error {
	if _, ok := r.store.reservations[rsv.ID()]; !ok {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	r.store.reservations[rsv.ID()] = rsv
	return nil
}

func (r *fakeReservationRepo) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	if _, ok := r.store.reservations[id]; !ok {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	delete(r.store.reservations, id)
	return nil
}

type fakeNotificationRepo struct{ store *fakeStore }

func (r *fakeNotificationRepo) Insert(_ context.Context, _ db.DBTX, n *notification.Notification) error {
	r.store.notifications = append(r.store.notifications, n)
	return nil
}

type fakeReads struct{ store *fakeStore }

func (r *fakeReads) EntityByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	rsv, ok := r.store.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return rsv, nil
}

func (r *fakeReads) ActiveEntitiesByRoom(_ context.Context, roomID room.ID) ([]*reservation.Reservation, error) {
	var out []*reservation.Reservation
	for _, rsv := range r.store.reservations {
		if rsv.RoomID() == roomID && rsv.State() != reservation.StateCancelled {
			out = append(out, rsv)
		}
	}
	return out, nil
}

func (r *fakeReads) FindByID(_ context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	rsv, ok := r.store.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	roomName := ""
	if rv, ok := r.store.rooms[rsv.RoomID()]; ok {
		roomName = rv.Name
	}
	return &queries.ReservationView{
		ID:                  rsv.ID(),
		ActivityName:        rsv.ActivityName(),
		ActivityDescription: rsv.ActivityDescription(),
		StartsAt:            rsv.StartsAt(),
		EndsAt:              rsv.EndsAt(),
		Kind:                rsv.Kind().String(),
		State:               rsv.State().String(),
		RoomID:              rsv.RoomID().Int64(),
		RoomName:            roomName,
		UserID:              rsv.UserID(),
	}, nil
}

type fakeRoomReads struct{ store *fakeStore }

func (r *fakeRoomReads) FindByID(_ context.Context, id room.ID) (*queries.RoomView, error) {
	rv, ok := r.store.rooms[id]
	if !ok {
		return nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return rv, nil
}

type fakeUoW struct{}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return fn(ctx, nil)
}

func newTestCommands(store *fakeStore) commands.ReservationCommands {
	return commands.NewReservationUseCase(
		&fakeReservationRepo{store: store},
		&fakeNotificationRepo{store: store},
		&fakeReads{store: store},
		&fakeRoomReads{store: store},
		&fakeUoW{},
		clock.NewMockClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)),
	)
}

func TestCreateSingle(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a pending reservation and notifies operators", func(t *testing.T) {
		store := newFakeStore()
		uc := newTestCommands(store)
		b := builder.NewReservationBuilder()

		view, err := uc.CreateSingle(ctx, b.BuildInput(), b.UserID)
		require.NoError(t, err)

		assert.Equal(t, reservation.StatePending.String(), view.State)
		assert.Equal(t, reservation.KindOnce.String(), view.Kind)
		assert.Equal(t, "Lecture Hall 1", view.RoomName)

		require.Len(t, store.notifications, 1)
		n := store.notifications[0]
		assert.Equal(t, notification.TypeAdmin, n.Type)
		assert.Nil(t, n.ReceiverID)
		assert.Contains(t, n.Message, "1-201")
	})

	t.Run("rejects an occupied slot", func(t *testing.T) {
		store := newFakeStore()
		uc := newTestCommands(store)
		b := builder.NewReservationBuilder()

		_, err := uc.CreateSingle(ctx, b.BuildInput(), b.UserID)
		require.NoError(t, err)

		overlapping := builder.NewReservationBuilder().With(func(o *builder.ReservationBuilder) {
			o.StartsAt = b.StartsAt.Add(30 * time.Minute)
			o.EndsAt = b.EndsAt.Add(30 * time.Minute)
		})
		_, err = uc.CreateSingle(ctx, overlapping.BuildInput(), overlapping.UserID)
		assert.True(t, errs.Is(err, commands.ErrRoomOccupied))

		assert.Len(t, store.reservations, 1)
		assert.Len(t, store.notifications, 1, "a refused request must not notify")
	})

	t.Run("allows back to back bookings", func(t *testing.T) {
		store := newFakeStore()
		uc := newTestCommands(store)
		b := builder.NewReservationBuilder()

		_, err := uc.CreateSingle(ctx, b.BuildInput(), b.UserID)
		require.NoError(t, err)

		next := builder.NewReservationBuilder().With(func(o *builder.ReservationBuilder) {
			o.StartsAt = b.EndsAt
			o.EndsAt = b.EndsAt.Add(time.Hour)
		})
		_, err = uc.CreateSingle(ctx, next.BuildInput(), next.UserID)
		assert.NoError(t, err)
	})

	t.Run("unknown room", func(t *testing.T) {
		store := newFakeStore()
		uc := newTestCommands(store)
		b := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.RoomID = room.ID(99999)
		})

		_, err := uc.CreateSingle(ctx, b.BuildInput(), b.UserID)
		assert.True(t, errs.Is(err, commands.ErrRoomNotFound))
	})

	t.Run("invalid interval", func(t *testing.T) {
		store := newFakeStore()
		uc := newTestCommands(store)
		b := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.EndsAt = b.StartsAt
		})

		_, err := uc.CreateSingle(ctx, b.BuildInput(), b.UserID)
		assert.True(t, errs.Is(err, commands.ErrDomainValidation))
	})
}

func TestCreateRecurring(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	uc := newTestCommands(store)
	b := builder.NewReservationBuilder()

	view, err := uc.CreateRecurring(ctx, b.BuildInput(), b.UserID)
	require.NoError(t, err)

	assert.Equal(t, reservation.StateAccepted.String(), view.State)
	assert.Equal(t, reservation.KindWeekly.String(), view.Kind)
	assert.Empty(t, store.notifications, "recurring bookings are pre-approved and silent")
}

func TestCreateClassSchedule(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	tpl := reservation.ClassTemplate{
		ActivityName:     "Databases II",
		RoomID:           room.ID(12010),
		SemesterStartsAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		SemesterEndsAt:   time.Date(2025, 1, 22, 0, 0, 0, 0, time.UTC),
	}
	mondaySession := func(t *testing.T, from, to string) reservation.Session {
		t.Helper()
		startsAt, err := schedule.ParseTimeOfDay(from)
		require.NoError(t, err)
		endsAt, err := schedule.ParseTimeOfDay(to)
		require.NoError(t, err)
		return reservation.Session{Day: time.Monday, StartsAt: startsAt, EndsAt: endsAt}
	}

	t.Run("persists every occurrence", func(t *testing.T) {
		store := newFakeStore()
		uc := newTestCommands(store)

		tpl := tpl
		tpl.Sessions = []reservation.Session{mondaySession(t, "10:00", "12:00")}

		views, err := uc.CreateClassSchedule(ctx, tpl, userID)
		require.NoError(t, err)
		assert.Len(t, views, 3)
		assert.Len(t, store.reservations, 3)
		for _, v := range views {
			assert.Equal(t, reservation.StateAccepted.String(), v.State)
			assert.Equal(t, reservation.KindWeekly.String(), v.Kind)
		}
	})

	t.Run("all or nothing on conflict with stored reservations", func(t *testing.T) {
		store := newFakeStore()
		uc := newTestCommands(store)

		// Occupy the second Monday.
		existing := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.StartsAt = time.Date(2025, 1, 13, 11, 0, 0, 0, time.UTC)
			b.EndsAt = time.Date(2025, 1, 13, 13, 0, 0, 0, time.UTC)
		})
		_, err := uc.CreateSingle(ctx, existing.BuildInput(), existing.UserID)
		require.NoError(t, err)

		tpl := tpl
		tpl.Sessions = []reservation.Session{mondaySession(t, "10:00", "12:00")}

		_, err = uc.CreateClassSchedule(ctx, tpl, userID)
		assert.True(t, errs.Is(err, commands.ErrRoomOccupied))
		assert.Len(t, store.reservations, 1, "no occurrence may be written on conflict")
	})

	t.Run("template conflicting with itself is refused", func(t *testing.T) {
		store := newFakeStore()
		uc := newTestCommands(store)

		tpl := tpl
		tpl.Sessions = []reservation.Session{
			mondaySession(t, "10:00", "12:00"),
			mondaySession(t, "11:00", "13:00"),
		}

		_, err := uc.CreateClassSchedule(ctx, tpl, userID)
		assert.True(t, errs.Is(err, commands.ErrRoomOccupied))
		assert.Empty(t, store.reservations)
	})
}

func TestUpdateState(t *testing.T) {
	ctx := context.Background()

	t.Run("accepting notifies the owner", func(t *testing.T) {
		store := newFakeStore()
		uc := newTestCommands(store)
		b := builder.NewReservationBuilder()

		created, err := uc.CreateSingle(ctx, b.BuildInput(), b.UserID)
		require.NoError(t, err)

		view, err := uc.UpdateState(ctx, created.ID, reservation.StateAccepted)
		require.NoError(t, err)
		assert.Equal(t, reservation.StateAccepted.String(), view.State)

		require.Len(t, store.notifications, 2) // admin broadcast + decision
		decision := store.notifications[1]
		assert.Equal(t, notification.TypePrivate, decision.Type)
		require.NotNil(t, decision.ReceiverID)
		assert.Equal(t, b.UserID, *decision.ReceiverID)
		assert.Contains(t, decision.Message, "accepted")
	})

	t.Run("rejecting uses the rejection wording", func(t *testing.T) {
		store := newFakeStore()
		uc := newTestCommands(store)
		b := builder.NewReservationBuilder()

		created, err := uc.CreateSingle(ctx, b.BuildInput(), b.UserID)
		require.NoError(t, err)

		_, err = uc.UpdateState(ctx, created.ID, reservation.StateRejected)
		require.NoError(t, err)

		decision := store.notifications[len(store.notifications)-1]
		assert.Contains(t, decision.Message, "rejected")
	})

	t.Run("invalid transition leaves state and notifications untouched", func(t *testing.T) {
		store := newFakeStore()
		uc := newTestCommands(store)
		b := builder.NewReservationBuilder()

		created, err := uc.CreateSingle(ctx, b.BuildInput(), b.UserID)
		require.NoError(t, err)
		_, err = uc.UpdateState(ctx, created.ID, reservation.StateRejected)
		require.NoError(t, err)

		_, err = uc.UpdateState(ctx, created.ID, reservation.StateAccepted)
		assert.True(t, errs.Is(err, commands.ErrInvalidStateTransition))

		current, err := uc.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, reservation.StateRejected.String(), current.State)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		store := newFakeStore()
		uc := newTestCommands(store)

		_, err := uc.UpdateState(ctx, uuid.New(), reservation.StateAccepted)
		assert.True(t, errs.Is(err, commands.ErrReservationNotFound))
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("patches only the provided fields", func(t *testing.T) {
		store := newFakeStore()
		uc := newTestCommands(store)
		b := builder.NewReservationBuilder()

		created, err := uc.CreateSingle(ctx, b.BuildInput(), b.UserID)
		require.NoError(t, err)

		name := "Calculus Review"
		view, err := uc.Update(ctx, created.ID, reservation.Patch{ActivityName: &name})
		require.NoError(t, err)

		assert.Equal(t, "Calculus Review", view.ActivityName)
		assert.Equal(t, created.StartsAt, view.StartsAt)
	})

	t.Run("moving to an unknown room is refused", func(t *testing.T) {
		store := newFakeStore()
		uc := newTestCommands(store)
		b := builder.NewReservationBuilder()

		created, err := uc.CreateSingle(ctx, b.BuildInput(), b.UserID)
		require.NoError(t, err)

		bogus := room.ID(99999)
		_, err = uc.Update(ctx, created.ID, reservation.Patch{RoomID: &bogus})
		assert.True(t, errs.Is(err, commands.ErrRoomNotFound))
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	uc := newTestCommands(store)
	b := builder.NewReservationBuilder()

	created, err := uc.CreateSingle(ctx, b.BuildInput(), b.UserID)
	require.NoError(t, err)

	view, err := uc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, view.ID)
	assert.Empty(t, store.reservations)

	_, err = uc.Delete(ctx, created.ID)
	assert.True(t, errs.Is(err, commands.ErrReservationNotFound))
}
