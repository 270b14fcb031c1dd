//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"campus-rooms/internal/domain/reservation"
	"campus-rooms/internal/domain/room"
	"campus-rooms/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookedInState(t *testing.T, state reservation.State, fromHour, toHour int) *reservation.Reservation {
	t.Helper()
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	b := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.StartsAt = day.Add(time.Duration(fromHour) * time.Hour)
		b.EndsAt = day.Add(time.Duration(toHour) * time.Hour)
	})
	rsv, err := b.BuildDomain()
	require.NoError(t, err)
	if state != reservation.StatePending {
		require.NoError(t, rsv.Transition(state))
	}
	return rsv
}

func TestConflicts(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	roomID := room.ID(12010)

	t.Run("overlapping interval conflicts", func(t *testing.T) {
		existing := bookedInState(t, reservation.StatePending, 14, 15)

		start := day.Add(14*time.Hour + 30*time.Minute)
		end := day.Add(15*time.Hour + 30*time.Minute)
		assert.True(t, reservation.Conflicts(existing, roomID, start, end))
	})

	t.Run("touching intervals do not conflict", func(t *testing.T) {
		existing := bookedInState(t, reservation.StatePending, 14, 15)

		assert.False(t, reservation.Conflicts(existing, roomID, day.Add(15*time.Hour), day.Add(16*time.Hour)))
		assert.False(t, reservation.Conflicts(existing, roomID, day.Add(13*time.Hour), day.Add(14*time.Hour)))
	})

	t.Run("different room never conflicts", func(t *testing.T) {
		existing := bookedInState(t, reservation.StatePending, 14, 15)

		assert.False(t, reservation.Conflicts(existing, room.ID(22010), day.Add(14*time.Hour), day.Add(15*time.Hour)))
	})

	t.Run("only cancelled releases the slot", func(t *testing.T) {
		start := day.Add(14 * time.Hour)
		end := day.Add(15 * time.Hour)

		assert.True(t, reservation.Conflicts(bookedInState(t, reservation.StatePending, 14, 15), roomID, start, end))
		assert.True(t, reservation.Conflicts(bookedInState(t, reservation.StateAccepted, 14, 15), roomID, start, end))
		// A rejected reservation still holds its slot against new writes.
		assert.True(t, reservation.Conflicts(bookedInState(t, reservation.StateRejected, 14, 15), roomID, start, end))
		assert.False(t, reservation.Conflicts(bookedInState(t, reservation.StateCancelled, 14, 15), roomID, start, end))
	})
}

func TestFindConflict(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	roomID := room.ID(12010)

	existing := []*reservation.Reservation{
		bookedInState(t, reservation.StatePending, 8, 9),
		bookedInState(t, reservation.StateAccepted, 14, 15),
	}

	t.Run("returns the conflicting reservation", func(t *testing.T) {
		hit := reservation.FindConflict(existing, roomID, day.Add(14*time.Hour), day.Add(16*time.Hour))
		require.NotNil(t, hit)
		assert.Equal(t, existing[1].ID(), hit.ID())
	})

	t.Run("nil when the slot is free", func(t *testing.T) {
		hit := reservation.FindConflict(existing, roomID, day.Add(10*time.Hour), day.Add(12*time.Hour))
		assert.Nil(t, hit)
	})
}
