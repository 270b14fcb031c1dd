//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"campus-rooms/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		tod, err := schedule.ParseTimeOfDay("09:30")
		require.NoError(t, err)
		assert.Equal(t, 9, tod.Hour())
		assert.Equal(t, 30, tod.Minute())
		assert.Equal(t, "09:30", tod.String())
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := schedule.ParseTimeOfDay("9.30am")
		assert.Error(t, err)
	})
}

func TestTimeOfDayAt(t *testing.T) {
	day := time.Date(2025, 3, 10, 17, 45, 12, 99, time.UTC)
	tod, err := schedule.NewTimeOfDay(8, 0)
	require.NoError(t, err)

	at := tod.At(day)
	assert.Equal(t, time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC), at)
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, 3, 10, 6, 0, 0, 0, time.UTC)
	assert.True(t, schedule.SameDay(a, a.Add(15*time.Hour)))
	assert.False(t, schedule.SameDay(a, a.Add(24*time.Hour)))
}

func TestNextWeekday(t *testing.T) {
	// 2025-01-01 is a Wednesday.
	wednesday := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("strictly after when asked for the same weekday", func(t *testing.T) {
		next := schedule.NextWeekday(wednesday, time.Wednesday)
		assert.Equal(t, time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC), next)
	})

	t.Run("next occurrence of a later weekday", func(t *testing.T) {
		next := schedule.NextWeekday(wednesday, time.Monday)
		assert.Equal(t, time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), next)
	})

	t.Run("next occurrence of an earlier weekday wraps the week", func(t *testing.T) {
		next := schedule.NextWeekday(wednesday, time.Tuesday)
		assert.Equal(t, time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC), next)
	})
}
