//go:build unit

package room_test

import (
	"testing"

	"campus-rooms/internal/domain/room"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveID(t *testing.T) {
	t.Run("concatenates building, room number and sub room", func(t *testing.T) {
		id, err := room.DeriveID("1", "201", 0)
		require.NoError(t, err)
		assert.Equal(t, int64(12010), id.Int64())
	})

	t.Run("sub rooms of one room get distinct ids", func(t *testing.T) {
		a, err := room.DeriveID("4", "105", 1)
		require.NoError(t, err)
		b, err := room.DeriveID("4", "105", 2)
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("non numeric parts fail", func(t *testing.T) {
		_, err := room.DeriveID("A", "201", 0)
		assert.Error(t, err)
	})
}

func TestParseID(t *testing.T) {
	id, err := room.ParseID("12010")
	require.NoError(t, err)
	assert.Equal(t, room.ID(12010), id)

	_, err = room.ParseID("main-hall")
	assert.Error(t, err)
}
