//go:build unit

package notification_test

import (
	"testing"
	"time"

	"campus-rooms/internal/domain/notification"
	"campus-rooms/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdminBroadcast(t *testing.T) {
	now := time.Now()
	n := notification.NewAdminBroadcast(notification.RequestedMessage("1", "201"), now)

	assert.Equal(t, notification.TypeAdmin, n.Type)
	assert.Nil(t, n.ReceiverID, "broadcasts carry no receiver")
	assert.Equal(t, now, n.Timestamp)
	assert.Contains(t, n.Message, "1-201")
}

func TestNewPrivate(t *testing.T) {
	now := time.Now()
	receiver := uuid.New()
	n := notification.NewPrivate(receiver, "hello", now)

	assert.Equal(t, notification.TypePrivate, n.Type)
	require.NotNil(t, n.ReceiverID)
	assert.Equal(t, receiver, *n.ReceiverID)
}

func TestDecisionMessage(t *testing.T) {
	cases := []struct {
		state reservation.State
		want  string
	}{
		{reservation.StateAccepted, "accepted"},
		{reservation.StateRejected, "rejected"},
		{reservation.StateCancelled, "cancelled"},
		{reservation.StatePending, "awaiting review"},
	}
	for _, tc := range cases {
		t.Run(tc.state.String(), func(t *testing.T) {
			msg := notification.DecisionMessage(tc.state, "1", "201")
			assert.Contains(t, msg, tc.want)
			assert.Contains(t, msg, "1-201")
		})
	}
}
