package notification

import (
	"fmt"
	"time"

	"campus-rooms/internal/domain/reservation"

	"github.com/google/uuid"
)

// Type addresses a notification: ADMIN rows broadcast to operators and carry
// no receiver, PRIVATE rows target the owning user.
type Type string

const (
	TypeAdmin   Type = "ADMIN"
	TypePrivate Type = "PRIVATE"
)

// Notification is a persisted message. Delivery is fire-and-forget from the
// scheduling core's point of view; a failed send never rolls back the
// reservation write that produced it.
type Notification struct {
	ID         uuid.UUID
	ReceiverID *uuid.UUID
	Message    string
	Type       Type
	Timestamp  time.Time
}

// NewAdminBroadcast builds an operator-facing notification with no receiver.
func NewAdminBroadcast(message string, at time.Time) *Notification {
	return &Notification{
		ID:        uuid.New(),
		Message:   message,
		Type:      TypeAdmin,
		Timestamp: at,
	}
}

// NewPrivate builds a notification addressed to a single user.
func NewPrivate(receiverID uuid.UUID, message string, at time.Time) *Notification {
	return &Notification{
		ID:         uuid.New(),
		ReceiverID: &receiverID,
		Message:    message,
		Type:       TypePrivate,
		Timestamp:  at,
	}
}

// RequestedMessage is the operator-facing wording for a new booking request.
func RequestedMessage(building, roomNum string) string {
	return fmt.Sprintf("A new reservation was requested for room %s-%s", building, roomNum)
}

// DecisionMessage maps a lifecycle transition to the wording sent to the
// reservation owner. Every state is listed on purpose; a new state must pick
// its wording here before it can be shipped.
func DecisionMessage(next reservation.State, building, roomNum string) string {
	switch next {
	case reservation.StateAccepted:
		return fmt.Sprintf("Your reservation for room %s-%s was accepted", building, roomNum)
	case reservation.StateRejected:
		return fmt.Sprintf("Your reservation for room %s-%s was rejected", building, roomNum)
	case reservation.StateCancelled:
		return fmt.Sprintf("Your reservation for room %s-%s was cancelled", building, roomNum)
	case reservation.StatePending:
		return fmt.Sprintf("Your reservation for room %s-%s is awaiting review", building, roomNum)
	}
	return ""
}
