package reservation

import (
	"time"

	"campus-rooms/internal/domain/room"
)

// Conflicts reports whether existing blocks a candidate booking of
// [candidateStart, candidateEnd) in roomID. Reservations in other rooms and
// CANCELLED reservations never conflict. Overlap is half-open: touching
// intervals (one ends exactly when the other starts) do not conflict.
func Conflicts(existing *Reservation, roomID room.ID, candidateStart, candidateEnd time.Time) bool {
	if existing.RoomID() != roomID || existing.State() == StateCancelled {
		return false
	}
	return existing.StartsAt().Before(candidateEnd) && existing.EndsAt().After(candidateStart)
}

// FindConflict returns the first reservation in existing that conflicts with
// the candidate interval, or nil.
func FindConflict(existing []*Reservation, roomID room.ID, candidateStart, candidateEnd time.Time) *Reservation {
	for _, rsv := range existing {
		if Conflicts(rsv, roomID, candidateStart, candidateEnd) {
			return rsv
		}
	}
	return nil
}
