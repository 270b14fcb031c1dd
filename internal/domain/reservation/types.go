package reservation

// State is the lifecycle state of a reservation. It is stored by value on
// the reservation row; the set is fixed and queried by exact match.
type State string

const (
	StatePending   State = "pending"
	StateAccepted  State = "accepted"
	StateRejected  State = "rejected"
	StateCancelled State = "cancelled"
)

func (s State) String() string {
	return string(s)
}

func (s State) IsValid() bool {
	switch s {
	case StatePending, StateAccepted, StateRejected, StateCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed out of s.
// ACCEPTED is not terminal: an accepted reservation can still be cancelled.
func (s State) IsTerminal() bool {
	return s == StateRejected || s == StateCancelled
}

// Blocks reports whether a reservation in this state occupies its slot for
// availability purposes. Only PENDING and ACCEPTED block the grid.
func (s State) Blocks() bool {
	return s == StatePending || s == StateAccepted
}

// CanTransitionTo encodes the lifecycle table:
//
//	PENDING  -> ACCEPTED | REJECTED | CANCELLED
//	ACCEPTED -> CANCELLED
//	REJECTED, CANCELLED -> (terminal)
func (s State) CanTransitionTo(next State) bool {
	switch s {
	case StatePending:
		return next == StateAccepted || next == StateRejected || next == StateCancelled
	case StateAccepted:
		return next == StateCancelled
	case StateRejected, StateCancelled:
		return false
	default:
		return false
	}
}

// Kind distinguishes one-off bookings from weekly class occurrences. A
// WEEKLY reservation is a single concrete occurrence; there is no entity
// representing the whole series.
type Kind string

const (
	KindOnce   Kind = "once"
	KindWeekly Kind = "weekly"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	return k == KindOnce || k == KindWeekly
}
