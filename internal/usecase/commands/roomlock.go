package commands

import (
	"sync"

	"campus-rooms/internal/domain/room"
)

// roomLocker serializes writers per room so the check-then-act window between
// the conflict scan and the insert cannot interleave two requests for the
// same room. The storage exclusion constraint backs this up across processes.
type roomLocker struct {
	mu    sync.Mutex
	locks map[room.ID]*sync.Mutex
}

func newRoomLocker() *roomLocker {
	return &roomLocker{locks: make(map[room.ID]*sync.Mutex)}
}

// Lock acquires the mutex for roomID and returns its unlock func.
func (l *roomLocker) Lock(roomID room.ID) func() {
	l.mu.Lock()
	m, ok := l.locks[roomID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[roomID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
