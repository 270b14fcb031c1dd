package room

import (
	"errors"
	"fmt"
	"strconv"
)

var ErrInvalidRoomID = errors.New("invalid room id")

// ID identifies a room. It is derived deterministically from the building
// code, room number and sub-room index by integer concatenation, matching
// the catalog service that owns room CRUD. The scheduling core never
// recomputes an existing id, it only carries it around.
type ID int64

// DeriveID builds a room id from its catalog coordinates.
func DeriveID(building, roomNum string, subRoom int) (ID, error) {
	raw := fmt.Sprintf("%s%s%d", building, roomNum, subRoom)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, ErrInvalidRoomID
	}
	return ID(id), nil
}

func ParseID(s string) (ID, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidRoomID
	}
	return ID(id), nil
}

func (id ID) Int64() int64   { return int64(id) }
func (id ID) String() string { return strconv.FormatInt(int64(id), 10) }
