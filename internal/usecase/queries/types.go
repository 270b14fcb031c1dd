package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID                  uuid.UUID `json:"id"`
	ActivityName        string    `json:"activity_name"`
	ActivityDescription string    `json:"activity_description"`
	StartsAt            time.Time `json:"starts_at"`
	EndsAt              time.Time `json:"ends_at"`
	Kind                string    `json:"kind"`
	State               string    `json:"state"`
	RoomID              int64     `json:"room_id"`
	RoomName            string    `json:"room_name"`
	UserID              uuid.UUID `json:"user_id"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type RoomView struct {
	ID       int64  `json:"id"`
	Building string `json:"building"`
	RoomNum  string `json:"room_num"`
	SubRoom  int    `json:"sub_room"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}
