package response

import (
	"time"

	"campus-rooms/internal/domain/schedule"
	"campus-rooms/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID                  uuid.UUID `json:"id"`
	ActivityName        string    `json:"activityName"`
	ActivityDescription string    `json:"activityDescription"`
	StartsAt            time.Time `json:"startsAt"`
	EndsAt              time.Time `json:"endsAt"`
	Kind                string    `json:"kind"`
	State               string    `json:"state"`
	RoomID              int64     `json:"roomId"`
	RoomName            string    `json:"roomName"`
	UserID              uuid.UUID `json:"userId"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:                  rm.ID,
		ActivityName:        rm.ActivityName,
		ActivityDescription: rm.ActivityDescription,
		StartsAt:            rm.StartsAt,
		EndsAt:              rm.EndsAt,
		Kind:                rm.Kind,
		State:               rm.State,
		RoomID:              rm.RoomID,
		RoomName:            rm.RoomName,
		UserID:              rm.UserID,
		CreatedAt:           rm.CreatedAt,
		UpdatedAt:           rm.UpdatedAt,
	}
}

func FromReservationViews(rms []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromReservationView(rm)
	}
	return out
}

// FreeTimesResponse lists grid points as "HH:mm" strings.
type FreeTimesResponse struct {
	RoomID int64    `json:"roomId"`
	Date   string   `json:"date"`
	Times  []string `json:"times"`
}

func NewFreeTimesResponse(roomID int64, date time.Time, times []schedule.TimeOfDay) *FreeTimesResponse {
	formatted := make([]string, len(times))
	for i, t := range times {
		formatted[i] = t.String()
	}
	return &FreeTimesResponse{
		RoomID: roomID,
		Date:   date.Format("2006-01-02"),
		Times:  formatted,
	}
}
