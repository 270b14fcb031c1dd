package response

import "campus-rooms/internal/usecase/queries"

type RoomResponse struct {
	ID       int64  `json:"id"`
	Building string `json:"building"`
	RoomNum  string `json:"roomNum"`
	SubRoom  int    `json:"subRoom"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

func FromRoomView(rm *queries.RoomView) *RoomResponse {
	return &RoomResponse{
		ID:       rm.ID,
		Building: rm.Building,
		RoomNum:  rm.RoomNum,
		SubRoom:  rm.SubRoom,
		Name:     rm.Name,
		Capacity: rm.Capacity,
	}
}
