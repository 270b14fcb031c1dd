package api

import (
	"net/http"
	"time"

	"campus-rooms/internal/domain/room"
	"campus-rooms/internal/domain/schedule"
	resdto "campus-rooms/internal/handler/dto/response"
	"campus-rooms/internal/handler/httperr"
	"campus-rooms/internal/infra"
	"campus-rooms/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	rooms        queries.RoomQueries
	reservations queries.ReservationQueries
}

func NewRoomHandler(rooms queries.RoomQueries, reservations queries.ReservationQueries) *RoomHandler {
	return &RoomHandler{
		rooms:        rooms,
		reservations: reservations,
	}
}

// @Summary List rooms
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RoomResponse
// @Failure 401 {object} map[string]string
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	views, err := h.rooms.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	out := make([]*resdto.RoomResponse, len(views))
	for i, v := range views {
		out[i] = resdto.FromRoomView(v)
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	roomID, ok := parseRoomID(c)
	if !ok {
		return
	}

	view, err := h.rooms.GetByID(c.Request.Context(), roomID)
	if err != nil {
		writeRoomQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary Get room reservations
// @Description List a room's reservations, hiding rejected and cancelled ones
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /rooms/{id}/reservations [get]
func (h *RoomHandler) GetRoomReservations(c *gin.Context) {
	roomID, ok := parseRoomID(c)
	if !ok {
		return
	}

	views, err := h.reservations.ListByRoom(c.Request.Context(), roomID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary Get free start times
// @Description Hourly grid points of a day where a reservation could start
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.FreeTimesResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id}/free-start-times [get]
func (h *RoomHandler) GetFreeStartTimes(c *gin.Context) {
	roomID, ok := parseRoomID(c)
	if !ok {
		return
	}
	day, ok := parseDate(c)
	if !ok {
		return
	}

	times, err := h.reservations.FreeStartTimes(c.Request.Context(), roomID, day)
	if err != nil {
		writeRoomQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.NewFreeTimesResponse(roomID.Int64(), day, times))
}

// @Summary Get free end times
// @Description Grid points a reservation starting at the given time could end at
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param start query string true "Chosen start time (HH:mm)"
// @Success 200 {object} resdto.FreeTimesResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id}/free-end-times [get]
func (h *RoomHandler) GetFreeEndTimes(c *gin.Context) {
	roomID, ok := parseRoomID(c)
	if !ok {
		return
	}
	day, ok := parseDate(c)
	if !ok {
		return
	}

	start, err := schedule.ParseTimeOfDay(c.Query("start"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid start time format, expected HH:mm", nil)
		return
	}

	times, err := h.reservations.FreeEndTimes(c.Request.Context(), roomID, day, start)
	if err != nil {
		writeRoomQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.NewFreeTimesResponse(roomID.Int64(), day, times))
}

func parseRoomID(c *gin.Context) (room.ID, bool) {
	id, err := room.ParseID(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room ID format", nil)
		return 0, false
	}
	return id, true
}

func parseDate(c *gin.Context) (time.Time, bool) {
	day, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format, expected YYYY-MM-DD", nil)
		return time.Time{}, false
	}
	return day, true
}

func writeRoomQueryError(c *gin.Context, err error) {
	if infraNotFound(err) {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func infraNotFound(err error) bool {
	return infra.IsKind(err, infra.KindNotFound)
}
