//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"campus-rooms/internal/domain/room"
	"campus-rooms/internal/domain/schedule"
	"campus-rooms/internal/handler/api"
	resdto "campus-rooms/internal/handler/dto/response"
	"campus-rooms/internal/usecase/queries"
	"campus-rooms/tests/common/builder"
	"campus-rooms/tests/common/httptest"
	queriesmock "campus-rooms/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockRooms        *queriesmock.MockRoomQueries
	mockReservations *queriesmock.MockReservationQueries
	handler          *api.RoomHandler
}

func (s *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockRooms = queriesmock.NewMockRoomQueries(s.mockCtrl)
	s.mockReservations = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewRoomHandler(s.mockRooms, s.mockReservations)

	s.router.GET("/rooms", s.handler.ListRooms)
	s.router.GET("/rooms/:id", s.handler.GetRoom)
	s.router.GET("/rooms/:id/reservations", s.handler.GetRoomReservations)
	s.router.GET("/rooms/:id/free-start-times", s.handler.GetFreeStartTimes)
	s.router.GET("/rooms/:id/free-end-times", s.handler.GetFreeEndTimes)
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

func timesOfDay(s *RoomHandlerTestSuite, values ...string) []schedule.TimeOfDay {
	out := make([]schedule.TimeOfDay, len(values))
	for i, v := range values {
		tod, err := schedule.ParseTimeOfDay(v)
		s.Require().NoError(err)
		out[i] = tod
	}
	return out
}

// ================================================================================
// TestGetRoom
// ================================================================================

func (s *RoomHandlerTestSuite) TestGetRoom() {
	roomView := builder.NewRoomBuilder().BuildView()
	url := "/rooms/12010"

	s.Run("success: returns 200 OK with RoomResponse", func() {
		s.mockRooms.EXPECT().GetByID(gomock.Any(), room.ID(12010)).
			Return(roomView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(roomView.ID, response.ID)
		s.Equal(roomView.Name, response.Name)
	})

	s.Run("error: 400 Bad Request for a non numeric id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/main-hall", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid room ID")
	})

	s.Run("error: 404 Not Found for a missing room", func() {
		s.mockRooms.EXPECT().GetByID(gomock.Any(), room.ID(12010)).
			Return(nil, notFound("room not found")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})
}

// ================================================================================
// TestListRooms
// ================================================================================

func (s *RoomHandlerTestSuite) TestListRooms() {
	s.Run("success: lists rooms", func() {
		views := []*queries.RoomView{builder.NewRoomBuilder().BuildView()}
		s.mockRooms.EXPECT().ListAll(gomock.Any()).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms", nil, "")

		var response []resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})
}

// ================================================================================
// TestGetRoomReservations
// ================================================================================

func (s *RoomHandlerTestSuite) TestGetRoomReservations() {
	s.Run("success: lists the room's visible reservations", func() {
		views := []*queries.ReservationView{builder.NewReservationBuilder().BuildView()}
		s.mockReservations.EXPECT().ListByRoom(gomock.Any(), room.ID(12010)).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/12010/reservations", nil, "")

		var response []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})
}

// ================================================================================
// TestGetFreeStartTimes
// ================================================================================

func (s *RoomHandlerTestSuite) TestGetFreeStartTimes() {
	url := "/rooms/12010/free-start-times?date=2025-03-10"
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	s.Run("success: returns the free grid points", func() {
		free := timesOfDay(s, "06:00", "07:00", "12:00")
		s.mockReservations.EXPECT().FreeStartTimes(gomock.Any(), room.ID(12010), day).
			Return(free, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.FreeTimesResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(12010), response.RoomID)
		s.Equal("2025-03-10", response.Date)
		s.Equal([]string{"06:00", "07:00", "12:00"}, response.Times)
	})

	s.Run("error: 400 Bad Request on missing or malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/12010/free-start-times?date=03/10/2025", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date format")
	})

	s.Run("error: 404 Not Found for a missing room", func() {
		s.mockReservations.EXPECT().FreeStartTimes(gomock.Any(), room.ID(12010), day).
			Return(nil, notFound("room not found")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})
}

// ================================================================================
// TestGetFreeEndTimes
// ================================================================================

func (s *RoomHandlerTestSuite) TestGetFreeEndTimes() {
	url := "/rooms/12010/free-end-times?date=2025-03-10&start=09:00"
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	s.Run("success: returns the reachable end points", func() {
		start := timesOfDay(s, "09:00")[0]
		free := timesOfDay(s, "10:00")
		s.mockReservations.EXPECT().FreeEndTimes(gomock.Any(), room.ID(12010), day, start).
			Return(free, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.FreeTimesResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal([]string{"10:00"}, response.Times)
	})

	s.Run("error: 400 Bad Request on malformed start time", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/12010/free-end-times?date=2025-03-10&start=9am", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid start time")
	})
}
