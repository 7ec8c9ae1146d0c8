package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/padel-booking-backend/api"
	mock_api "github.com/hanksha/padel-booking-backend/api/mocks"
	"github.com/hanksha/padel-booking-backend/auth"
	rs "github.com/hanksha/padel-booking-backend/reservation"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupStatsRouter(t *testing.T, principal auth.Principal) (*gin.Engine, *gomock.Controller, *mock_api.MockStatsService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	mockService := mock_api.NewMockStatsService(ctrl)
	handler := api.NewStatsHandler(mockService)
	handler.Register(router.Group("/api/v1/stats"), setPrincipalInContext(principal))

	return router, ctrl, mockService
}

func TestCourtStats(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupStatsRouter(t, admin)
		defer ctrl.Finish()

		stats := []rs.CourtReservationCount{{CourtID: 1, CourtName: "Pista 1", Count: 12}}
		mockService.EXPECT().GetReservationCountPerCourt(gomock.Any()).Return(stats, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/stats/courts", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `[{"courtId":1,"courtName":"Pista 1","reservationCount":12}]`, w.Body.String())
	})

	t.Run("not admin", func(t *testing.T) {
		router, ctrl, mockService := setupStatsRouter(t, player)
		defer ctrl.Finish()

		mockService.EXPECT().GetReservationCountPerCourt(gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/stats/courts", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 403, w.Code)
	})

	t.Run("repo error", func(t *testing.T) {
		router, ctrl, mockService := setupStatsRouter(t, admin)
		defer ctrl.Finish()

		mockService.EXPECT().GetReservationCountPerCourt(gomock.Any()).Return(nil, assert.AnError).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/stats/courts", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 500, w.Code)
		assert.JSONEq(t, `{"error":"failed to get stats"}`, w.Body.String())
	})
}

func TestWeekDayStats(t *testing.T) {
	router, ctrl, mockService := setupStatsRouter(t, admin)
	defer ctrl.Finish()

	stats := []rs.WeekDayReservationCount{{WeekDay: "Monday", Count: 3}, {WeekDay: "Sunday", Count: 9}}
	statsJson, _ := json.MarshalIndent(stats, "", "    ")
	mockService.EXPECT().GetReservationCountPerWeekDay(gomock.Any()).Return(stats, nil).Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/stats/days", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, string(statsJson), w.Body.String())
}

func TestPeriodStats(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupStatsRouter(t, admin)
		defer ctrl.Finish()

		start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
		stats := []rs.CourtPeriodStats{{CourtID: 1, CourtName: "Pista 1", Count: 4, Revenue: 96}}
		mockService.EXPECT().GetCourtStatsInPeriod(gomock.Any(), start, end).Return(stats, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/stats/period?startPeriod=2025-06-01&endPeriod=2025-06-30", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `[{"courtId":1,"courtName":"Pista 1","reservationCount":4,"revenue":96}]`, w.Body.String())
	})

	t.Run("missing start", func(t *testing.T) {
		router, ctrl, mockService := setupStatsRouter(t, admin)
		defer ctrl.Finish()

		mockService.EXPECT().GetCourtStatsInPeriod(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/stats/period?endPeriod=2025-06-30", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"failed to parse startPeriod"}`, w.Body.String())
	})

	t.Run("invalid end", func(t *testing.T) {
		router, ctrl, mockService := setupStatsRouter(t, admin)
		defer ctrl.Finish()

		mockService.EXPECT().GetCourtStatsInPeriod(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/stats/period?startPeriod=2025-06-01&endPeriod=june", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"failed to parse endPeriod"}`, w.Body.String())
	})

	t.Run("inverted period", func(t *testing.T) {
		router, ctrl, mockService := setupStatsRouter(t, admin)
		defer ctrl.Finish()

		mockService.EXPECT().GetCourtStatsInPeriod(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, rs.ErrInvalidDate).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/stats/period?startPeriod=2025-06-30&endPeriod=2025-06-01", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
	})
}
