package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	rs "github.com/hanksha/padel-booking-backend/reservation"
)

//go:generate mockgen -source=stats_handler.go -destination=mocks/mock_stats_service.go -package=mocks

type StatsService interface {
	GetReservationCountPerCourt(ctx context.Context) ([]rs.CourtReservationCount, error)
	GetReservationCountPerWeekDay(ctx context.Context) ([]rs.WeekDayReservationCount, error)
	GetCourtStatsInPeriod(ctx context.Context, start, end time.Time) ([]rs.CourtPeriodStats, error)
}

type StatsHandler struct {
	service StatsService
}

func NewStatsHandler(service StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

func (h *StatsHandler) Register(rg *gin.RouterGroup, authenticate gin.HandlerFunc) {
	rg.Use(authenticate, AdminOnly())
	rg.GET("/courts", h.GetCourtStats)
	rg.GET("/days", h.GetWeekDayStats)
	rg.GET("/period", h.GetPeriodStats)
}

func (h *StatsHandler) GetCourtStats(c *gin.Context) {
	stats, err := h.service.GetReservationCountPerCourt(c.Request.Context())

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get stats"})
		return
	}

	c.IndentedJSON(http.StatusOK, stats)
}

func (h *StatsHandler) GetWeekDayStats(c *gin.Context) {
	stats, err := h.service.GetReservationCountPerWeekDay(c.Request.Context())

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get stats"})
		return
	}

	c.IndentedJSON(http.StatusOK, stats)
}

func (h *StatsHandler) GetPeriodStats(c *gin.Context) {
	startTime, err := rs.ParseDate(c.Query("startPeriod"))

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse startPeriod"})
		return
	}

	endTime, err := rs.ParseDate(c.Query("endPeriod"))

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse endPeriod"})
		return
	}

	stats, err := h.service.GetCourtStatsInPeriod(c.Request.Context(), startTime, endTime)

	if err != nil {
		respondError(c, err, "failed to get stats")
		return
	}

	c.IndentedJSON(http.StatusOK, stats)
}
