package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/padel-booking-backend/auth"
	rs "github.com/hanksha/padel-booking-backend/reservation"
)

//go:generate mockgen -source=reservation_handler.go -destination=mocks/mock_reservation_service.go -package=mocks

type ReservationService interface {
	GetReservations(ctx context.Context, filter rs.Filter) ([]rs.Reservation, error)
	GetUserReservations(ctx context.Context, userID int64) ([]rs.Reservation, error)
	GetReservationByID(ctx context.Context, id int64, principal auth.Principal) (rs.Reservation, error)
	CreateReservation(ctx context.Context, req rs.Request, principal auth.Principal) (rs.Reservation, error)
	CancelReservation(ctx context.Context, id int64, principal auth.Principal) error
	CompleteReservation(ctx context.Context, id int64) error
	DeleteReservation(ctx context.Context, id int64) error
}

type ReservationHandler struct {
	service ReservationService
}

func NewReservationHandler(service ReservationService) *ReservationHandler {
	return &ReservationHandler{service: service}
}

type reservationBody struct {
	CourtID   int64    `json:"courtId"`
	UserID    *int64   `json:"userId"`
	StartTime string   `json:"startTime"`
	Duration  int      `json:"duration"`
	Price     *float64 `json:"price"`
	Status    string   `json:"status"`
}

func (h *ReservationHandler) Register(rg *gin.RouterGroup, authenticate gin.HandlerFunc) {
	adminOnly := AdminOnly()
	rg.Use(authenticate)
	rg.GET("", adminOnly, h.List)
	rg.GET("/me", h.ListMine)
	rg.GET("/:id", h.GetByID)
	rg.POST("", h.Create)
	rg.PUT("/:id/cancel", h.Cancel)
	rg.PUT("/:id/complete", adminOnly, h.Complete)
	rg.DELETE("/:id", adminOnly, h.Delete)
}

// List filters on the optional courtId, date and status query parameters.
func (h *ReservationHandler) List(c *gin.Context) {
	var filter rs.Filter

	if q := c.Query("courtId"); len(q) != 0 {
		courtID, err := strconv.ParseInt(q, 10, 64)

		if err != nil {
			c.Error(err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse courtId"})
			return
		}

		filter.CourtID = courtID
	}

	if q := c.Query("date"); len(q) != 0 {
		date, err := rs.ParseDate(q)

		if err != nil {
			c.Error(err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse date"})
			return
		}

		filter.Date = date
	}

	filter.Status = rs.Status(c.Query("status"))

	reservations, err := h.service.GetReservations(c.Request.Context(), filter)

	if err != nil {
		respondError(c, err, "failed to retrieve reservations")
		return
	}

	c.IndentedJSON(http.StatusOK, reservations)
}

func (h *ReservationHandler) ListMine(c *gin.Context) {
	principal := principalFrom(c)
	reservations, err := h.service.GetUserReservations(c.Request.Context(), principal.UserID)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to get reservations",
		})
		return
	}

	c.IndentedJSON(http.StatusOK, reservations)
}

func (h *ReservationHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c)

	if !ok {
		return
	}

	reservation, err := h.service.GetReservationByID(c.Request.Context(), id, principalFrom(c))

	if err != nil {
		respondError(c, err, "failed to fetch reservation")
		return
	}

	c.IndentedJSON(http.StatusOK, reservation)
}

func (h *ReservationHandler) Create(c *gin.Context) {
	var body reservationBody

	if err := c.BindJSON(&body); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	startTime, err := rs.ParseStartTime(body.StartTime)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse startTime"})
		return
	}

	req := rs.Request{
		CourtID:   body.CourtID,
		UserID:    body.UserID,
		StartTime: startTime,
		Duration:  body.Duration,
		Price:     body.Price,
		Status:    rs.Status(body.Status),
	}

	inserted, err := h.service.CreateReservation(c.Request.Context(), req, principalFrom(c))

	if err != nil {
		respondError(c, err, "failed to create reservation")
		return
	}

	c.JSON(http.StatusCreated, inserted)
}

func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := idParam(c)

	if !ok {
		return
	}

	if err := h.service.CancelReservation(c.Request.Context(), id, principalFrom(c)); err != nil {
		respondError(c, err, "failed to cancel reservation")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "reservation cancelled"})
}

func (h *ReservationHandler) Complete(c *gin.Context) {
	id, ok := idParam(c)

	if !ok {
		return
	}

	if err := h.service.CompleteReservation(c.Request.Context(), id); err != nil {
		respondError(c, err, "failed to complete reservation")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "reservation completed"})
}

func (h *ReservationHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)

	if !ok {
		return
	}

	if err := h.service.DeleteReservation(c.Request.Context(), id); err != nil {
		respondError(c, err, "failed to delete reservation")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "reservation deleted"})
}
