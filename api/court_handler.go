package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/padel-booking-backend/court"
	rs "github.com/hanksha/padel-booking-backend/reservation"
)

//go:generate mockgen -source=court_handler.go -destination=mocks/mock_court_service.go -package=mocks

type CourtService interface {
	GetCourts(ctx context.Context) ([]court.Court, error)
	GetCourtByID(ctx context.Context, id int64) (court.Court, error)
	CreateCourt(ctx context.Context, c court.Court) (court.Court, error)
	UpdateCourt(ctx context.Context, c court.Court) (court.Court, error)
	DeleteCourt(ctx context.Context, id int64) error
}

type SlotService interface {
	GetAvailableSlots(ctx context.Context, courtID int64, date time.Time, duration int) (rs.Slots, error)
}

type CourtHandler struct {
	courts CourtService
	slots  SlotService
}

func NewCourtHandler(courts CourtService, slots SlotService) *CourtHandler {
	return &CourtHandler{courts: courts, slots: slots}
}

func (h *CourtHandler) Register(rg *gin.RouterGroup, authenticate gin.HandlerFunc) {
	adminOnly := AdminOnly()
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
	rg.GET("/:id/slots", h.GetSlots)
	rg.POST("", authenticate, adminOnly, h.Create)
	rg.PUT("/:id", authenticate, adminOnly, h.Update)
	rg.DELETE("/:id", authenticate, adminOnly, h.Delete)
}

func (h *CourtHandler) List(c *gin.Context) {
	if courts, err := h.courts.GetCourts(c.Request.Context()); err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to retrieve courts",
		})
	} else {
		c.IndentedJSON(http.StatusOK, courts)
	}
}

func (h *CourtHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c)

	if !ok {
		return
	}

	found, err := h.courts.GetCourtByID(c.Request.Context(), id)

	if err != nil {
		respondError(c, err, "failed to fetch court")
		return
	}

	c.IndentedJSON(http.StatusOK, found)
}

// GetSlots lists the slots of a court for ?date=YYYY-MM-DD (default today)
// and ?duration= minutes (default 60).
func (h *CourtHandler) GetSlots(c *gin.Context) {
	id, ok := idParam(c)

	if !ok {
		return
	}

	var date time.Time

	if q := c.Query("date"); len(q) != 0 {
		parsed, err := rs.ParseDate(q)

		if err != nil {
			c.Error(err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse date"})
			return
		}

		date = parsed
	}

	duration := 0

	if q := c.Query("duration"); len(q) != 0 {
		parsed, err := strconv.Atoi(q)

		if err != nil {
			c.Error(err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse duration"})
			return
		}

		if err := rs.ValidateDuration(parsed); err != nil {
			respondError(c, err, "failed to parse duration")
			return
		}

		duration = parsed
	}

	slots, err := h.slots.GetAvailableSlots(c.Request.Context(), id, date, duration)

	if err != nil {
		respondError(c, err, "failed to compute slots")
		return
	}

	c.IndentedJSON(http.StatusOK, slots)
}

func (h *CourtHandler) Create(c *gin.Context) {
	var toCreate court.Court

	if err := c.BindJSON(&toCreate); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	inserted, err := h.courts.CreateCourt(c.Request.Context(), toCreate)

	if err != nil {
		respondError(c, err, "failed to create court")
		return
	}

	c.JSON(http.StatusCreated, inserted)
}

func (h *CourtHandler) Update(c *gin.Context) {
	id, ok := idParam(c)

	if !ok {
		return
	}

	var toUpdate court.Court

	if err := c.BindJSON(&toUpdate); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	toUpdate.ID = id
	updated, err := h.courts.UpdateCourt(c.Request.Context(), toUpdate)

	if err != nil {
		respondError(c, err, "failed to update court")
		return
	}

	c.IndentedJSON(http.StatusOK, updated)
}

func (h *CourtHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)

	if !ok {
		return
	}

	if err := h.courts.DeleteCourt(c.Request.Context(), id); err != nil {
		respondError(c, err, "failed to delete court")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "court deleted"})
}

// idParam reads the :id path parameter, answering 400 when it is not a
// positive integer.
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)

	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}

	return id, true
}
