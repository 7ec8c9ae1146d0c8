package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/padel-booking-backend/court"
	"github.com/hanksha/padel-booking-backend/reservation"
	"github.com/hanksha/padel-booking-backend/user"
)

var statusByError = []struct {
	err    error
	status int
}{
	{reservation.ErrInvalidDuration, http.StatusBadRequest},
	{reservation.ErrInvalidDate, http.StatusBadRequest},
	{reservation.ErrInvalidStatus, http.StatusBadRequest},
	{reservation.ErrInvalidPrice, http.StatusBadRequest},
	{reservation.ErrPastReservation, http.StatusBadRequest},
	{reservation.ErrSlotUnavailable, http.StatusBadRequest},
	{reservation.ErrInvalidTransition, http.StatusBadRequest},
	{court.ErrInvalidCourt, http.StatusBadRequest},
	{user.ErrInvalidUser, http.StatusBadRequest},
	{user.ErrInvalidCredentials, http.StatusUnauthorized},
	{reservation.ErrNotAllowed, http.StatusForbidden},
	{court.ErrCourtNotFound, http.StatusNotFound},
	{reservation.ErrReservationNotFound, http.StatusNotFound},
	{user.ErrUserNotFound, http.StatusNotFound},
	{user.ErrEmailTaken, http.StatusConflict},
}

func statusFor(err error) int {
	for _, s := range statusByError {
		if errors.Is(err, s.err) {
			return s.status
		}
	}
	return http.StatusInternalServerError
}

// respondError records err on the context and writes it back. Client errors
// carry the error message; server errors only carry fallback.
func respondError(c *gin.Context, err error, fallback string) {
	c.Error(err)

	status := statusFor(err)

	if status == http.StatusInternalServerError {
		c.JSON(status, gin.H{"error": fallback})
		return
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
