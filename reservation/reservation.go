package reservation

import (
	"encoding/json"
	"time"
)

type Status string

const (
	StatusBooked    Status = "booked"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusBooked, StatusCancelled, StatusCompleted:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// Reservation times carry the club's local wall clock in time.UTC; the
// store keeps them as timestamps without time zone.
type Reservation struct {
	ID        int64     `json:"id"`
	CourtID   int64     `json:"courtId"`
	UserID    *int64    `json:"userId"`
	StartTime time.Time `json:"startTime"`
	Duration  int       `json:"duration"` // minutes
	Price     float64   `json:"price"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// MarshalJSON writes startTime without a zone so clients do not read the
// local wall clock as UTC.
func (r Reservation) MarshalJSON() ([]byte, error) {
	type plain Reservation

	return json.Marshal(struct {
		plain
		StartTime string `json:"startTime"`
	}{
		plain:     plain(r),
		StartTime: r.StartTime.Format("2006-01-02T15:04:05"),
	})
}

func (r Reservation) EndTime() time.Time {
	return r.StartTime.Add(time.Duration(r.Duration) * time.Minute)
}

func (r Reservation) OwnedBy(userID int64) bool {
	return r.UserID != nil && *r.UserID == userID
}

// Request is a booking request as received from a caller.
type Request struct {
	CourtID   int64
	UserID    *int64 // honoured for administrators only
	StartTime time.Time
	Duration  int
	Price     *float64 // nil means court price pro rata
	Status    Status   // empty means booked
}

type Filter struct {
	CourtID int64
	Date    time.Time
	Status  Status
}

type CourtReservationCount struct {
	CourtID   int64  `json:"courtId"`
	CourtName string `json:"courtName"`
	Count     int    `json:"reservationCount"`
}

type WeekDayReservationCount struct {
	WeekDay string `json:"dayOfWeek"`
	Count   int    `json:"reservationCount"`
}

type CourtPeriodStats struct {
	CourtID   int64   `json:"courtId"`
	CourtName string  `json:"courtName"`
	Count     int     `json:"reservationCount"`
	Revenue   float64 `json:"revenue"`
}
